package brochure

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProducesPDF(t *testing.T) {
	info := Info{
		Name:        "Assessment Assistant",
		Tagline:     "Grading support that keeps teachers in control",
		Description: "Builds rubrics, drafts feedback, and tracks progress across a whole class.",
		Features: []Feature{
			{Title: "Rubric builder", Detail: "Generates standards-aligned rubrics from an assignment prompt."},
			{Title: "Feedback drafts", Detail: "Suggests comments the teacher can edit before releasing."},
		},
		PageURL:     "https://faraday.ai/services/assessment",
		SiteName:    "Faraday AI",
		ContactLine: "hello@faraday.ai",
	}

	var buf bytes.Buffer
	err := Generate(info, &buf)
	require.NoError(t, err)

	assert.Greater(t, buf.Len(), 1000, "PDF should have real content")
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with the PDF magic bytes")
}

func TestGenerateWithoutQR(t *testing.T) {
	info := Info{
		Name:        "Secretary Assistant",
		Tagline:     "Front office help",
		Description: "Answers routine parent questions.",
		SiteName:    "Faraday AI",
	}

	var buf bytes.Buffer
	err := Generate(info, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestGenerateComingSoonBanner(t *testing.T) {
	info := Info{
		Name:        "Study Groups",
		Tagline:     "Peer learning, organized",
		Description: "Coordinates study sessions.",
		ComingSoon:  true,
		PageURL:     "https://faraday.ai/services/study-groups",
		SiteName:    "Faraday AI",
	}

	var buf bytes.Buffer
	require.NoError(t, Generate(info, &buf))
	assert.Greater(t, buf.Len(), 500)
}
