package ogimage

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOGImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cards", "assessment.png")

	err := GenerateOGImage(PageInfo{
		Title:    "Assessment & Grading",
		Tagline:  "Faster, fairer feedback",
		SiteName: "Faraday AI",
	}, out)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, CardWidth, bounds.Dx())
	assert.Equal(t, CardHeight, bounds.Dy())
}

func TestGenerateOGImageWithoutTagline(t *testing.T) {
	out := filepath.Join(t.TempDir(), "home.png")

	err := GenerateOGImage(PageInfo{Title: "Faraday AI", SiteName: "Faraday AI"}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 10))
	assert.Equal(t, "exactly10!", truncateText("exactly10!", 10))
	assert.Equal(t, "longer ...", truncateText("longer than ten", 10))
}
