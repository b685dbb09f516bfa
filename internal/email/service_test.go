package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Provider: "console",
		From:     "noreply@faraday.ai",
		FromName: "Faraday AI",
	}
}

func TestNewService_DefaultsToConsole(t *testing.T) {
	assert.Equal(t, "console", NewService(Config{}).Name())
	assert.Equal(t, "console", NewService(Config{Provider: "console"}).Name())
	assert.Equal(t, "console", NewService(Config{Provider: "carrier-pigeon"}).Name())
}

func TestNewService_SendgridNeedsKey(t *testing.T) {
	// Without a key the sendgrid selection must not produce a provider that
	// would fail every send.
	assert.Equal(t, "console", NewService(Config{Provider: "sendgrid"}).Name())
	assert.Equal(t, "sendgrid", NewService(Config{Provider: "sendgrid", APIKey: "SG.test"}).Name())
}

func TestConsoleSendRecordsMessage(t *testing.T) {
	ResetSentMessages()
	svc := NewConsoleServiceSilent(testConfig())

	msg, err := WaitlistConfirmation("teacher@district.example", "LMS Integration")
	require.NoError(t, err)

	require.NoError(t, svc.Send(context.Background(), msg))

	last, ok := LastSentMessage()
	require.True(t, ok)
	assert.Equal(t, "teacher@district.example", last.To)
	assert.Contains(t, last.HTMLBody, "LMS Integration")
	assert.Contains(t, last.TextBody, "LMS Integration")
}

func TestConsoleSendRejectsEmptyRecipient(t *testing.T) {
	svc := NewConsoleServiceSilent(testConfig())

	err := svc.Send(context.Background(), Message{Subject: "no recipient"})
	assert.Error(t, err)
}

func TestContactNotificationEscapesInput(t *testing.T) {
	msg, err := ContactNotification("hello@faraday.ai", "<script>alert(1)</script>", "evil@example.com", "", "hi")
	require.NoError(t, err)

	assert.NotContains(t, msg.HTMLBody, "<script>alert(1)</script>")
	assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
}

func TestWelcomeMessageFallsBackWithoutName(t *testing.T) {
	msg, err := WelcomeMessage("teacher@district.example", "")
	require.NoError(t, err)

	assert.Contains(t, msg.TextBody, "Hi there")
}

func TestSendWithRetrySucceeds(t *testing.T) {
	ResetSentMessages()
	svc := NewConsoleServiceSilent(testConfig())

	msg, err := WelcomeMessage("teacher@district.example", "Pat")
	require.NoError(t, err)

	require.NoError(t, SendWithRetry(context.Background(), svc, msg))
	assert.Equal(t, 1, SentMessageCount())
}
