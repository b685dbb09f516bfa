package events

import (
	"context"
	"testing"
	"time"

	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	received := make(chan Envelope, 1)
	err := bus.Subscribe(context.Background(), TopicWaitlistJoined, func(_ context.Context, evt Envelope) error {
		received <- evt
		return nil
	})
	require.NoError(t, err)

	err = bus.Publish(context.Background(), TopicWaitlistJoined, WaitlistJoined{
		SignupID: "sig_1",
		Email:    "teacher@district.example",
		Feature:  "pricing",
	})
	require.NoError(t, err)

	select {
	case evt := <-received:
		var payload WaitlistJoined
		require.NoError(t, evt.Decode(&payload))
		assert.Equal(t, "pricing", payload.Feature)
		assert.Equal(t, TopicWaitlistJoined, evt.Topic)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	calls := make(chan struct{}, 2)
	err := bus.Subscribe(context.Background(), TopicUserRegistered, func(_ context.Context, _ Envelope) error {
		calls <- struct{}{}
		return assert.AnError
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		require.NoError(t, bus.Publish(context.Background(), TopicUserRegistered, UserRegistered{UserID: "u"}))
	}

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("delivery %d never happened", i+1)
		}
	}
}

func TestSubscribersSendMailAndLogActivity(t *testing.T) {
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	email.ResetSentMessages()
	mailer := email.NewConsoleServiceSilent(email.Config{From: "noreply@faraday.ai", FromName: "Faraday AI"})

	bus := NewBus()
	defer bus.Close()

	subs := NewSubscribers(queries, mailer, "hello@faraday.ai")
	require.NoError(t, subs.Register(context.Background(), bus))

	require.NoError(t, bus.Publish(context.Background(), TopicContactSubmitted, ContactSubmitted{
		RequestID: "req_1",
		Name:      "Pat Teacher",
		Email:     "teacher@district.example",
		Message:   "Tell me about assessment.",
	}))

	// Delivery is asynchronous; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if email.SentMessageCount() > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	last, ok := email.LastSentMessage()
	require.True(t, ok, "notification email should have been sent")
	assert.Equal(t, "hello@faraday.ai", last.To)
	assert.Contains(t, last.Subject, "Pat Teacher")

	activity, err := queries.ListRecentActivity(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, activity)
	assert.Equal(t, TopicContactSubmitted, activity[0].EventType)
}
