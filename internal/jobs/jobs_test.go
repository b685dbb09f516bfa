package jobs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/storage"
	"github.com/faraday-ai/faraday-web/storage/db"
)

func TestOGImageWarmupRendersAllCards(t *testing.T) {
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	defer cleanup()

	outDir := t.TempDir()
	job := NewOGImageWarmup(store, "Faraday AI", outDir)
	job.Run(context.Background())

	// 4 static pages plus the seeded catalog
	services, err := store.Queries.ListServices(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, services)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, entries, 4+len(services))

	for _, svc := range services {
		_, err := os.Stat(filepath.Join(outDir, "service-"+svc.Slug+".png"))
		assert.NoError(t, err, "card for %s should exist", svc.Slug)
	}
}

func TestOGImageWarmupSkipsFreshCards(t *testing.T) {
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	defer cleanup()

	outDir := t.TempDir()
	job := NewOGImageWarmup(store, "Faraday AI", outDir)

	job.Run(context.Background())
	homePath := filepath.Join(outDir, "home.png")
	first, err := os.Stat(homePath)
	require.NoError(t, err)

	job.Run(context.Background())
	second, err := os.Stat(homePath)
	require.NoError(t, err)

	assert.Equal(t, first.ModTime(), second.ModTime(), "fresh card should not be re-rendered")
}

func TestWaitlistDigestSendsSummary(t *testing.T) {
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	for _, addr := range []string{"teacher1@school.test", "teacher2@school.test"} {
		_, err := store.Queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
			ID:      ulid.Make().String(),
			Email:   addr,
			Feature: "study-groups",
		})
		require.NoError(t, err)
	}

	email.ResetSentMessages()
	mailer := email.NewConsoleServiceSilent(email.Config{From: "noreply@faraday.ai", FromName: "Faraday AI"})

	digest := NewWaitlistDigest(store, mailer, "admin@faraday.ai")
	digest.sendDigest(ctx)

	require.Equal(t, 1, email.SentMessageCount())
	msg, ok := email.LastSentMessage()
	require.True(t, ok)
	assert.Equal(t, "admin@faraday.ai", msg.To)
	assert.Contains(t, msg.Subject, "2 new signups")
	assert.Contains(t, msg.TextBody, "teacher1@school.test")
}

func TestWaitlistDigestSkipsWhenQuiet(t *testing.T) {
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	defer cleanup()

	email.ResetSentMessages()
	mailer := email.NewConsoleServiceSilent(email.Config{From: "noreply@faraday.ai"})

	digest := NewWaitlistDigest(store, mailer, "admin@faraday.ai")
	digest.sendDigest(context.Background())

	assert.Equal(t, 0, email.SentMessageCount())
}

func TestWaitlistDigestStartStop(t *testing.T) {
	store, cleanup, err := storage.NewTestStorage()
	require.NoError(t, err)
	defer cleanup()

	mailer := email.NewConsoleServiceSilent(email.Config{From: "noreply@faraday.ai"})
	digest := NewWaitlistDigest(store, mailer, "admin@faraday.ai")
	digest.interval = 50 * time.Millisecond

	digest.Start(context.Background())
	digest.Stop()
}
