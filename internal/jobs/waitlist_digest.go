package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/storage"
)

const (
	// DigestInterval is how often the waitlist digest goes out
	DigestInterval = 24 * time.Hour

	// digestEntryLimit caps how many signups the digest lists in full
	digestEntryLimit = 50
)

// WaitlistDigest emails the site team a periodic summary of new waitlist
// signups so nobody has to poll the admin page.
type WaitlistDigest struct {
	storage    *storage.Storage
	mailer     email.Service
	adminEmail string
	interval   time.Duration
	ticker     *time.Ticker
	done       chan bool
}

func NewWaitlistDigest(storage *storage.Storage, mailer email.Service, adminEmail string) *WaitlistDigest {
	return &WaitlistDigest{
		storage:    storage,
		mailer:     mailer,
		adminEmail: adminEmail,
		interval:   DigestInterval,
		done:       make(chan bool),
	}
}

// Start begins the digest background job
func (d *WaitlistDigest) Start(ctx context.Context) {
	if d.adminEmail == "" {
		slog.Info("waitlist digest disabled, no admin email configured")
		return
	}

	slog.Info("starting waitlist digest", "interval", d.interval)
	d.ticker = time.NewTicker(d.interval)

	go func() {
		for {
			select {
			case <-d.ticker.C:
				d.sendDigest(ctx)
			case <-d.done:
				slog.Info("waitlist digest stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (d *WaitlistDigest) Stop() {
	if d.ticker != nil {
		d.ticker.Stop()
	}
	close(d.done)
}

// sendDigest counts signups since the last interval and mails the summary
func (d *WaitlistDigest) sendDigest(ctx context.Context) {
	slog.Debug("running waitlist digest")

	// CURRENT_TIMESTAMP stores UTC, so the bound parameter must be UTC too
	since := time.Now().UTC().Add(-d.interval)
	count, err := d.storage.Queries.CountWaitlistSignupsSince(ctx, since)
	if err != nil {
		slog.Error("failed to count recent waitlist signups", "error", err)
		return
	}

	if count == 0 {
		slog.Debug("no new waitlist signups, skipping digest")
		return
	}

	signups, err := d.storage.Queries.ListRecentWaitlistSignups(ctx, digestEntryLimit)
	if err != nil {
		slog.Error("failed to list recent waitlist signups", "error", err)
		return
	}

	entries := make([]email.DigestEntry, 0, len(signups))
	for _, s := range signups {
		if s.CreatedAt.Before(since) {
			continue
		}
		entries = append(entries, email.DigestEntry{
			Email:   s.Email,
			Feature: s.Feature,
		})
	}

	msg, err := email.WaitlistDigestMessage(d.adminEmail, count, entries)
	if err != nil {
		slog.Error("failed to build waitlist digest email", "error", err)
		return
	}

	if err := email.SendWithRetry(ctx, d.mailer, msg); err != nil {
		slog.Error("failed to send waitlist digest", "error", err)
		return
	}

	slog.Info("sent waitlist digest", "signups", count, "to", d.adminEmail)
}
