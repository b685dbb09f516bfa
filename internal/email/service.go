// Package email sends transactional mail through a pluggable provider.
// The console provider is the development and test default; SendGrid is
// used when EMAIL_PROVIDER=sendgrid and an API key is configured.
package email

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

// Message is one outbound email.
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
	TextBody string
}

// Service is implemented by each provider.
type Service interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// Config carries the provider selection and credentials.
type Config struct {
	Provider string
	APIKey   string
	From     string
	FromName string
}

// NewService picks the provider for the given config. An unknown provider or
// a sendgrid selection without an API key falls back to console so a
// misconfigured box still boots.
func NewService(cfg Config) Service {
	switch cfg.Provider {
	case "sendgrid":
		if cfg.APIKey == "" {
			slog.Warn("sendgrid provider selected without SENDGRID_API_KEY, using console")
			return NewConsoleService(cfg)
		}
		return NewSendgridService(cfg)
	case "console", "":
		return NewConsoleService(cfg)
	default:
		slog.Warn("unknown email provider, using console", "provider", cfg.Provider)
		return NewConsoleService(cfg)
	}
}

// SendWithRetry sends through the service with exponential backoff.
// Providers return transient transport errors often enough that one-shot
// sends drop real mail.
func SendWithRetry(ctx context.Context, svc Service, msg Message) error {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := svc.Send(ctx, msg); err != nil {
			slog.Warn("email send attempt failed",
				"provider", svc.Name(),
				"to", msg.To,
				"subject", msg.Subject,
				"error", err,
			)
			return retry.RetryableError(err)
		}
		return nil
	})
}
