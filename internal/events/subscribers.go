package events

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/oklog/ulid/v2"
)

// Subscribers wires the standing event handlers: a notification mailer and
// the activity log.
type Subscribers struct {
	queries    *db.Queries
	mailer     email.Service
	adminEmail string
}

func NewSubscribers(queries *db.Queries, mailer email.Service, adminEmail string) *Subscribers {
	return &Subscribers{
		queries:    queries,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Register attaches every handler to the bus. Call before the server starts
// publishing.
func (s *Subscribers) Register(ctx context.Context, bus *Bus) error {
	if err := bus.Subscribe(ctx, TopicContactSubmitted, s.handleContactSubmitted); err != nil {
		return err
	}
	if err := bus.Subscribe(ctx, TopicWaitlistJoined, s.handleWaitlistJoined); err != nil {
		return err
	}
	if err := bus.Subscribe(ctx, TopicUserRegistered, s.handleUserRegistered); err != nil {
		return err
	}
	return nil
}

func (s *Subscribers) handleContactSubmitted(ctx context.Context, evt Envelope) error {
	var payload ContactSubmitted
	if err := evt.Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode contact event: %w", err)
	}

	s.logActivity(ctx, evt.Topic, payload.Email, fmt.Sprintf("contact request %s", payload.RequestID))

	msg, err := email.ContactNotification(s.adminEmail, payload.Name, payload.Email, payload.Organization, payload.Message)
	if err != nil {
		return fmt.Errorf("failed to build contact notification: %w", err)
	}
	return email.SendWithRetry(ctx, s.mailer, msg)
}

func (s *Subscribers) handleWaitlistJoined(ctx context.Context, evt Envelope) error {
	var payload WaitlistJoined
	if err := evt.Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode waitlist event: %w", err)
	}

	s.logActivity(ctx, evt.Topic, payload.Email, fmt.Sprintf("joined waitlist for %s", payload.Feature))

	msg, err := email.WaitlistConfirmation(payload.Email, payload.Feature)
	if err != nil {
		return fmt.Errorf("failed to build waitlist confirmation: %w", err)
	}
	return email.SendWithRetry(ctx, s.mailer, msg)
}

func (s *Subscribers) handleUserRegistered(ctx context.Context, evt Envelope) error {
	var payload UserRegistered
	if err := evt.Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode registration event: %w", err)
	}

	s.logActivity(ctx, evt.Topic, payload.Email, "account created")

	msg, err := email.WelcomeMessage(payload.Email, payload.FullName)
	if err != nil {
		return fmt.Errorf("failed to build welcome message: %w", err)
	}
	return email.SendWithRetry(ctx, s.mailer, msg)
}

// logActivity records the event for the admin dashboard. Failures are logged
// and swallowed; the activity trail is not worth failing the handler over.
func (s *Subscribers) logActivity(ctx context.Context, eventType, subject, detail string) {
	err := s.queries.InsertActivity(ctx, db.InsertActivityParams{
		ID:        ulid.Make().String(),
		EventType: eventType,
		Subject:   sql.NullString{String: subject, Valid: subject != ""},
		Detail:    sql.NullString{String: detail, Valid: detail != ""},
	})
	if err != nil {
		slog.Error("failed to record activity", "event_type", eventType, "error", err)
	}
}
