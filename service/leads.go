package service

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/internal/events"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/contact"
	"github.com/faraday-ai/faraday-web/views/partials"
)

type waitlistForm struct {
	Email   string `form:"email" validate:"required,email"`
	Feature string `form:"feature" validate:"max=80"`
	Source  string `form:"source" validate:"max=80"`
}

type contactForm struct {
	Name         string `form:"name" validate:"required,max=120"`
	Email        string `form:"email" validate:"required,email"`
	Organization string `form:"organization" validate:"max=160"`
	Message      string `form:"message" validate:"required,max=4000"`
}

func (s *Service) handleWaitlistJoin(c echo.Context) error {
	ctx := c.Request().Context()

	var form waitlistForm
	if err := c.Bind(&form); err != nil {
		return s.waitlistFailure(c, form.Feature, "That submission didn't look right. Please try again.")
	}
	if err := c.Validate(&form); err != nil {
		return s.waitlistFailure(c, form.Feature, "Please enter a valid email address.")
	}

	feature := strings.TrimSpace(form.Feature)
	if feature == "" {
		feature = "General"
	}
	emailAddr := strings.ToLower(strings.TrimSpace(form.Email))

	// A repeat signup gets the same thank-you as the first. Nothing in the
	// response reveals whether the email was already on the list.
	existing, err := s.storage.Queries.GetWaitlistSignup(ctx, db.GetWaitlistSignupParams{
		Email:   emailAddr,
		Feature: feature,
	})
	if err == nil {
		return s.waitlistThanks(c, existing.Feature)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check waitlist", "error", err)
		return s.waitlistFailure(c, feature, "Something went wrong. Please try again.")
	}

	signup, err := s.storage.Queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
		ID:      ulid.Make().String(),
		Email:   emailAddr,
		Feature: feature,
		Source:  sql.NullString{String: strings.TrimSpace(form.Source), Valid: strings.TrimSpace(form.Source) != ""},
	})
	if err != nil {
		slog.Error("failed to create waitlist signup", "error", err, "feature", feature)
		return s.waitlistFailure(c, feature, "Something went wrong. Please try again.")
	}

	if err := s.bus.Publish(ctx, events.TopicWaitlistJoined, events.WaitlistJoined{
		SignupID: signup.ID,
		Email:    signup.Email,
		Feature:  signup.Feature,
		Source:   signup.Source.String,
	}); err != nil {
		slog.Error("failed to publish waitlist event", "error", err, "signup_id", signup.ID)
	}

	return s.waitlistThanks(c, feature)
}

func (s *Service) waitlistThanks(c echo.Context, feature string) error {
	if isHTMX(c) {
		return renderFragment(c, partials.WaitlistThanks(feature))
	}
	auth.SetFlashSuccess(c, fmt.Sprintf("You're on the list for %s. We'll email you at launch.", feature))
	return redirectBack(c)
}

func (s *Service) waitlistFailure(c echo.Context, feature, message string) error {
	if feature == "" {
		feature = "General"
	}
	if isHTMX(c) {
		return renderFragment(c, partials.WaitlistError(feature, message))
	}
	auth.SetFlashError(c, message)
	return redirectBack(c)
}

func (s *Service) handleContactSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	var form contactForm
	if err := c.Bind(&form); err != nil {
		return s.contactFailure(c, form, "That submission didn't look right. Please try again.")
	}
	if err := c.Validate(&form); err != nil {
		return s.contactFailure(c, form, "Please fill in your name, a valid email, and a message.")
	}

	request, err := s.storage.Queries.CreateContactRequest(ctx, db.CreateContactRequestParams{
		ID:    ulid.Make().String(),
		Name:  strings.TrimSpace(form.Name),
		Email: strings.ToLower(strings.TrimSpace(form.Email)),
		Organization: sql.NullString{
			String: strings.TrimSpace(form.Organization),
			Valid:  strings.TrimSpace(form.Organization) != "",
		},
		Message: strings.TrimSpace(form.Message),
		Status:  db.ContactStatusNew,
	})
	if err != nil {
		slog.Error("failed to create contact request", "error", err)
		return s.contactFailure(c, form, "Something went wrong. Please try again.")
	}

	if err := s.bus.Publish(ctx, events.TopicContactSubmitted, events.ContactSubmitted{
		RequestID:    request.ID,
		Name:         request.Name,
		Email:        request.Email,
		Organization: request.Organization.String,
		Message:      request.Message,
	}); err != nil {
		slog.Error("failed to publish contact event", "error", err, "request_id", request.ID)
	}

	if isHTMX(c) {
		return renderFragment(c, contact.Success(request.Name))
	}
	auth.SetFlashSuccess(c, "Thanks! We'll get back to you within two school days.")
	return c.Redirect(http.StatusSeeOther, "/contact")
}

func (s *Service) contactFailure(c echo.Context, form contactForm, message string) error {
	if isHTMX(c) {
		return renderFragment(c, contact.ContactForm(contact.FormValues{
			Name:         form.Name,
			Email:        form.Email,
			Organization: form.Organization,
			Message:      form.Message,
		}, message))
	}
	auth.SetFlashError(c, message)
	return c.Redirect(http.StatusSeeOther, "/contact")
}

// isHTMX reports whether the request came from an hx- attribute, which wants
// a fragment back instead of a redirect.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// redirectBack returns the visitor to the page the form was submitted from.
// Off-site referrers fall back to the home page.
func redirectBack(c echo.Context) error {
	ref := c.Request().Referer()
	if u, err := url.Parse(ref); err == nil && u.Host == c.Request().Host && u.Path != "" {
		return c.Redirect(http.StatusSeeOther, u.Path)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
