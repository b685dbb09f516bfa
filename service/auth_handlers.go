package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/internal/events"
)

// formValidator adapts go-playground/validator to Echo's Validator interface.
type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	return &formValidator{validate: validator.New()}
}

func (v *formValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type registerForm struct {
	FullName string `form:"full_name" validate:"max=120"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (s *Service) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var form registerForm
	if err := c.Bind(&form); err != nil {
		auth.SetFlashError(c, "That submission didn't look right. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}
	if err := c.Validate(&form); err != nil {
		auth.SetFlashError(c, "Please enter a valid email and a password of at least 8 characters.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	user, err := s.authService.Register(ctx, form.Email, form.Password, form.FullName)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			auth.SetFlashError(c, "That email already has an account. Try signing in instead.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		slog.Error("failed to register account", "error", err)
		auth.SetFlashError(c, "Something went wrong creating your account. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/register")
	}

	if err := s.bus.Publish(ctx, events.TopicUserRegistered, events.UserRegistered{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName.String,
	}); err != nil {
		slog.Error("failed to publish registration event", "error", err, "user_id", user.ID)
	}

	if err := auth.SignIn(c, user.ID); err != nil {
		slog.Error("failed to start session after registration", "error", err, "user_id", user.ID)
		auth.SetFlashSuccess(c, "Account created. Please sign in.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	auth.SetFlashSuccess(c, "Welcome to Faraday AI! Your account is ready.")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var form loginForm
	if err := c.Bind(&form); err != nil {
		auth.SetFlashError(c, "That submission didn't look right. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}
	if err := c.Validate(&form); err != nil {
		auth.SetFlashError(c, "Please enter your email and password.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	user, err := s.authService.Authenticate(ctx, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			auth.SetFlashError(c, "Invalid email or password.")
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		slog.Error("failed to authenticate", "error", err)
		auth.SetFlashError(c, "Something went wrong signing you in. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if err := auth.SignIn(c, user.ID); err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		auth.SetFlashError(c, "Something went wrong signing you in. Please try again.")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	auth.SetFlashSuccess(c, "Welcome back!")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) handleLogout(c echo.Context) error {
	if err := auth.SignOut(c); err != nil {
		slog.Error("failed to end session", "error", err)
	}
	auth.SetFlashSuccess(c, "You're signed out.")
	return c.Redirect(http.StatusSeeOther, "/")
}
