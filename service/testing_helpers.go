package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/internal/events"
	"github.com/faraday-ai/faraday-web/internal/jobs"
	"github.com/faraday-ai/faraday-web/storage"
	"github.com/faraday-ai/faraday-web/storage/db"
)

// setupTestService builds a Service against an in-memory database with the
// silent console mailer. Background jobs are constructed but never started.
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Session.Secret = "test-secret"
	config.Email.Provider = "console"
	config.Email.From = "noreply@faraday.test"
	config.Email.AdminEmail = "admin@faraday.test"
	// High enough that a test suite never trips the per-IP limiter
	config.RateLimit.RPS = 1000
	config.RateLimit.Burst = 1000

	emailService := email.NewConsoleServiceSilent(email.Config{
		From:     config.Email.From,
		FromName: "Faraday AI",
	})

	bus := events.NewBus()
	subscribers := events.NewSubscribers(store.Queries, emailService, config.Email.AdminEmail)
	if err := subscribers.Register(context.Background(), bus); err != nil {
		t.Fatalf("failed to register event subscribers: %v", err)
	}
	t.Cleanup(func() {
		if err := bus.Close(); err != nil {
			t.Errorf("failed to close event bus: %v", err)
		}
	})

	authService := auth.NewService(store.Queries)
	t.Cleanup(authService.Stop)

	return &Service{
		storage:      store,
		config:       config,
		authService:  authService,
		emailService: emailService,
		bus:          bus,
		sessionStore: auth.NewSessionStore(config.Session.Secret, false),
		ogWarmup:     jobs.NewOGImageWarmup(store, "Faraday AI", t.TempDir()),
		digest:       jobs.NewWaitlistDigest(store, emailService, config.Email.AdminEmail),
	}
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// createTestUser registers an account through the auth service so the
// password hash is real and the login flow works end to end.
func createTestUser(t *testing.T, svc *Service, emailAddr, password string, isAdmin bool) db.User {
	t.Helper()

	user, err := svc.authService.Register(context.Background(), emailAddr, password, "Test User")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	if isAdmin {
		err := svc.storage.Queries.SetUserAdmin(context.Background(), db.SetUserAdminParams{
			IsAdmin: true,
			Email:   user.Email,
		})
		if err != nil {
			t.Fatalf("failed to grant admin rights: %v", err)
		}
		// Register cached the pre-admin row
		svc.authService.InvalidateCache(user.ID)
		user.IsAdmin = true
	}

	return user
}

// signIn performs the login POST and returns the session cookies to attach
// to subsequent requests.
func signIn(t *testing.T, e *echo.Echo, emailAddr, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("email", emailAddr)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login should redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("login should land on the home page, redirected to %s", loc)
	}

	return rec.Result().Cookies()
}

// get serves a GET request with optional cookies and returns the recorder.
func get(e *echo.Echo, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// postForm serves a form POST and returns the recorder. htmx toggles the
// HX-Request header so handlers respond with a fragment instead of a redirect.
func postForm(e *echo.Echo, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
