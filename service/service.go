package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/faraday-ai/faraday-web/internal/auth"
	"github.com/faraday-ai/faraday-web/internal/email"
	"github.com/faraday-ai/faraday-web/internal/events"
	"github.com/faraday-ai/faraday-web/internal/jobs"
	"github.com/faraday-ai/faraday-web/internal/middleware"
	"github.com/faraday-ai/faraday-web/storage"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/faraday-ai/faraday-web/views/about"
	"github.com/faraday-ai/faraday-web/views/account"
	"github.com/faraday-ai/faraday-web/views/contact"
	"github.com/faraday-ai/faraday-web/views/home"
	"github.com/faraday-ai/faraday-web/views/layout"
	"github.com/faraday-ai/faraday-web/views/legal"
	"github.com/faraday-ai/faraday-web/views/pricing"
	"github.com/faraday-ai/faraday-web/views/services"
)

type Service struct {
	storage      *storage.Storage
	config       *Config
	authService  *auth.Service
	emailService email.Service
	bus          *events.Bus
	sessionStore *sessions.CookieStore
	ogWarmup     *jobs.OGImageWarmup
	digest       *jobs.WaitlistDigest
}

func New(storage *storage.Storage, config *Config) *Service {
	ctx := context.Background()

	name := siteName(ctx, storage.Queries)

	emailService := email.NewService(email.Config{
		Provider: config.Email.Provider,
		APIKey:   config.Email.APIKey,
		From:     config.Email.From,
		FromName: name,
	})

	// The bus fans form submissions out to email and the activity log.
	// Subscribers must be attached before the first publish.
	bus := events.NewBus()
	subscribers := events.NewSubscribers(storage.Queries, emailService, config.Email.AdminEmail)
	if err := subscribers.Register(ctx, bus); err != nil {
		slog.Error("failed to register event subscribers", "error", err)
	}

	return &Service{
		storage:      storage,
		config:       config,
		authService:  auth.NewService(storage.Queries),
		emailService: emailService,
		bus:          bus,
		sessionStore: auth.NewSessionStore(config.Session.Secret, !config.IsDevelopment()),
		ogWarmup:     jobs.NewOGImageWarmup(storage, name, config.OGImage.Dir),
		digest:       jobs.NewWaitlistDigest(storage, emailService, config.Email.AdminEmail),
	}
}

// StartBackgroundJobs launches the social card warmup and the waitlist
// digest. Call once after the routes are registered.
func (s *Service) StartBackgroundJobs(ctx context.Context) {
	s.ogWarmup.Start(ctx)
	s.digest.Start(ctx)
}

// Shutdown stops the background jobs, the auth cache, and the event bus.
func (s *Service) Shutdown() {
	s.digest.Stop()
	s.authService.Stop()
	if err := s.bus.Close(); err != nil {
		slog.Error("failed to close event bus", "error", err)
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Validator = newFormValidator()

	// Static files - no session middleware
	e.Static("/public", "public")

	// Health check - no auth
	e.GET("/health", s.handleHealth)

	// Modal fragments carry no user state, so they skip the session middleware
	e.GET("/fragments/auth-modal", s.handleAuthModalFragment)
	e.GET("/fragments/coming-soon", s.handleComingSoonFragment)

	// Every page route gets the session cookie and the user loaded from it
	pages := e.Group("")
	pages.Use(session.Middleware(s.sessionStore))
	pages.Use(auth.LoadUser(s.storage))

	// Home page
	pages.GET("/", s.handleHome)

	// Service pages
	pages.GET("/services/:slug", s.handleServiceDetail)
	pages.GET("/services/:slug/brochure.pdf", s.handleServiceBrochure)

	// Static pages
	pages.GET("/pricing", s.handlePricing)
	pages.GET("/about", s.handleAbout)
	pages.GET("/contact", s.handleContact)

	// Legal pages
	pages.GET("/privacy", s.handlePrivacy)
	pages.GET("/terms", s.handleTerms)

	// Auth pages - the same card the modal fetches, served as full pages so
	// sign-in works without JavaScript
	pages.GET("/login", s.handleLoginPage)
	pages.GET("/register", s.handleRegisterPage)
	pages.GET("/signup", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/register")
	})

	// Form endpoints share a per-IP rate limit
	limiter := middleware.NewRateLimiter(rate.Limit(s.config.RateLimit.RPS), s.config.RateLimit.Burst)
	forms := pages.Group("", limiter.Limit())
	forms.POST("/auth/register", s.handleRegister)
	forms.POST("/auth/login", s.handleLogin)
	forms.POST("/auth/logout", s.handleLogout)
	forms.POST("/contact", s.handleContactSubmit)
	forms.POST("/api/waitlist", s.handleWaitlistJoin)

	// Admin routes - protected with RequireAdmin middleware
	adminGroup := pages.Group("/admin", auth.RequireAdmin())
	adminGroup.GET("", s.handleAdminDashboard)
}

// shell assembles the layout data every page render needs: head metadata,
// flash notices, and the service catalog the footer links to. Flashes are
// drained here, before the render starts streaming, so the clearing cookie
// still makes it into the response headers.
func (s *Service) shell(c echo.Context, meta layout.PageMeta) layout.Shell {
	catalog, err := s.storage.Queries.ListServices(c.Request().Context())
	if err != nil {
		slog.Error("failed to list services for footer", "error", err)
	}

	return layout.Shell{
		Meta:    meta,
		Flashes: auth.GetFlashes(c),
		Catalog: catalog,
	}
}

func (s *Service) handleHome(c echo.Context) error {
	ctx := c.Request().Context()

	catalog, err := s.storage.Queries.ListServices(ctx)
	if err != nil {
		slog.Error("failed to fetch service catalog", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load services")
	}

	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL)
	return Render(c, home.Index(c, s.shell(c, meta), catalog))
}

func (s *Service) handleServiceDetail(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	svc, err := s.storage.Queries.GetServiceBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.handleServiceNotFound(c, slug)
		}
		slog.Error("failed to fetch service", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load service")
	}

	features, err := s.storage.Queries.ListServiceFeatures(ctx, svc.ID)
	if err != nil {
		slog.Error("failed to fetch service features", "error", err, "slug", slug)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load service")
	}

	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).FromService(svc)
	return Render(c, services.Detail(c, s.shell(c, meta), svc, features))
}

func (s *Service) handleServiceNotFound(c echo.Context, slug string) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Service not found").
		WithDescription("That assistant doesn't exist. Browse the full Faraday AI lineup.")

	c.Response().Status = http.StatusNotFound
	return Render(c, services.NotFound(c, s.shell(c, meta), slug))
}

func (s *Service) handlePricing(c echo.Context) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Pricing").
		WithDescription("Plans for teachers, schools, and districts. Free for individual teachers during beta.").
		WithOGImage("/public/og-images/pricing.png")
	return Render(c, pricing.Index(c, s.shell(c, meta)))
}

func (s *Service) handleAbout(c echo.Context) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("About").
		WithDescription("Faraday AI builds practical AI assistants for teachers, schools, and districts.").
		WithOGImage("/public/og-images/about.png")
	return Render(c, about.Index(c, s.shell(c, meta)))
}

func (s *Service) handleContact(c echo.Context) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Contact").
		WithDescription("Talk to the Faraday AI team about your classroom, school, or district.").
		WithOGImage("/public/og-images/contact.png")
	return Render(c, contact.Index(c, s.shell(c, meta)))
}

func (s *Service) handlePrivacy(c echo.Context) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Privacy Policy").
		WithDescription("How Faraday AI handles student and teacher data.")
	return Render(c, legal.Privacy(c, s.shell(c, meta)))
}

func (s *Service) handleTerms(c echo.Context) error {
	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Terms of Service").
		WithDescription("The terms for using Faraday AI products.")
	return Render(c, legal.Terms(c, s.shell(c, meta)))
}

func (s *Service) handleLoginPage(c echo.Context) error {
	if isAuth, _ := c.Get(auth.IsAuthenticatedKey).(bool); isAuth {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Sign in")
	return Render(c, account.Login(c, s.shell(c, meta)))
}

func (s *Service) handleRegisterPage(c echo.Context) error {
	if isAuth, _ := c.Get(auth.IsAuthenticatedKey).(bool); isAuth {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	meta := layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL).
		WithTitle("Create account")
	return Render(c, account.Register(c, s.shell(c, meta)))
}

func (s *Service) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    "connected",
	})
}

// siteName reads the configured site name, falling back to the product default.
func siteName(ctx context.Context, queries *db.Queries) string {
	name, err := queries.GetSiteConfig(ctx, "seo_site_name")
	if err != nil || name == "" {
		return "Faraday AI"
	}
	return name
}

// Render renders a templ component and writes it to the response
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	// Don't call WriteHeader here - let Echo handle it on first Write()
	return component.Render(c.Request().Context(), c.Response())
}
