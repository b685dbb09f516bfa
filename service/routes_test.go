package service

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTier1_PublicPages tests that every public page renders.
func TestTier1_PublicPages(t *testing.T) {
	e, _ := setupTestEcho(t)

	tests := []struct {
		name string
		path string
	}{
		{"Home page", "/"},
		{"Health check", "/health"},

		// One page per seeded service
		{"Administrative assistant", "/services/administrative"},
		{"Assessment assistant", "/services/assessment"},
		{"Language arts tutor", "/services/language-arts"},
		{"LMS integration", "/services/lms-integration"},
		{"PE assistant", "/services/physical-education"},
		{"Secretary assistant", "/services/secretary"},
		{"Study group finder", "/services/study-groups"},

		// Static pages
		{"Pricing page", "/pricing"},
		{"About page", "/about"},
		{"Contact page", "/contact"},

		// Legal pages
		{"Privacy policy", "/privacy"},
		{"Terms of service", "/terms"},

		// Auth pages
		{"Login page", "/login"},
		{"Register page", "/register"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.path)
			assert.Equal(t, http.StatusOK, rec.Code,
				"GET %s should return 200, got %d", tt.path, rec.Code)
		})
	}
}

func TestSignupRedirectsToRegister(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := get(e, "/signup")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))
}

func TestEveryPageCarriesTheModalMountPoint(t *testing.T) {
	e, _ := setupTestEcho(t)

	for _, path := range []string{"/", "/services/assessment", "/pricing", "/contact"} {
		rec := get(e, path)
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="auth-modal-root"`, "%s must provide the modal mount point", path)
		assert.Contains(t, body, "/public/js/modal.js", "%s must load the modal script", path)
		assert.Contains(t, body, "/public/js/coming-soon.js", "%s must load the coming-soon script", path)
	}
}

func TestUnknownServiceReturns404Page(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := get(e, "/services/quantum-chemistry")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Service not found")
}

// TestTier2_Fragments tests the fragment endpoints the modal loaders fetch.
func TestTier2_Fragments(t *testing.T) {
	e, _ := setupTestEcho(t)

	t.Run("auth modal defaults to login", func(t *testing.T) {
		rec := get(e, "/fragments/auth-modal")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `class="auth-pane active" data-auth-pane="login"`)
		assert.Contains(t, body, `class="auth-pane" data-auth-pane="register"`)
		assert.NotContains(t, body, "<html", "fragments must not carry the layout shell")
	})

	t.Run("tab parameter activates register", func(t *testing.T) {
		rec := get(e, "/fragments/auth-modal?tab=register")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `class="auth-pane active" data-auth-pane="register"`)
		assert.Contains(t, body, `class="auth-pane" data-auth-pane="login"`)
	})

	t.Run("unknown tab falls back to login", func(t *testing.T) {
		rec := get(e, "/fragments/auth-modal?tab=sso")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="auth-pane active" data-auth-pane="login"`)
	})

	t.Run("coming soon echoes the feature", func(t *testing.T) {
		rec := get(e, "/fragments/coming-soon?feature=Getting+Started")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Getting Started is coming soon")
		assert.Contains(t, body, `action="/api/waitlist"`)
	})

	t.Run("coming soon without a feature still renders", func(t *testing.T) {
		rec := get(e, "/fragments/coming-soon")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "This feature is coming soon")
	})
}

// TestTier3_AuthFlow exercises register, duplicate register, login, logout.
func TestTier3_AuthFlow(t *testing.T) {
	e, svc := setupTestEcho(t)

	form := url.Values{}
	form.Set("full_name", "Pat Teacher")
	form.Set("email", "pat@school.test")
	form.Set("password", "correct-horse-battery")

	rec := postForm(e, "/auth/register", form, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"), "registration should sign the user in")

	user, err := svc.storage.Queries.GetUserByEmail(t.Context(), "pat@school.test")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", user.PasswordHash, "password must be stored hashed")

	// A second registration with the same email lands on the login page
	rec = postForm(e, "/auth/register", form, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cookies := signIn(t, e, "pat@school.test", "correct-horse-battery")
	require.NotEmpty(t, cookies)

	// Wrong password stays on the login page
	bad := url.Values{}
	bad.Set("email", "pat@school.test")
	bad.Set("password", "wrong-password")
	rec = postForm(e, "/auth/login", bad, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestTier3_WaitlistCapture(t *testing.T) {
	e, svc := setupTestEcho(t)

	form := url.Values{}
	form.Set("email", "keen@school.test")
	form.Set("feature", "Math Tutor")

	rec := postForm(e, "/api/waitlist", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You're on the list for Math Tutor")

	// Repeat signup reads the same as the first
	rec = postForm(e, "/api/waitlist", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You're on the list for Math Tutor")

	count, err := svc.storage.Queries.CountWaitlistSignups(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "repeat signups must not duplicate rows")

	// Invalid email re-renders the form with an error
	bad := url.Values{}
	bad.Set("email", "not-an-email")
	bad.Set("feature", "Math Tutor")
	rec = postForm(e, "/api/waitlist", bad, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a valid email address.")
}

func TestTier3_ContactSubmit(t *testing.T) {
	e, svc := setupTestEcho(t)

	form := url.Values{}
	form.Set("name", "Jordan Principal")
	form.Set("email", "jordan@district.test")
	form.Set("organization", "Springfield USD")
	form.Set("message", "We'd like a district demo.")

	rec := postForm(e, "/contact", form, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks Jordan Principal")

	count, err := svc.storage.Queries.CountContactRequests(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Missing message re-renders the form
	incomplete := url.Values{}
	incomplete.Set("name", "Jordan Principal")
	incomplete.Set("email", "jordan@district.test")
	rec = postForm(e, "/contact", incomplete, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in your name, a valid email, and a message.")
}

func TestAdminRequiresAdminAccount(t *testing.T) {
	e, svc := setupTestEcho(t)

	// Anonymous
	rec := get(e, "/admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed in, not an admin
	createTestUser(t, svc, "plain@school.test", "plain-password-1", false)
	cookies := signIn(t, e, "plain@school.test", "plain-password-1")
	rec = get(e, "/admin", cookies...)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Admin
	createTestUser(t, svc, "boss@faraday.test", "admin-password-1", true)
	cookies = signIn(t, e, "boss@faraday.test", "admin-password-1")
	rec = get(e, "/admin", cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Waitlist")
}

func TestServiceBrochurePDF(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := get(e, "/services/assessment/brochure.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, len(rec.Body.Bytes()) > 4 && string(rec.Body.Bytes()[:5]) == "%PDF-",
		"response should be a PDF document")

	rec = get(e, "/services/nope/brochure.pdf")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNonExistentRoutesReturn404(t *testing.T) {
	e, _ := setupTestEcho(t)

	for _, path := range []string{"/this-route-does-not-exist", "/api/nonexistent", "/fragments/nope"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "GET %s should 404", path)
	}
}

func TestHealthReportsEnvironment(t *testing.T) {
	e, _ := setupTestEcho(t)

	rec := get(e, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Contains(t, rec.Body.String(), `"environment":"test"`)
}
