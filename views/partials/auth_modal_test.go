package partials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderAuthModal(t *testing.T, tab string) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, AuthModal(tab).Render(&sb))
	return sb.String()
}

func TestAuthModalDefaultsToLogin(t *testing.T) {
	html := renderAuthModal(t, "")

	assert.Equal(t, 1, strings.Count(html, `class="auth-tab active"`), "exactly one tab should be active")
	assert.Equal(t, 1, strings.Count(html, `class="auth-pane active"`), "exactly one pane should be active")

	assert.Contains(t, html, `class="auth-pane active" data-auth-pane="login"`)
	assert.Contains(t, html, `class="auth-pane" data-auth-pane="register"`)
}

func TestAuthModalRegisterTab(t *testing.T) {
	html := renderAuthModal(t, TabRegister)

	assert.Equal(t, 1, strings.Count(html, `class="auth-tab active"`))
	assert.Equal(t, 1, strings.Count(html, `class="auth-pane active"`))

	assert.Contains(t, html, `class="auth-pane active" data-auth-pane="register"`)
	assert.Contains(t, html, `class="auth-pane" data-auth-pane="login"`)
}

func TestAuthModalUnknownTabFallsBackToLogin(t *testing.T) {
	html := renderAuthModal(t, "password-reset")

	assert.Equal(t, renderAuthModal(t, TabLogin), html)
}

func TestAuthModalHasBothForms(t *testing.T) {
	html := renderAuthModal(t, "")

	assert.Contains(t, html, `action="/auth/login"`)
	assert.Contains(t, html, `action="/auth/register"`)
	assert.Contains(t, html, "data-modal-close")
	assert.Contains(t, html, `data-auth-tab="login"`)
	assert.Contains(t, html, `data-auth-tab="register"`)
	assert.Contains(t, html, `hx-get="/fragments/auth-modal?tab=register"`)
}

func TestNormalizeAuthTab(t *testing.T) {
	assert.Equal(t, TabLogin, NormalizeAuthTab(""))
	assert.Equal(t, TabLogin, NormalizeAuthTab("login"))
	assert.Equal(t, TabLogin, NormalizeAuthTab("nonsense"))
	assert.Equal(t, TabRegister, NormalizeAuthTab("register"))
}

func TestComingSoonNamesTheFeature(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ComingSoon("Study Groups").Render(&sb))
	html := sb.String()

	assert.Contains(t, html, "Study Groups is coming soon")
	assert.Contains(t, html, `value="Study Groups"`)
	assert.Contains(t, html, `hx-post="/api/waitlist"`)
	assert.Contains(t, html, `action="/api/waitlist"`)
}
