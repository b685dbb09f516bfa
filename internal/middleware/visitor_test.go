package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorEcho() *echo.Echo {
	e := echo.New()
	e.Use(VisitorID())
	e.GET("/", func(c echo.Context) error {
		id, _ := c.Get(VisitorIDKey).(string)
		return c.String(http.StatusOK, id)
	})
	return e
}

func TestVisitorIDAssignsCookieOnFirstVisit(t *testing.T) {
	e := newVisitorEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String(), "handler should see the new visitor ID")

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == VisitorCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "first visit should set the visitor cookie")
	assert.Equal(t, rec.Body.String(), cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestVisitorIDKeepsExistingCookie(t *testing.T) {
	e := newVisitorEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookieName, Value: "returning-visitor"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "returning-visitor", rec.Body.String())

	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, VisitorCookieName, c.Name, "a returning visitor must not be reissued")
	}
}
