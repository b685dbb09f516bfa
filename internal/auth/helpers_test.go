package auth

import (
	"database/sql"
	"testing"

	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetDBUser_Found(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:       ulid.Make().String(),
		Email:    "test@example.com",
		FullName: sql.NullString{String: "Test User", Valid: true},
	}

	c.Set(DBUserKey, testUser)

	user, ok := GetDBUser(c)

	assert.True(t, ok, "Should find user in context")
	assert.NotNil(t, user)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, testUser.Email, user.Email)
}

func TestGetDBUser_NotFound(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	user, ok := GetDBUser(c)

	assert.False(t, ok, "Should not find user in context")
	assert.Nil(t, user)
}

func TestGetDBUser_WrongKey(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:    ulid.Make().String(),
		Email: "test@example.com",
	}
	c.Set("user", testUser) // Wrong key!

	user, ok := GetDBUser(c)

	assert.False(t, ok, "Should not find user with wrong key")
	assert.Nil(t, user)
}

func TestGetDBUser_WrongType(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	c.Set(DBUserKey, "not a user")

	user, ok := GetDBUser(c)

	assert.False(t, ok, "Should not cast wrong type")
	assert.Nil(t, user)
}

func TestIsAuthenticated_True(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	c.Set(IsAuthenticatedKey, true)

	assert.True(t, IsAuthenticated(c))
}

func TestIsAuthenticated_False(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	assert.False(t, IsAuthenticated(c))
}

func TestIsAdmin_True(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:      ulid.Make().String(),
		Email:   "admin@example.com",
		IsAdmin: true,
	}
	c.Set(DBUserKey, testUser)

	assert.True(t, IsAdmin(c))
}

func TestIsAdmin_False_NotAdmin(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:      ulid.Make().String(),
		Email:   "user@example.com",
		IsAdmin: false,
	}
	c.Set(DBUserKey, testUser)

	assert.False(t, IsAdmin(c))
}

func TestIsAdmin_False_NoUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	assert.False(t, IsAdmin(c))
}

func TestGetAuthContext_Anonymous(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	authCtx := GetAuthContext(c)

	assert.False(t, authCtx.IsAuthenticated)
	assert.Nil(t, authCtx.User)
}

func TestGetAuthContext_SignedIn(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:       ulid.Make().String(),
		Email:    "teacher@district.example",
		FullName: sql.NullString{String: "Pat Teacher", Valid: true},
	}
	c.Set(DBUserKey, testUser)
	c.Set(IsAuthenticatedKey, true)

	authCtx := GetAuthContext(c)

	assert.True(t, authCtx.IsAuthenticated)
	assert.Equal(t, "Pat Teacher", authCtx.User.FullName)
	assert.Equal(t, testUser.Email, authCtx.User.Email)
}

func TestGetAuthContext_FallsBackToEmail(t *testing.T) {
	e := echo.New()
	c := e.NewContext(nil, nil)

	testUser := &db.User{
		ID:    ulid.Make().String(),
		Email: "teacher@district.example",
	}
	c.Set(DBUserKey, testUser)
	c.Set(IsAuthenticatedKey, true)

	authCtx := GetAuthContext(c)

	assert.Equal(t, testUser.Email, authCtx.User.FullName)
}

// Guard the literal values since session middleware and handlers share them.
func TestDBUserKey_Constant(t *testing.T) {
	assert.Equal(t, "db_user", DBUserKey, "DBUserKey constant should be 'db_user'")
}
