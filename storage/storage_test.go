package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsSeedCatalog(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()

	services, err := queries.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 7)

	bySlug := map[string]db.Service{}
	for _, svc := range services {
		bySlug[svc.Slug] = svc
	}
	assert.Contains(t, bySlug, "administrative")
	assert.Contains(t, bySlug, "assessment")
	assert.Contains(t, bySlug, "language-arts")
	assert.Contains(t, bySlug, "lms-integration")
	assert.Contains(t, bySlug, "physical-education")
	assert.Contains(t, bySlug, "secretary")
	assert.Contains(t, bySlug, "study-groups")

	assert.Equal(t, db.ServiceStatusComingSoon, bySlug["study-groups"].Status)
	assert.Equal(t, db.ServiceStatusAvailable, bySlug["assessment"].Status)

	features, err := queries.ListServiceFeatures(ctx, bySlug["assessment"].ID)
	require.NoError(t, err)
	assert.Len(t, features, 3)
	assert.Equal(t, int64(1), features[0].Position)

	siteName, err := queries.GetSiteConfig(ctx, "seo_site_name")
	require.NoError(t, err)
	assert.Equal(t, "Faraday AI", siteName)
}

func TestUserQueries(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()

	created, err := queries.CreateUser(ctx, db.CreateUserParams{
		ID:           ulid.Make().String(),
		Email:        "teacher@district.example",
		PasswordHash: "not-a-real-hash",
		FullName:     sql.NullString{String: gofakeit.Name(), Valid: true},
	})
	require.NoError(t, err)
	assert.False(t, created.IsAdmin)
	assert.False(t, created.CreatedAt.IsZero())

	// Lookup is case-insensitive on email
	found, err := queries.GetUserByEmail(ctx, "TEACHER@district.example")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Duplicate email rejected by the unique constraint
	_, err = queries.CreateUser(ctx, db.CreateUserParams{
		ID:           ulid.Make().String(),
		Email:        "teacher@district.example",
		PasswordHash: "other-hash",
	})
	assert.Error(t, err)

	require.NoError(t, queries.SetUserAdmin(ctx, db.SetUserAdminParams{IsAdmin: true, Email: created.Email}))
	promoted, err := queries.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	count, err := queries.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWaitlistUniquePerFeature(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	email := gofakeit.Email()

	first, err := queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
		ID:      ulid.Make().String(),
		Email:   email,
		Feature: "pricing",
		Source:  sql.NullString{String: "pricing-page", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "pricing", first.Feature)

	// Same email on the same feature violates UNIQUE(email, feature)
	_, err = queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
		ID:      ulid.Make().String(),
		Email:   email,
		Feature: "pricing",
	})
	assert.Error(t, err)

	// Same email on another feature is fine
	_, err = queries.CreateWaitlistSignup(ctx, db.CreateWaitlistSignupParams{
		ID:      ulid.Make().String(),
		Email:   email,
		Feature: "study-groups",
	})
	require.NoError(t, err)

	count, err := queries.CountWaitlistSignups(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSiteConfigUpsert(t *testing.T) {
	_, queries, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, queries.UpsertSiteConfig(ctx, db.UpsertSiteConfigParams{
		Key:   "seo_site_name",
		Value: "Faraday AI (staging)",
	}))

	value, err := queries.GetSiteConfig(ctx, "seo_site_name")
	require.NoError(t, err)
	assert.Equal(t, "Faraday AI (staging)", value)
}
