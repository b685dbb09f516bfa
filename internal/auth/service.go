package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/faraday-ai/faraday-web/storage/db"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on any login failure. Callers must not
	// distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service handles account registration and credential checks.
type Service struct {
	queries *db.Queries
	cache   *userCache
}

// NewService creates a new auth service
func NewService(queries *db.Queries) *Service {
	return &Service{
		queries: queries,
		cache:   newUserCache(5 * time.Minute),
	}
}

// Register creates an account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (db.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.queries.GetUserByEmail(ctx, email); err == nil {
		return db.User{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return db.User{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return db.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.queries.CreateUser(ctx, db.CreateUserParams{
		ID:           ulid.Make().String(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     sql.NullString{String: strings.TrimSpace(fullName), Valid: fullName != ""},
	})
	if err != nil {
		return db.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (db.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.User{}, ErrInvalidCredentials
		}
		return db.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return db.User{}, ErrInvalidCredentials
	}

	if err := s.queries.UpdateUserLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is best effort.
		return user, nil
	}
	return user, nil
}

// GetUser fetches a user by ID (with caching)
func (s *Service) GetUser(ctx context.Context, userID string) (*db.User, error) {
	if cached := s.cache.Get(userID); cached != nil {
		return cached, nil
	}

	user, err := s.queries.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	s.cache.Set(userID, &user)
	return &user, nil
}

// InvalidateCache removes a user from the cache (useful after profile updates)
func (s *Service) InvalidateCache(userID string) {
	s.cache.Delete(userID)
}

// Stop shuts down the cache cleanup goroutine.
func (s *Service) Stop() {
	s.cache.Stop()
}

// userCache is a simple in-memory cache for user data
type userCache struct {
	mu      sync.RWMutex
	data    map[string]*cacheEntry
	ttl     time.Duration
	cleanup *time.Ticker
	done    chan bool
}

type cacheEntry struct {
	user      *db.User
	expiresAt time.Time
}

func newUserCache(ttl time.Duration) *userCache {
	cache := &userCache{
		data:    make(map[string]*cacheEntry),
		ttl:     ttl,
		cleanup: time.NewTicker(ttl),
		done:    make(chan bool),
	}

	go cache.cleanupExpired()

	return cache
}

func (c *userCache) Get(userID string) *db.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.data[userID]
	if !exists {
		return nil
	}

	if time.Now().After(entry.expiresAt) {
		return nil
	}

	return entry.user
}

func (c *userCache) Set(userID string, user *db.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[userID] = &cacheEntry{
		user:      user,
		expiresAt: time.Now().Add(c.ttl),
	}
}

func (c *userCache) Delete(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, userID)
}

func (c *userCache) cleanupExpired() {
	for {
		select {
		case <-c.cleanup.C:
			c.mu.Lock()
			now := time.Now()
			for id, entry := range c.data {
				if now.After(entry.expiresAt) {
					delete(c.data, id)
				}
			}
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

func (c *userCache) Stop() {
	c.cleanup.Stop()
	c.done <- true
}
