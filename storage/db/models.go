package db

import (
	"database/sql"
	"time"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     sql.NullString
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  sql.NullTime
}

type Service struct {
	ID          string
	Slug        string
	Name        string
	Tagline     string
	Description string
	Status      string
	SortOrder   int64
	CreatedAt   time.Time
}

type ServiceFeature struct {
	ID        string
	ServiceID string
	Position  int64
	Title     string
	Detail    string
}

type WaitlistSignup struct {
	ID        string
	Email     string
	Feature   string
	Source    sql.NullString
	CreatedAt time.Time
}

type ContactRequest struct {
	ID           string
	Name         string
	Email        string
	Organization sql.NullString
	Message      string
	Status       string
	CreatedAt    time.Time
}

type SiteConfig struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

type ActivityLog struct {
	ID        string
	EventType string
	Subject   sql.NullString
	Detail    sql.NullString
	CreatedAt time.Time
}

// Service status values.
const (
	ServiceStatusAvailable  = "available"
	ServiceStatusComingSoon = "coming_soon"
)

// Contact request workflow states.
const (
	ContactStatusNew      = "new"
	ContactStatusReviewed = "reviewed"
	ContactStatusArchived = "archived"
)
