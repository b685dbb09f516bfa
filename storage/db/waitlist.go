package db

import (
	"context"
	"database/sql"
	"time"
)

const createWaitlistSignup = `
INSERT INTO waitlist_signups (id, email, feature, source)
VALUES (?, ?, ?, ?)
RETURNING id, email, feature, source, created_at
`

type CreateWaitlistSignupParams struct {
	ID      string
	Email   string
	Feature string
	Source  sql.NullString
}

func (q *Queries) CreateWaitlistSignup(ctx context.Context, arg CreateWaitlistSignupParams) (WaitlistSignup, error) {
	row := q.db.QueryRowContext(ctx, createWaitlistSignup,
		arg.ID,
		arg.Email,
		arg.Feature,
		arg.Source,
	)
	var w WaitlistSignup
	err := row.Scan(&w.ID, &w.Email, &w.Feature, &w.Source, &w.CreatedAt)
	return w, err
}

const getWaitlistSignup = `
SELECT id, email, feature, source, created_at
FROM waitlist_signups
WHERE email = ? COLLATE NOCASE AND feature = ?
`

type GetWaitlistSignupParams struct {
	Email   string
	Feature string
}

func (q *Queries) GetWaitlistSignup(ctx context.Context, arg GetWaitlistSignupParams) (WaitlistSignup, error) {
	row := q.db.QueryRowContext(ctx, getWaitlistSignup, arg.Email, arg.Feature)
	var w WaitlistSignup
	err := row.Scan(&w.ID, &w.Email, &w.Feature, &w.Source, &w.CreatedAt)
	return w, err
}

const countWaitlistSignups = `
SELECT COUNT(*) FROM waitlist_signups
`

func (q *Queries) CountWaitlistSignups(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countWaitlistSignups)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countWaitlistSignupsSince = `
SELECT COUNT(*) FROM waitlist_signups WHERE created_at >= ?
`

func (q *Queries) CountWaitlistSignupsSince(ctx context.Context, since time.Time) (int64, error) {
	row := q.db.QueryRowContext(ctx, countWaitlistSignupsSince, since)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listRecentWaitlistSignups = `
SELECT id, email, feature, source, created_at
FROM waitlist_signups
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListRecentWaitlistSignups(ctx context.Context, limit int64) ([]WaitlistSignup, error) {
	rows, err := q.db.QueryContext(ctx, listRecentWaitlistSignups, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WaitlistSignup
	for rows.Next() {
		var w WaitlistSignup
		if err := rows.Scan(&w.ID, &w.Email, &w.Feature, &w.Source, &w.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
