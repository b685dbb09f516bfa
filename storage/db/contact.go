package db

import (
	"context"
	"database/sql"
)

const createContactRequest = `
INSERT INTO contact_requests (id, name, email, organization, message, status)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, name, email, organization, message, status, created_at
`

type CreateContactRequestParams struct {
	ID           string
	Name         string
	Email        string
	Organization sql.NullString
	Message      string
	Status       string
}

func (q *Queries) CreateContactRequest(ctx context.Context, arg CreateContactRequestParams) (ContactRequest, error) {
	row := q.db.QueryRowContext(ctx, createContactRequest,
		arg.ID,
		arg.Name,
		arg.Email,
		arg.Organization,
		arg.Message,
		arg.Status,
	)
	var r ContactRequest
	err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Organization, &r.Message, &r.Status, &r.CreatedAt)
	return r, err
}

const updateContactRequestStatus = `
UPDATE contact_requests
SET status = ?
WHERE id = ?
`

type UpdateContactRequestStatusParams struct {
	Status string
	ID     string
}

func (q *Queries) UpdateContactRequestStatus(ctx context.Context, arg UpdateContactRequestStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateContactRequestStatus, arg.Status, arg.ID)
	return err
}

const countContactRequests = `
SELECT COUNT(*) FROM contact_requests
`

func (q *Queries) CountContactRequests(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countContactRequests)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listRecentContactRequests = `
SELECT id, name, email, organization, message, status, created_at
FROM contact_requests
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListRecentContactRequests(ctx context.Context, limit int64) ([]ContactRequest, error) {
	rows, err := q.db.QueryContext(ctx, listRecentContactRequests, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactRequest
	for rows.Next() {
		var r ContactRequest
		if err := rows.Scan(&r.ID, &r.Name, &r.Email, &r.Organization, &r.Message, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
