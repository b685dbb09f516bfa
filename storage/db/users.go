package db

import (
	"context"
	"database/sql"
)

const createUser = `
INSERT INTO users (id, email, password_hash, full_name, is_admin)
VALUES (?, ?, ?, ?, ?)
RETURNING id, email, password_hash, full_name, is_admin, created_at, updated_at, last_login_at
`

type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     sql.NullString
	IsAdmin      bool
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser,
		arg.ID,
		arg.Email,
		arg.PasswordHash,
		arg.FullName,
		arg.IsAdmin,
	)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	)
	return u, err
}

const getUserByEmail = `
SELECT id, email, password_hash, full_name, is_admin, created_at, updated_at, last_login_at
FROM users
WHERE email = ? COLLATE NOCASE
`

func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	)
	return u, err
}

const getUserByID = `
SELECT id, email, password_hash, full_name, is_admin, created_at, updated_at, last_login_at
FROM users
WHERE id = ?
`

func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.IsAdmin,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastLoginAt,
	)
	return u, err
}

const updateUserLastLogin = `
UPDATE users
SET last_login_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, updateUserLastLogin, id)
	return err
}

const setUserAdmin = `
UPDATE users
SET is_admin = ?, updated_at = CURRENT_TIMESTAMP
WHERE email = ? COLLATE NOCASE
`

type SetUserAdminParams struct {
	IsAdmin bool
	Email   string
}

func (q *Queries) SetUserAdmin(ctx context.Context, arg SetUserAdminParams) error {
	_, err := q.db.ExecContext(ctx, setUserAdmin, arg.IsAdmin, arg.Email)
	return err
}

const countUsers = `
SELECT COUNT(*) FROM users
`

func (q *Queries) CountUsers(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countUsers)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listRecentUsers = `
SELECT id, email, password_hash, full_name, is_admin, created_at, updated_at, last_login_at
FROM users
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListRecentUsers(ctx context.Context, limit int64) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listRecentUsers, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.FullName,
			&u.IsAdmin,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.LastLoginAt,
		); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
