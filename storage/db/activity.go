package db

import (
	"context"
	"database/sql"
)

const insertActivity = `
INSERT INTO activity_log (id, event_type, subject, detail)
VALUES (?, ?, ?, ?)
`

type InsertActivityParams struct {
	ID        string
	EventType string
	Subject   sql.NullString
	Detail    sql.NullString
}

func (q *Queries) InsertActivity(ctx context.Context, arg InsertActivityParams) error {
	_, err := q.db.ExecContext(ctx, insertActivity,
		arg.ID,
		arg.EventType,
		arg.Subject,
		arg.Detail,
	)
	return err
}

const listRecentActivity = `
SELECT id, event_type, subject, detail, created_at
FROM activity_log
ORDER BY created_at DESC
LIMIT ?
`

func (q *Queries) ListRecentActivity(ctx context.Context, limit int64) ([]ActivityLog, error) {
	rows, err := q.db.QueryContext(ctx, listRecentActivity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ActivityLog
	for rows.Next() {
		var a ActivityLog
		if err := rows.Scan(&a.ID, &a.EventType, &a.Subject, &a.Detail, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
