package db

import "context"

const getSiteConfig = `
SELECT value FROM site_config WHERE key = ?
`

func (q *Queries) GetSiteConfig(ctx context.Context, key string) (string, error) {
	row := q.db.QueryRowContext(ctx, getSiteConfig, key)
	var value string
	err := row.Scan(&value)
	return value, err
}

const upsertSiteConfig = `
INSERT INTO site_config (key, value)
VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
`

type UpsertSiteConfigParams struct {
	Key   string
	Value string
}

func (q *Queries) UpsertSiteConfig(ctx context.Context, arg UpsertSiteConfigParams) error {
	_, err := q.db.ExecContext(ctx, upsertSiteConfig, arg.Key, arg.Value)
	return err
}

const listSiteConfig = `
SELECT key, value, updated_at FROM site_config ORDER BY key
`

func (q *Queries) ListSiteConfig(ctx context.Context) ([]SiteConfig, error) {
	rows, err := q.db.QueryContext(ctx, listSiteConfig)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SiteConfig
	for rows.Next() {
		var c SiteConfig
		if err := rows.Scan(&c.Key, &c.Value, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
