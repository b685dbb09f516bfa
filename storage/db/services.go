package db

import "context"

const listServices = `
SELECT id, slug, name, tagline, description, status, sort_order, created_at
FROM services
ORDER BY sort_order, name
`

func (q *Queries) ListServices(ctx context.Context) ([]Service, error) {
	rows, err := q.db.QueryContext(ctx, listServices)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(
			&s.ID,
			&s.Slug,
			&s.Name,
			&s.Tagline,
			&s.Description,
			&s.Status,
			&s.SortOrder,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getServiceBySlug = `
SELECT id, slug, name, tagline, description, status, sort_order, created_at
FROM services
WHERE slug = ?
`

func (q *Queries) GetServiceBySlug(ctx context.Context, slug string) (Service, error) {
	row := q.db.QueryRowContext(ctx, getServiceBySlug, slug)
	var s Service
	err := row.Scan(
		&s.ID,
		&s.Slug,
		&s.Name,
		&s.Tagline,
		&s.Description,
		&s.Status,
		&s.SortOrder,
		&s.CreatedAt,
	)
	return s, err
}

const listServiceFeatures = `
SELECT id, service_id, position, title, detail
FROM service_features
WHERE service_id = ?
ORDER BY position
`

func (q *Queries) ListServiceFeatures(ctx context.Context, serviceID string) ([]ServiceFeature, error) {
	rows, err := q.db.QueryContext(ctx, listServiceFeatures, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ServiceFeature
	for rows.Next() {
		var f ServiceFeature
		if err := rows.Scan(&f.ID, &f.ServiceID, &f.Position, &f.Title, &f.Detail); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createService = `
INSERT INTO services (id, slug, name, tagline, description, status, sort_order)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

type CreateServiceParams struct {
	ID          string
	Slug        string
	Name        string
	Tagline     string
	Description string
	Status      string
	SortOrder   int64
}

func (q *Queries) CreateService(ctx context.Context, arg CreateServiceParams) error {
	_, err := q.db.ExecContext(ctx, createService,
		arg.ID,
		arg.Slug,
		arg.Name,
		arg.Tagline,
		arg.Description,
		arg.Status,
		arg.SortOrder,
	)
	return err
}

const createServiceFeature = `
INSERT INTO service_features (id, service_id, position, title, detail)
VALUES (?, ?, ?, ?, ?)
`

type CreateServiceFeatureParams struct {
	ID        string
	ServiceID string
	Position  int64
	Title     string
	Detail    string
}

func (q *Queries) CreateServiceFeature(ctx context.Context, arg CreateServiceFeatureParams) error {
	_, err := q.db.ExecContext(ctx, createServiceFeature,
		arg.ID,
		arg.ServiceID,
		arg.Position,
		arg.Title,
		arg.Detail,
	)
	return err
}
