package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

const policyColumns = `id, org_id, title, body, version, status, published_at, created_at, updated_at`

func scanPolicy(row pgx.Row) (domain.Policy, error) {
	var p domain.Policy
	err := row.Scan(&p.ID, &p.OrgID, &p.Title, &p.Body, &p.Version, &p.Status, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, ports.ErrNotFound
	}
	return p, err
}

func (db *DB) CreatePolicy(ctx context.Context, p domain.Policy) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO policies (`+policyColumns+`)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, p.ID, p.OrgID, p.Title, p.Body, p.Version, p.Status, p.PublishedAt, p.CreatedAt, p.UpdatedAt)
	return err
}

func (db *DB) GetPolicy(ctx context.Context, orgID, id string) (domain.Policy, error) {
	row := db.Pool.QueryRow(ctx, `
        SELECT `+policyColumns+` FROM policies WHERE org_id = $1 AND id = $2
    `, orgID, id)
	return scanPolicy(row)
}

func (db *DB) ListPolicies(ctx context.Context, orgID string) ([]domain.Policy, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT `+policyColumns+` FROM policies
        WHERE org_id = $1 ORDER BY title, version
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Policy
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (db *DB) UpdatePolicy(ctx context.Context, p domain.Policy) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE policies
        SET title=$3, body=$4, version=$5, status=$6, published_at=$7, updated_at=$8
        WHERE org_id = $1 AND id = $2
    `, p.OrgID, p.ID, p.Title, p.Body, p.Version, p.Status, p.PublishedAt, p.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
