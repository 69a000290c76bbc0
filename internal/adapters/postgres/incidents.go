package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

// IncidentRepository

const incidentColumns = `
    id, org_id, system_ref, category, severity, status, summary, occurred_at, created_at`

func scanIncident(row pgx.Row) (domain.Incident, error) {
	var in domain.Incident
	err := row.Scan(&in.ID, &in.OrgID, &in.SystemRef, &in.Category, &in.Severity,
		&in.Status, &in.Summary, &in.OccurredAt, &in.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return in, ports.ErrNotFound
	}
	return in, err
}

func (db *DB) CreateIncident(ctx context.Context, in domain.Incident) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO incidents (id, org_id, system_ref, category, severity, status, summary, occurred_at, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, in.ID, in.OrgID, in.SystemRef, in.Category, in.Severity, in.Status, in.Summary, in.OccurredAt, in.CreatedAt)
	return err
}

func (db *DB) GetIncident(ctx context.Context, orgID, id string) (domain.Incident, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+incidentColumns+` FROM incidents WHERE org_id = $1 AND id = $2`, orgID, id)
	return scanIncident(row)
}

func (db *DB) ListIncidents(ctx context.Context, orgID string) ([]domain.Incident, error) {
	return db.listIncidents(ctx, orgID, time.Time{})
}

func (db *DB) ListIncidentsSince(ctx context.Context, orgID string, since time.Time) ([]domain.Incident, error) {
	return db.listIncidents(ctx, orgID, since)
}

func (db *DB) listIncidents(ctx context.Context, orgID string, since time.Time) ([]domain.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE org_id = $1`
	args := []any{orgID}
	if !since.IsZero() {
		query += ` AND occurred_at >= $2`
		args = append(args, since)
	}
	query += ` ORDER BY occurred_at`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Incident
	for rows.Next() {
		in, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (db *DB) UpdateIncident(ctx context.Context, in domain.Incident) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE incidents SET
            system_ref=$3, category=$4, severity=$5, status=$6, summary=$7, occurred_at=$8
        WHERE org_id = $1 AND id = $2
    `, in.OrgID, in.ID, in.SystemRef, in.Category, in.Severity, in.Status, in.Summary, in.OccurredAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteIncident(ctx context.Context, orgID, id string) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM incidents WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
