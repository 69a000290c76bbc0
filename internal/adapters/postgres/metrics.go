package postgres

import (
	"context"
	"time"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

// MetricRepository

func (db *DB) RecordMetric(ctx context.Context, m domain.Metric) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO metrics (id, org_id, system_ref, name, value, recorded_at)
        VALUES ($1,$2,$3,$4,$5,$6)
    `, m.ID, m.OrgID, m.SystemRef, m.Name, m.Value, m.RecordedAt)
	return err
}

func (db *DB) ListMetricsBySystem(ctx context.Context, orgID, systemID string, since time.Time) ([]domain.Metric, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, org_id, system_ref, name, value, recorded_at
        FROM metrics
        WHERE org_id = $1 AND system_ref = $2 AND recorded_at >= $3
        ORDER BY recorded_at
    `, orgID, systemID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Metric
	for rows.Next() {
		var m domain.Metric
		if err := rows.Scan(&m.ID, &m.OrgID, &m.SystemRef, &m.Name, &m.Value, &m.RecordedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// TransparencyRepository

func (db *DB) PublishEntry(ctx context.Context, e domain.TransparencyEntry) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO transparency_entries (id, org_id, system_ref, public_name, public_description, risk_level, published_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (org_id, system_ref) DO UPDATE
        SET id = EXCLUDED.id,
            public_name = EXCLUDED.public_name,
            public_description = EXCLUDED.public_description,
            risk_level = EXCLUDED.risk_level,
            published_at = EXCLUDED.published_at
    `, e.ID, e.OrgID, e.SystemRef, e.PublicName, e.PublicDescription, e.RiskLevel, e.PublishedAt)
	return err
}

func (db *DB) UnpublishSystem(ctx context.Context, orgID, systemID string) error {
	tag, err := db.Pool.Exec(ctx, `
        DELETE FROM transparency_entries WHERE org_id = $1 AND system_ref = $2
    `, orgID, systemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) ListEntries(ctx context.Context, orgID string) ([]domain.TransparencyEntry, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, org_id, system_ref, public_name, public_description, risk_level, published_at
        FROM transparency_entries
        WHERE org_id = $1 ORDER BY published_at DESC
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TransparencyEntry
	for rows.Next() {
		var e domain.TransparencyEntry
		if err := rows.Scan(&e.ID, &e.OrgID, &e.SystemRef, &e.PublicName, &e.PublicDescription, &e.RiskLevel, &e.PublishedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
