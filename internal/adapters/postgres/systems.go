package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

// SystemRepository

func (db *DB) CreateSystem(ctx context.Context, s domain.AISystem) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO ai_systems
            (id, org_id, name, description, status, autonomy_level, data_types,
             affected_population, sensitive_domains, vendor_ref, risk_score,
             risk_level, override_level, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
    `, s.ID, s.OrgID, s.Name, s.Description, s.Status, s.AutonomyLevel, s.DataTypes,
		s.AffectedPopulation, s.SensitiveDomains, s.VendorRef, s.RiskScore,
		s.RiskLevel, s.OverrideLevel, s.CreatedAt, s.UpdatedAt)
	return err
}

const systemColumns = `
    id, org_id, name, description, status, autonomy_level, data_types,
    affected_population, sensitive_domains, vendor_ref, risk_score,
    risk_level, override_level, created_at, updated_at`

func scanSystem(row pgx.Row) (domain.AISystem, error) {
	var s domain.AISystem
	err := row.Scan(&s.ID, &s.OrgID, &s.Name, &s.Description, &s.Status,
		&s.AutonomyLevel, &s.DataTypes, &s.AffectedPopulation, &s.SensitiveDomains,
		&s.VendorRef, &s.RiskScore, &s.RiskLevel, &s.OverrideLevel,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, ports.ErrNotFound
	}
	return s, err
}

func (db *DB) GetSystem(ctx context.Context, orgID, id string) (domain.AISystem, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+systemColumns+` FROM ai_systems WHERE org_id = $1 AND id = $2`, orgID, id)
	return scanSystem(row)
}

func (db *DB) ListSystems(ctx context.Context, orgID string) ([]domain.AISystem, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+systemColumns+` FROM ai_systems WHERE org_id = $1 ORDER BY created_at`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AISystem
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (db *DB) UpdateSystem(ctx context.Context, s domain.AISystem) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE ai_systems SET
            name=$3, description=$4, status=$5, autonomy_level=$6, data_types=$7,
            affected_population=$8, sensitive_domains=$9, vendor_ref=$10,
            risk_score=$11, risk_level=$12, override_level=$13, updated_at=$14
        WHERE org_id = $1 AND id = $2
    `, s.OrgID, s.ID, s.Name, s.Description, s.Status, s.AutonomyLevel, s.DataTypes,
		s.AffectedPopulation, s.SensitiveDomains, s.VendorRef, s.RiskScore,
		s.RiskLevel, s.OverrideLevel, s.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteSystem(ctx context.Context, orgID, id string) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM ai_systems WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
