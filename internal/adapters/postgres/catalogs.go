package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

// VendorRepository

func (db *DB) CreateVendor(ctx context.Context, v domain.Vendor) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO vendors (id, org_id, name, website, registrable_domain, jurisdiction, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, v.ID, v.OrgID, v.Name, v.Website, v.RegistrableDomain, v.Jurisdiction, v.CreatedAt)
	return err
}

func scanVendor(row pgx.Row) (domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(&v.ID, &v.OrgID, &v.Name, &v.Website, &v.RegistrableDomain, &v.Jurisdiction, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return v, ports.ErrNotFound
	}
	return v, err
}

func (db *DB) GetVendor(ctx context.Context, orgID, id string) (domain.Vendor, error) {
	row := db.Pool.QueryRow(ctx, `
        SELECT id, org_id, name, website, registrable_domain, jurisdiction, created_at
        FROM vendors WHERE org_id = $1 AND id = $2
    `, orgID, id)
	return scanVendor(row)
}

func (db *DB) ListVendors(ctx context.Context, orgID string) ([]domain.Vendor, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, org_id, name, website, registrable_domain, jurisdiction, created_at
        FROM vendors WHERE org_id = $1 ORDER BY name
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (db *DB) UpdateVendor(ctx context.Context, v domain.Vendor) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE vendors SET name=$3, website=$4, registrable_domain=$5, jurisdiction=$6
        WHERE org_id = $1 AND id = $2
    `, v.OrgID, v.ID, v.Name, v.Website, v.RegistrableDomain, v.Jurisdiction)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteVendor(ctx context.Context, orgID, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM vendors WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// DatasetRepository

func (db *DB) CreateDataset(ctx context.Context, d domain.Dataset) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO datasets (id, org_id, name, description, data_types, sensitivity, system_ref, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, d.ID, d.OrgID, d.Name, d.Description, d.DataTypes, d.Sensitivity, d.SystemRef, d.CreatedAt)
	return err
}

func scanDataset(row pgx.Row) (domain.Dataset, error) {
	var d domain.Dataset
	err := row.Scan(&d.ID, &d.OrgID, &d.Name, &d.Description, &d.DataTypes, &d.Sensitivity, &d.SystemRef, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return d, ports.ErrNotFound
	}
	return d, err
}

func (db *DB) GetDataset(ctx context.Context, orgID, id string) (domain.Dataset, error) {
	row := db.Pool.QueryRow(ctx, `
        SELECT id, org_id, name, description, data_types, sensitivity, system_ref, created_at
        FROM datasets WHERE org_id = $1 AND id = $2
    `, orgID, id)
	return scanDataset(row)
}

func (db *DB) ListDatasets(ctx context.Context, orgID string) ([]domain.Dataset, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, org_id, name, description, data_types, sensitivity, system_ref, created_at
        FROM datasets WHERE org_id = $1 ORDER BY name
    `, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Dataset
	for rows.Next() {
		d, err := scanDataset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) UpdateDataset(ctx context.Context, d domain.Dataset) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE datasets SET name=$3, description=$4, data_types=$5, sensitivity=$6, system_ref=$7
        WHERE org_id = $1 AND id = $2
    `, d.OrgID, d.ID, d.Name, d.Description, d.DataTypes, d.Sensitivity, d.SystemRef)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) DeleteDataset(ctx context.Context, orgID, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM datasets WHERE org_id = $1 AND id = $2`, orgID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
