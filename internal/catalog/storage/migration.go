package storage

import "database/sql"

type CatalogSchema struct{}

func (m *CatalogSchema) UpMigration(db *sql.DB) error {
	_, err := db.Exec(`CREATE SCHEMA IF NOT EXISTS catalog`)
	return err
}

type SupplierProducts struct{}

func (m *SupplierProducts) UpMigration(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS catalog.supplier_products (
		supplier_id    TEXT NOT NULL,
		external_id    TEXT NOT NULL,
		sku            TEXT NOT NULL DEFAULT '',
		name           TEXT NOT NULL DEFAULT '',
		description    TEXT NOT NULL DEFAULT '',
		price          NUMERIC(12, 2) NOT NULL DEFAULT 0,
		cost_price     NUMERIC(12, 2) NOT NULL DEFAULT 0,
		currency       TEXT NOT NULL DEFAULT 'EUR',
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		images         TEXT[] NOT NULL DEFAULT '{}',
		category       TEXT NOT NULL DEFAULT '',
		brand          TEXT NOT NULL DEFAULT '',
		weight         NUMERIC(10, 3) NOT NULL DEFAULT 0,
		dimensions     JSONB,
		variants       JSONB,
		attributes     JSONB NOT NULL DEFAULT '{}',
		status         TEXT NOT NULL DEFAULT 'active',
		supplier_name  TEXT NOT NULL DEFAULT '',
		last_synced_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (supplier_id, external_id)
	)`
	_, err := db.Exec(query)
	return err
}
