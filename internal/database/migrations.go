package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"brands", `
		CREATE TABLE IF NOT EXISTS brands (
			id   SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE
		)
	`},
	{"models", `
		CREATE TABLE IF NOT EXISTS models (
			id       SERIAL PRIMARY KEY,
			brand_id INTEGER NOT NULL REFERENCES brands(id) ON DELETE CASCADE,
			name     VARCHAR(100) NOT NULL
		)
	`},
	{"idx_models_brand", `CREATE INDEX IF NOT EXISTS idx_models_brand ON models(brand_id)`},
	{"cars", `
		CREATE TABLE IF NOT EXISTS cars (
			id       SERIAL PRIMARY KEY,
			model_id INTEGER NOT NULL REFERENCES models(id) ON DELETE CASCADE,
			year     INTEGER NOT NULL,
			price    NUMERIC(14,2) NOT NULL
		)
	`},
	{"idx_cars_model", `CREATE INDEX IF NOT EXISTS idx_cars_model ON cars(model_id)`},
	{"idx_cars_year", `CREATE INDEX IF NOT EXISTS idx_cars_year ON cars(year)`},
}

// RunMigrations creates the catalog tables when they are missing.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.name, err)
		}
	}
	return nil
}
