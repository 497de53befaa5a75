package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/git-217/go-carDealership/internal/model"
)

type ModelRepo struct {
	db *pgxpool.Pool
}

func NewModelRepo(db *pgxpool.Pool) *ModelRepo {
	return &ModelRepo{db: db}
}

// List returns every model in id order. The order is kept by the model
// dropdown, so it must stay stable between calls.
func (r *ModelRepo) List(ctx context.Context) ([]model.VehicleModel, error) {
	query := `
		SELECT id, brand_id, name
		FROM models
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query models: %w", err)
	}
	defer rows.Close()

	var models []model.VehicleModel
	for rows.Next() {
		var m model.VehicleModel
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating models: %w", err)
	}

	return models, nil
}
