package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/git-217/go-carDealership/internal/model"
)

type BrandRepo struct {
	db *pgxpool.Pool
}

func NewBrandRepo(db *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{db: db}
}

// List returns all brands ordered by name
func (r *BrandRepo) List(ctx context.Context) ([]model.Brand, error) {
	query := `
		SELECT id, name
		FROM brands
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}
