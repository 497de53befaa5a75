package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/git-217/go-carDealership/internal/model"
)

const carSearchBase = `
		SELECT b.name AS brand_name, m.name AS model_name, c.year, c.price
		FROM cars c
		JOIN models m ON c.model_id = m.id
		JOIN brands b ON m.brand_id = b.id
		WHERE 1=1`

type CarRepo struct {
	db *pgxpool.Pool
}

func NewCarRepo(db *pgxpool.Pool) *CarRepo {
	return &CarRepo{db: db}
}

// Search returns cars matching brand, model and year exactly and costing at most MaxPrice.
func (r *CarRepo) Search(ctx context.Context, filter model.CarFilter) ([]model.SearchResult, error) {
	query, args := buildCarSearch(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search cars: %w", err)
	}
	defer rows.Close()

	cars := []model.SearchResult{}
	for rows.Next() {
		var c model.SearchResult
		if err := rows.Scan(&c.BrandName, &c.ModelName, &c.Year, &c.Price); err != nil {
			return nil, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cars: %w", err)
	}

	return cars, nil
}

func buildCarSearch(filter model.CarFilter) (string, []interface{}) {
	query := carSearchBase
	args := []interface{}{}
	argIndex := 1

	if filter.BrandID != nil {
		query += fmt.Sprintf(` AND b.id = $%d`, argIndex)
		args = append(args, *filter.BrandID)
		argIndex++
	}

	if filter.ModelID != nil {
		query += fmt.Sprintf(` AND m.id = $%d`, argIndex)
		args = append(args, *filter.ModelID)
		argIndex++
	}

	if filter.Year != nil {
		query += fmt.Sprintf(` AND c.year = $%d`, argIndex)
		args = append(args, *filter.Year)
		argIndex++
	}

	if filter.MaxPrice != nil {
		query += fmt.Sprintf(` AND c.price <= $%d`, argIndex)
		args = append(args, *filter.MaxPrice)
	}

	query += ` ORDER BY c.id`

	return query, args
}
