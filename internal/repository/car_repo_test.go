package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/git-217/go-carDealership/internal/model"
)

func TestBuildCarSearchNoFilter(t *testing.T) {
	query, args := buildCarSearch(model.CarFilter{})

	assert.Empty(t, args)
	assert.NotContains(t, query, "$1")
	assert.True(t, strings.HasSuffix(query, "ORDER BY c.id"))
}

func TestBuildCarSearchAllFilters(t *testing.T) {
	brand, modelID, year, price := int64(3), int64(12), 2020, 1500.0

	query, args := buildCarSearch(model.CarFilter{
		BrandID:  &brand,
		ModelID:  &modelID,
		Year:     &year,
		MaxPrice: &price,
	})

	assert.Contains(t, query, "AND b.id = $1")
	assert.Contains(t, query, "AND m.id = $2")
	assert.Contains(t, query, "AND c.year = $3")
	assert.Contains(t, query, "AND c.price <= $4")
	assert.Equal(t, []interface{}{int64(3), int64(12), 2020, 1500.0}, args)
}

func TestBuildCarSearchPlaceholdersAreDense(t *testing.T) {
	year, price := 2018, 900.0

	query, args := buildCarSearch(model.CarFilter{Year: &year, MaxPrice: &price})

	assert.Contains(t, query, "AND c.year = $1")
	assert.Contains(t, query, "AND c.price <= $2")
	assert.NotContains(t, query, "b.id =")
	assert.Equal(t, []interface{}{2018, 900.0}, args)
}
