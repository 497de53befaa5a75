package page

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/git-217/go-carDealership/internal/model"
)

// AllModels is the model select's default option.
var AllModels = Option{Value: "", Label: "All models"}

// ModelCascade keeps the model select in step with the brand select.
type ModelCascade struct {
	models []model.VehicleModel
	brand  ValueSource
	model  OptionList
}

// NewModelCascade binds the cascade to a brand and a model control.
// models is read-only and its order is the order options appear in.
func NewModelCascade(models []model.VehicleModel, brand ValueSource, modelSelect OptionList) *ModelCascade {
	return &ModelCascade{models: models, brand: brand, model: modelSelect}
}

// Refresh rebuilds the model options from the brand control's current value.
func (c *ModelCascade) Refresh() {
	c.OnBrandChange(c.brand.Value())
}

// OnBrandChange resets the model select to AllModels. An empty brandID disables
// it; otherwise it is enabled and gets one option per model of that brand.
func (c *ModelCascade) OnBrandChange(brandID string) {
	c.model.Reset(AllModels)

	brandID = strings.TrimSpace(brandID)
	if brandID == "" {
		c.model.SetDisabled(true)
		return
	}

	c.model.SetDisabled(false)
	for _, m := range ModelsOfBrand(c.models, brandID) {
		c.model.Append(Option{Value: strconv.FormatInt(m.ID, 10), Label: m.Name})
	}
}

// ModelsOfBrand returns the models whose brand matches brandID, in input order.
// A brandID that is not an integer matches nothing.
func ModelsOfBrand(models []model.VehicleModel, brandID string) []model.VehicleModel {
	id, err := strconv.ParseInt(strings.TrimSpace(brandID), 10, 64)
	if err != nil {
		return nil
	}

	var out []model.VehicleModel
	for _, m := range models {
		if m.BrandID == id {
			out = append(out, m)
		}
	}
	return out
}

// ParseModelsData decodes the model dataset embedded in the search page.
func ParseModelsData(data string) ([]model.VehicleModel, error) {
	var models []model.VehicleModel
	if err := json.Unmarshal([]byte(data), &models); err != nil {
		return nil, fmt.Errorf("failed to parse models data: %w", err)
	}
	return models, nil
}
