package handler

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/git-217/go-carDealership/internal/model"
)

type CarSearcher interface {
	Search(ctx context.Context, filter model.CarFilter) ([]model.SearchResult, error)
}

// SearchHandler serves GET /search, the JSON endpoint behind the search form.
type SearchHandler struct {
	cars   CarSearcher
	logger *slog.Logger
}

func NewSearchHandler(cars CarSearcher, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{cars: cars, logger: logger}
}

// Search filters by brand id, model id, exact year and maximum price. Missing
// parameters are not filtered on.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, code, msg := parseCarFilter(r)
	if code != "" {
		writeError(w, http.StatusBadRequest, code, msg)
		return
	}

	h.logger.Info("searching cars",
		"brand", r.URL.Query().Get("brand"),
		"model", r.URL.Query().Get("model"),
		"year", r.URL.Query().Get("year"),
		"price", r.URL.Query().Get("price"),
	)

	cars, err := h.cars.Search(r.Context(), filter)
	if err != nil {
		h.logger.Error("car search failed", "error", err)
		writeError(w, http.StatusInternalServerError, "database_error", "Error searching cars")
		return
	}

	if cars == nil {
		cars = []model.SearchResult{}
	}

	writeJSON(w, http.StatusOK, cars)
}

func parseCarFilter(r *http.Request) (model.CarFilter, string, string) {
	q := r.URL.Query()
	var filter model.CarFilter

	if v := strings.TrimSpace(q.Get("brand")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, "invalid_brand", "brand must be an integer id"
		}
		filter.BrandID = &id
	}

	if v := strings.TrimSpace(q.Get("model")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, "invalid_model", "model must be an integer id"
		}
		filter.ModelID = &id
	}

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, "invalid_year", "year must be a number"
		}
		filter.Year = &year
	}

	if v := strings.TrimSpace(q.Get("price")); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			return filter, "invalid_price", "price must be a number"
		}
		filter.MaxPrice = &price
	}

	return filter, "", ""
}
