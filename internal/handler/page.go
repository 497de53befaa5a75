package handler

import (
	"context"
	"log/slog"
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/git-217/go-carDealership/internal/model"
	"github.com/git-217/go-carDealership/internal/page"
	"github.com/git-217/go-carDealership/internal/view"
)

type CatalogSource interface {
	Snapshot(ctx context.Context) (*model.Catalog, error)
}

// PageHandler serves the search page and the fragments its controls request.
type PageHandler struct {
	catalog  CatalogSource
	searcher page.Searcher
	renderer *page.Renderer
	baseURL  string
	logger   *slog.Logger
}

func NewPageHandler(
	catalog CatalogSource,
	searcher page.Searcher,
	renderer *page.Renderer,
	baseURL string,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		catalog:  catalog,
		searcher: searcher,
		renderer: renderer,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Index renders the search page with the model dataset embedded.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalog.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog", "error", err)
		http.Error(w, "Error loading catalog", http.StatusInternalServerError)
		return
	}

	node, err := view.SearchPage(catalog)
	if err != nil {
		h.logger.Error("failed to build search page", "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}

	h.render(w, node)
}

// Models answers a brand change with the rebuilt model select. The options
// are filtered from the dataset embedded in the page that sent the change,
// never from the current catalog.
func (h *PageHandler) Models(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid form body")
		return
	}

	models, err := page.ParseModelsData(r.PostFormValue(view.ModelsDataField))
	if err != nil {
		h.logger.Warn("invalid embedded models data", "error", err)
		writeError(w, http.StatusBadRequest, "invalid_models_data", "Embedded models data is missing or invalid")
		return
	}

	brand := page.NewSelect("brand", r.PostFormValue("brand"))
	modelSelect := page.NewSelect("model", "")
	page.NewModelCascade(models, brand, modelSelect).Refresh()

	h.render(w, modelSelect.Node())
}

// Results runs one form submission and returns the results region content.
func (h *PageHandler) Results(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	results := page.NewRegion("results")
	fieldError := page.NewIndicator("brand-error", page.BlankCriteriaMessage)

	controller := page.NewSearchController(page.Elements{
		Brand:      page.NewSelect("brand", q.Get("brand")),
		Model:      page.NewSelect("model", q.Get("model")),
		Year:       page.NewInput("year", q.Get("year")),
		Price:      page.NewInput("price", q.Get("price")),
		Results:    results,
		FieldError: fieldError,
	}, h.searcher, h.renderer, h.baseURL, h.logger)

	outcome := controller.Submit(r.Context())
	h.logger.Debug("search submitted",
		"outcome", outcome.Terminal.String(),
		"validation", outcome.Validation.Kind.String(),
		"results", outcome.Results,
	)

	h.render(w, view.ResultsFragment(results, fieldError))
}

// render sets the content type to HTML and renders the component.
func (h *PageHandler) render(w http.ResponseWriter, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := node.Render(w); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
