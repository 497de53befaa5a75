package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-217/go-carDealership/internal/model"
	"github.com/git-217/go-carDealership/internal/page"
	"github.com/git-217/go-carDealership/internal/view"
)

var testCatalog = &model.Catalog{
	Brands: []model.Brand{{ID: 1, Name: "Toyota"}, {ID: 2, Name: "BMW"}},
	Models: []model.VehicleModel{
		{ID: 10, Name: "Camry", BrandID: 1},
		{ID: 20, Name: "X5", BrandID: 2},
		{ID: 11, Name: "Corolla", BrandID: 1},
	},
}

type fakeCatalog struct {
	catalog *model.Catalog
	err     error
}

func (f *fakeCatalog) Snapshot(ctx context.Context) (*model.Catalog, error) {
	return f.catalog, f.err
}

type fakeSearcher struct {
	urls    []string
	results []model.SearchResult
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, url string) ([]model.SearchResult, error) {
	f.urls = append(f.urls, url)
	return f.results, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPageHandler(c CatalogSource, s page.Searcher) *PageHandler {
	return NewPageHandler(c, s, page.NewRenderer("en-US", "thousand RUB"), "http://api.local", discardLogger())
}

func TestIndexEmbedsModelsAndForm(t *testing.T) {
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, &fakeSearcher{})
	rec := httptest.NewRecorder()

	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `id="searchForm"`)
	assert.Contains(t, body, `<option value="1">Toyota</option>`)
	assert.Contains(t, body, `<select id="model" name="model" disabled>`)
	assert.Contains(t, body, `id="brand-error"`)
	assert.Contains(t, body, `<div id="results"></div>`)

	var models []model.VehicleModel
	require.NoError(t, json.Unmarshal([]byte(embeddedModelsData(t, body)), &models))
	assert.Equal(t, testCatalog.Models, models)
}

func TestIndexCatalogError(t *testing.T) {
	h := newPageHandler(&fakeCatalog{err: errors.New("db down")}, &fakeSearcher{})
	rec := httptest.NewRecorder()

	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func postModels(h *PageHandler, brand, modelsData string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("brand", brand)
	form.Set(view.ModelsDataField, modelsData)

	req := httptest.NewRequest(http.MethodPost, "/models", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	h.Models(rec, req)
	return rec
}

func embeddedModelsData(t *testing.T, body string) string {
	t.Helper()
	m := regexp.MustCompile(`<script type="application/json" id="models-data">(.*?)</script>`).FindStringSubmatch(body)
	require.Len(t, m, 2)
	return m[1]
}

func TestModelsForBrand(t *testing.T) {
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, &fakeSearcher{})
	data, err := json.Marshal(testCatalog.Models)
	require.NoError(t, err)

	rec := postModels(h, "1", string(data))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		`<select id="model" name="model"><option value="" selected>All models</option><option value="10">Camry</option><option value="11">Corolla</option></select>`,
		rec.Body.String(),
	)
}

func TestModelsNoBrand(t *testing.T) {
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, &fakeSearcher{})

	rec := postModels(h, "", `[{"id":10,"name":"Camry","brand_id":1}]`)

	assert.Equal(t,
		`<select id="model" name="model" disabled><option value="" selected>All models</option></select>`,
		rec.Body.String(),
	)
}

func TestModelsUseThePagesDatasetAfterCatalogReload(t *testing.T) {
	catalog := &fakeCatalog{catalog: testCatalog}
	h := newPageHandler(catalog, &fakeSearcher{})

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := embeddedModelsData(t, rec.Body.String())

	// the catalog changes while the page is still open
	catalog.catalog = &model.Catalog{
		Brands: testCatalog.Brands,
		Models: []model.VehicleModel{{ID: 99, Name: "Supra", BrandID: 1}},
	}

	body := postModels(h, "1", data).Body.String()

	assert.NotContains(t, body, "Supra")
	assert.Contains(t, body, `<option value="10">Camry</option><option value="11">Corolla</option>`)
}

func TestModelsInvalidDataset(t *testing.T) {
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, &fakeSearcher{})

	for _, data := range []string{"", "not json", `{"id":1}`} {
		rec := postModels(h, "1", data)

		assert.Equal(t, http.StatusBadRequest, rec.Code, data)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_models_data", resp.Error)
	}
}

type failingWriter struct {
	header http.Header
}

func (f *failingWriter) Header() http.Header { return f.header }
func (f *failingWriter) WriteHeader(statusCode int) {}
func (f *failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestRenderLogsWriteFailure(t *testing.T) {
	var logs bytes.Buffer
	h := NewPageHandler(&fakeCatalog{catalog: testCatalog}, &fakeSearcher{}, page.NewRenderer("en-US", ""), "", slog.New(slog.NewTextHandler(&logs, nil)))

	h.Index(&failingWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, logs.String(), "failed to write response")
	assert.Contains(t, logs.String(), "client went away")
}

func TestResultsBlankCriteria(t *testing.T) {
	s := &fakeSearcher{}
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, s)
	rec := httptest.NewRecorder()

	h.Results(rec, httptest.NewRequest(http.MethodGet, "/results?brand=&model=&year=&price=", nil))

	body := rec.Body.String()
	assert.Empty(t, s.urls)
	assert.Contains(t, body, page.BlankCriteriaMessage)
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, `style="display: block"`)
}

func TestResultsTable(t *testing.T) {
	s := &fakeSearcher{results: []model.SearchResult{{BrandName: "Toyota", ModelName: "Camry", Year: 2020, Price: 1500000}}}
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, s)
	rec := httptest.NewRecorder()

	h.Results(rec, httptest.NewRequest(http.MethodGet, "/results?brand=1&model=&year=2020&price=", nil))

	require.Len(t, s.urls, 1)
	assert.Equal(t, "http://api.local/search?brand=1&year=2020", s.urls[0])

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<table>"))
	assert.Contains(t, body, "<td>1,500,000 thousand RUB</td>")
	assert.Contains(t, body, `style="display: none"`)
}

func TestResultsFailure(t *testing.T) {
	s := &fakeSearcher{err: errors.New("timeout")}
	h := newPageHandler(&fakeCatalog{catalog: testCatalog}, s)
	rec := httptest.NewRecorder()

	h.Results(rec, httptest.NewRequest(http.MethodGet, "/results?price=100", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<div class="error">`+page.FailureMessage+`</div>`)
}
