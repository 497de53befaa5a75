package view

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/git-217/go-carDealership/internal/model"
	"github.com/git-217/go-carDealership/internal/page"
)

const (
	HTMXURL = "https://unpkg.com/htmx.org@1.9.10"

	// ModelsDataID is the element holding the embedded model dataset.
	ModelsDataID = "models-data"

	// ModelsDataField is the form field the embedded dataset is posted in.
	ModelsDataField = "models_data"
)

// AllBrands is the brand select's "no brand selected" option.
var AllBrands = page.Option{Value: "", Label: "All brands"}

// SearchForm holds the controls of the search page in their initial state.
type SearchForm struct {
	Brand      *page.Select
	Model      *page.Select
	Year       *page.Input
	Price      *page.Input
	Results    *page.Region
	FieldError *page.Indicator
}

// NewSearchForm builds the initial controls: every brand listed, the model
// select disabled with only the default option.
func NewSearchForm(brands []model.Brand) *SearchForm {
	brandSelect := page.NewSelect("brand", "", AllBrands)
	for _, b := range brands {
		brandSelect.Append(page.Option{Value: strconv.FormatInt(b.ID, 10), Label: b.Name})
	}

	modelSelect := page.NewSelect("model", "", page.AllModels)
	modelSelect.SetDisabled(true)

	return &SearchForm{
		Brand:      brandSelect,
		Model:      modelSelect,
		Year:       page.NewInput("year", ""),
		Price:      page.NewInput("price", ""),
		Results:    page.NewRegion("results"),
		FieldError: page.NewIndicator("brand-error", page.BlankCriteriaMessage),
	}
}

// SearchPage renders the full page with the catalog's models embedded as JSON.
func SearchPage(catalog *model.Catalog) (g.Node, error) {
	data, err := json.Marshal(catalog.Models)
	if err != nil {
		return nil, err
	}

	form := NewSearchForm(catalog.Brands)

	return components.HTML5(components.HTML5Props{
		Title:    "Car search",
		Language: "en",
		Head: []g.Node{
			Script(Type("text/javascript"), Src(HTMXURL), Defer()),
			StyleEl(g.Raw(`.error{color:#b00}.error-message{color:#b00;font-size:.9em}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:4px 8px}`)),
		},
		Body: []g.Node{
			H1(g.Text("Car search")),
			Form(
				ID("searchForm"),
				hx.Get("/results"),
				hx.Target("#results"),
				hx.Swap("innerHTML"),
				Div(
					Label(For("brand"), g.Text("Brand")),
					ModelCascadeTrigger(form.Brand),
					form.FieldError.Node(),
				),
				Div(
					Label(For("model"), g.Text("Model")),
					form.Model.Node(),
				),
				Div(
					Label(For("year"), g.Text("Year")),
					form.Year.Node(Placeholder("e.g. 2020")),
				),
				Div(
					Label(For("price"), g.Text("Max price")),
					form.Price.Node(Placeholder("e.g. 1500")),
				),
				Button(Type("submit"), g.Text("Search")),
			),
			form.Results.Node(),
			Script(Type("application/json"), ID(ModelsDataID), g.Raw(string(data))),
		},
	}), nil
}

// ModelCascadeTrigger renders the brand select wired to replace the model
// select on every change. The page's own embedded dataset is posted along
// with the brand, so the options always come from the models the page was
// rendered with.
func ModelCascadeTrigger(brand *page.Select) g.Node {
	return brand.Node(
		hx.Post("/models"),
		hx.Target("#model"),
		hx.Swap("outerHTML"),
		hx.Trigger("change"),
		g.Attr("hx-vals", `js:{"`+ModelsDataField+`": document.getElementById("`+ModelsDataID+`").textContent}`),
	)
}

// ResultsFragment is the /results response: the new results region content
// plus an out-of-band update of the field error indicator.
func ResultsFragment(results *page.Region, fieldError *page.Indicator) g.Node {
	return g.Group([]g.Node{
		g.Raw(results.HTML()),
		fieldError.Node(g.Attr("hx-swap-oob", "true")),
	})
}
