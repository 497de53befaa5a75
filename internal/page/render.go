package page

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/git-217/go-carDealership/internal/model"
)

const (
	NoResultsMessage = "No vehicles found"
	FailureMessage   = "An error occurred during search. Please try again later."
)

// Renderer produces the markup written into the results region.
type Renderer struct {
	printer *message.Printer
	suffix  string
}

// NewRenderer formats prices for locale (a BCP 47 tag, English if it does not
// parse) followed by suffix.
func NewRenderer(locale, suffix string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Renderer{printer: message.NewPrinter(tag), suffix: suffix}
}

// FormatPrice groups thousands for the locale and appends the unit suffix.
func (r *Renderer) FormatPrice(price float64) string {
	s := r.printer.Sprintf("%v", number.Decimal(price, number.MaxFractionDigits(3)))
	if r.suffix == "" {
		return s
	}
	return s + " " + r.suffix
}

// Table renders one row per result in the given order.
func (r *Renderer) Table(results []model.SearchResult) g.Node {
	return h.Table(
		h.THead(
			h.Tr(
				h.Th(g.Text("Brand")),
				h.Th(g.Text("Model")),
				h.Th(g.Text("Year")),
				h.Th(g.Text("Price")),
			),
		),
		h.TBody(
			g.Group(g.Map(results, func(res model.SearchResult) g.Node {
				return h.Tr(
					h.Td(g.Text(res.BrandName)),
					h.Td(g.Text(res.ModelName)),
					h.Td(g.Text(strconv.Itoa(res.Year))),
					h.Td(g.Text(r.FormatPrice(res.Price))),
				)
			})),
		),
	)
}

func (r *Renderer) Message(text string) g.Node {
	return h.Div(h.Class("message"), g.Text(text))
}

func (r *Renderer) Error(text string) g.Node {
	return h.Div(h.Class("error"), g.Text(text))
}

// String renders n to a string.
func String(n g.Node) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = n.Render(&b)
	return b.String()
}
