package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/git-217/go-carDealership/internal/model"
)

func TestFormatPrice(t *testing.T) {
	r := NewRenderer("en-US", "thousand RUB")

	assert.Equal(t, "1,500,000 thousand RUB", r.FormatPrice(1500000))
	assert.Equal(t, "999 thousand RUB", r.FormatPrice(999))
	assert.Equal(t, "1,234.5 thousand RUB", r.FormatPrice(1234.5))
}

func TestFormatPriceLocale(t *testing.T) {
	assert.Equal(t, "1.500.000 EUR", NewRenderer("de-DE", "EUR").FormatPrice(1500000))
	assert.Equal(t, "1,500,000", NewRenderer("not a locale!", "").FormatPrice(1500000))
}

func TestTable(t *testing.T) {
	r := NewRenderer("en-US", "thousand RUB")

	html := String(r.Table([]model.SearchResult{
		{BrandName: "Toyota", ModelName: "Camry", Year: 2020, Price: 1500000},
		{BrandName: "BMW", ModelName: "X5", Year: 2018, Price: 3200000},
	}))

	assert.Contains(t, html, "<th>Brand</th><th>Model</th><th>Year</th><th>Price</th>")
	assert.Contains(t, html, "<tr><td>Toyota</td><td>Camry</td><td>2020</td><td>1,500,000 thousand RUB</td></tr>")
	assert.Equal(t, 3, strings.Count(html, "<tr>"))
	assert.Less(t, strings.Index(html, "Toyota"), strings.Index(html, "BMW"))
}

func TestTableEscapesText(t *testing.T) {
	r := NewRenderer("en-US", "")

	html := String(r.Table([]model.SearchResult{{BrandName: "<script>x</script>", ModelName: "A&B"}}))

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "A&amp;B")
}

func TestMessageAndError(t *testing.T) {
	r := NewRenderer("en-US", "")

	assert.Equal(t, `<div class="message">No vehicles found</div>`, String(r.Message(NoResultsMessage)))
	assert.Equal(t, `<div class="error">year must be a number</div>`, String(r.Error(YearNotNumberMessage)))
}
