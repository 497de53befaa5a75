package page

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	BlankCriteriaMessage  = "Specify at least one search criterion"
	YearNotNumberMessage  = "year must be a number"
	PriceNotNumberMessage = "price must be a number"
)

// Criteria are the four optional search inputs as typed by the user.
type Criteria struct {
	Brand string
	Model string
	Year  string
	Price string
}

// ReadCriteria reads and trims the current value of each control.
func ReadCriteria(e Elements) Criteria {
	return Criteria{
		Brand: strings.TrimSpace(e.Brand.Value()),
		Model: strings.TrimSpace(e.Model.Value()),
		Year:  strings.TrimSpace(e.Year.Value()),
		Price: strings.TrimSpace(e.Price.Value()),
	}
}

func (c Criteria) IsBlank() bool {
	return c.Brand == "" && c.Model == "" && c.Year == "" && c.Price == ""
}

type ValidationKind int

const (
	ValidationOK ValidationKind = iota
	ValidationBlank
	ValidationYearNotNumeric
	ValidationPriceNotNumeric
)

func (k ValidationKind) String() string {
	switch k {
	case ValidationOK:
		return "ok"
	case ValidationBlank:
		return "blank"
	case ValidationYearNotNumeric:
		return "year_not_numeric"
	case ValidationPriceNotNumeric:
		return "price_not_numeric"
	default:
		return "unknown"
	}
}

// Validation is the single outcome of checking a set of criteria. Both the
// field indicator and the results message are driven from it.
type Validation struct {
	Kind    ValidationKind
	Message string
}

func (v Validation) Valid() bool {
	return v.Kind == ValidationOK
}

// ShowsFieldError reports whether the field-level indicator must be visible.
func (v Validation) ShowsFieldError() bool {
	return v.Kind == ValidationBlank
}

// Validate checks blank criteria first, then year, then price.
func Validate(c Criteria) Validation {
	switch {
	case c.IsBlank():
		return Validation{Kind: ValidationBlank, Message: BlankCriteriaMessage}
	case c.Year != "" && !isNumeric(c.Year):
		return Validation{Kind: ValidationYearNotNumeric, Message: YearNotNumberMessage}
	case c.Price != "" && !isNumeric(c.Price):
		return Validation{Kind: ValidationPriceNotNumeric, Message: PriceNotNumberMessage}
	default:
		return Validation{Kind: ValidationOK}
	}
}

func isNumeric(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// BuildSearchURL returns base + "/search?" with the non-empty criteria in the
// fixed order brand, model, year, price.
func BuildSearchURL(base string, c Criteria) string {
	params := []struct{ key, value string }{
		{"brand", c.Brand},
		{"model", c.Model},
		{"year", c.Year},
		{"price", c.Price},
	}

	var q []string
	for _, p := range params {
		if p.value == "" {
			continue
		}
		q = append(q, url.QueryEscape(p.key)+"="+url.QueryEscape(p.value))
	}

	return strings.TrimRight(base, "/") + "/search?" + strings.Join(q, "&")
}
