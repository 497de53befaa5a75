package model

// SearchResult is one matching vehicle as returned by GET /search.
type SearchResult struct {
	BrandName string  `json:"brand_name"`
	ModelName string  `json:"model_name"`
	Year      int     `json:"year"`
	Price     float64 `json:"price"`
}

// CarFilter holds the parsed query of GET /search. Nil fields are not filtered on.
type CarFilter struct {
	BrandID  *int64
	ModelID  *int64
	Year     *int
	MaxPrice *float64
}

