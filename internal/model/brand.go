package model

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VehicleModel is one Model Record of the embedded dataset.
type VehicleModel struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	BrandID int64  `json:"brand_id"`
}

// Catalog is the brands and models snapshot a search page is built from.
type Catalog struct {
	Brands []Brand
	Models []VehicleModel
}
