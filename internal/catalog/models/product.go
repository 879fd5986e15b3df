package models

// DefaultProductName is the placeholder title adapters emit when a feed
// carries no usable name. Validation treats it as a missing name.
const DefaultProductName = "Untitled Product"

type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
	StatusDraft    ProductStatus = "draft"
)

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

type Variant struct {
	SKU        string            `json:"sku"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// CanonicalProduct is the supplier-agnostic product record every adapter
// converges to. Numeric fields are never negative and string fields are
// never left unset; adapters fill documented defaults instead of failing.
type CanonicalProduct struct {
	ExternalID    string                 `json:"external_id"`
	SKU           string                 `json:"sku"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Price         float64                `json:"price"`
	CostPrice     float64                `json:"cost_price"`
	Currency      string                 `json:"currency"`
	StockQuantity int                    `json:"stock_quantity"`
	Images        []string               `json:"images"`
	Category      string                 `json:"category"`
	Brand         string                 `json:"brand"`
	Weight        float64                `json:"weight,omitempty"`
	Dimensions    *Dimensions            `json:"dimensions,omitempty"`
	Variants      []Variant              `json:"variants,omitempty"`
	Attributes    map[string]interface{} `json:"attributes"`
	Status        ProductStatus          `json:"status"`
	SupplierID    string                 `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name"`
}
