package normalize

import "gosupplier_api/internal/catalog/models"

// ShopifyAdapter maps the Shopify Admin product shape. Pricing and stock
// live on the first variant, cost is estimated at price*0.5 (Shopify does
// not expose supplier cost) and status maps the native
// active/draft/archived states.
type ShopifyAdapter struct{}

func (ShopifyAdapter) SupplierID() string   { return "shopify" }
func (ShopifyAdapter) SupplierName() string { return "Shopify" }

func (a ShopifyAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id")

	variants := raw.Slice("variants")
	first := Raw{}
	if len(variants) > 0 {
		first = AsRaw(variants[0])
	}

	price := first.Float("price")
	if price == 0 {
		price = raw.Float("price")
	}

	var status models.ProductStatus
	switch raw.String("status") {
	case "draft":
		status = models.StatusDraft
	case "archived":
		status = models.StatusInactive
	default:
		status = models.StatusActive
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           first.StringOr(externalID, "sku"),
		Name:          raw.StringOr(models.DefaultProductName, "title"),
		Description:   raw.String("body_html", "description"),
		Price:         price,
		CostPrice:     price * 0.5,
		Currency:      raw.StringOr("USD", "currency"),
		StockQuantity: first.Int("inventory_quantity"),
		Images:        imageList(raw.Value("images"), ""),
		Category:      raw.StringOr("General", "product_type"),
		Brand:         raw.String("vendor"),
		Weight:        first.Float("weight"),
		Variants: variantList(variants, variantFields{
			sku:   []string{"sku"},
			name:  []string{"title"},
			price: []string{"price"},
			stock: []string{"inventory_quantity"},
		}),
		Attributes:   map[string]interface{}{},
		Status:       status,
		SupplierID:   a.SupplierID(),
		SupplierName: a.SupplierName(),
	}

	if handle := raw.String("handle"); handle != "" {
		product.Attributes["handle"] = handle
	}
	if tags := raw.String("tags"); tags != "" {
		product.Attributes["tags"] = tags
	}

	return product
}
