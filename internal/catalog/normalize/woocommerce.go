package normalize

import "gosupplier_api/internal/catalog/models"

// WooCommerceAdapter maps the WooCommerce REST product shape. price wins
// over regular_price, cost is estimated at price*0.5 and the publish/draft
// post status drives the canonical one (anything else goes inactive).
type WooCommerceAdapter struct{}

func (WooCommerceAdapter) SupplierID() string   { return "woocommerce" }
func (WooCommerceAdapter) SupplierName() string { return "WooCommerce" }

func (a WooCommerceAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id")
	price := raw.Float("price", "regular_price")

	category := "General"
	if categories := raw.Slice("categories"); len(categories) > 0 {
		if name := AsRaw(categories[0]).String("name"); name != "" {
			category = name
		}
	}

	var status models.ProductStatus
	switch raw.String("status") {
	case "publish", "":
		status = models.StatusActive
	case "draft", "pending":
		status = models.StatusDraft
	default:
		status = models.StatusInactive
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "sku"),
		Name:          raw.StringOr(models.DefaultProductName, "name", "title"),
		Description:   raw.String("description", "short_description"),
		Price:         price,
		CostPrice:     price * 0.5,
		Currency:      raw.StringOr("EUR", "currency"),
		StockQuantity: raw.Int("stock_quantity", "stock"),
		Images:        imageList(raw.Value("images"), ""),
		Category:      category,
		Brand:         raw.String("brand"),
		Weight:        raw.Float("weight"),
		Variants: variantList(raw.Slice("variations"), variantFields{
			sku:   []string{"sku"},
			name:  []string{"name", "title"},
			price: []string{"price", "regular_price"},
			stock: []string{"stock_quantity", "stock"},
		}),
		Attributes:   map[string]interface{}{},
		Status:       status,
		SupplierID:   a.SupplierID(),
		SupplierName: a.SupplierName(),
	}

	if tags := raw.Slice("tags"); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			if name := AsRaw(tag).String("name"); name != "" {
				names = append(names, name)
			}
		}
		if len(names) > 0 {
			product.Attributes["tags"] = names
		}
	}

	return product
}
