package normalize

import "gosupplier_api/internal/catalog/models"

// MatterhornAdapter maps the Matterhorn B2B items shape. Prices arrive as a
// per-currency map (EUR is the one we sell in), the cost side is estimated
// at price*0.7 and SKUs carry a MATTERHORN- prefix to keep them unique
// across suppliers.
type MatterhornAdapter struct{}

func (MatterhornAdapter) SupplierID() string   { return "matterhorn" }
func (MatterhornAdapter) SupplierName() string { return "Matterhorn" }

func (a MatterhornAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id")

	sku := raw.String("sku", "reference")
	if externalID != "" {
		sku = "MATTERHORN-" + externalID
	}

	price := raw.Map("prices").Float("EUR")
	if price == 0 {
		price = raw.Float("price")
	}

	stock := raw.Int("stock_total", "stock")
	status := models.StatusInactive
	if stock > 0 {
		status = models.StatusActive
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           sku,
		Name:          raw.StringOr(models.DefaultProductName, "name_without_number", "name"),
		Description:   raw.String("description"),
		Price:         price,
		CostPrice:     price * 0.7,
		Currency:      "EUR",
		StockQuantity: stock,
		Images:        imageList(raw.Value("images"), ""),
		Category:      raw.StringOr("Fashion", "category_name"),
		Brand:         raw.String("brand"),
		Attributes:    map[string]interface{}{},
		Status:        status,
		SupplierID:    a.SupplierID(),
		SupplierName:  a.SupplierName(),
	}

	if color := raw.String("color"); color != "" {
		product.Attributes["color"] = color
	}
	if path := raw.String("category_path"); path != "" {
		product.Attributes["categoryPath"] = path
	}
	if newCollection, ok := raw.Bool("new_collection"); ok {
		product.Attributes["newCollection"] = newCollection
	}

	return product
}
