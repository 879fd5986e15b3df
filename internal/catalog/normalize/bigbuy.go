package normalize

import "gosupplier_api/internal/catalog/models"

// BigBuyAdapter maps the BigBuy REST catalog shape. Prices come from
// retailPrice first; the supplier-side cost is wholesalePrice, estimated as
// price*0.6 when the feed omits it. Status follows the feed's active flag
// (absent means inactive).
type BigBuyAdapter struct{}

func (BigBuyAdapter) SupplierID() string   { return "bigbuy" }
func (BigBuyAdapter) SupplierName() string { return "BigBuy" }

func (a BigBuyAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id", "sku", "reference")
	price := raw.Float("retailPrice", "price")

	costPrice := raw.Float("wholesalePrice")
	if costPrice == 0 {
		costPrice = price * 0.6
	}

	status := models.StatusInactive
	if active, ok := raw.Bool("active"); ok && active {
		status = models.StatusActive
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "sku", "reference"),
		Name:          raw.StringOr(models.DefaultProductName, "name"),
		Description:   raw.String("description"),
		Price:         price,
		CostPrice:     costPrice,
		Currency:      raw.StringOr("EUR", "currency"),
		StockQuantity: raw.Int("stock", "quantity"),
		Images:        imageList(raw.Value("images"), ""),
		Category:      raw.StringOr("General", "category"),
		Brand:         raw.String("brand"),
		Weight:        raw.Float("weight"),
		Attributes:    map[string]interface{}{},
		Status:        status,
		SupplierID:    a.SupplierID(),
		SupplierName:  a.SupplierName(),
	}

	if ean := raw.String("ean13", "ean"); ean != "" {
		product.Attributes["ean"] = ean
	}
	if dims := raw.Value("dimensions"); dims != nil {
		product.Attributes["dimensions"] = dims
	}

	return product
}
