package normalize

import "gosupplier_api/internal/catalog/models"

// AliExpressAdapter maps the AliExpress DS/affiliate product shape. Image
// galleries arrive as one semicolon-joined string, SKUs get an AE- prefix
// when the feed has none, and listings are always emitted active.
type AliExpressAdapter struct{}

func (AliExpressAdapter) SupplierID() string   { return "aliexpress" }
func (AliExpressAdapter) SupplierName() string { return "AliExpress" }

func (a AliExpressAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("product_id", "productId", "id")

	sku := raw.String("sku")
	if sku == "" && externalID != "" {
		sku = "AE-" + externalID
	}

	images := imageList(raw.Value("images"), ";")
	if len(images) == 0 {
		images = imageList(raw.Value("image_urls"), ";")
	}
	if len(images) == 0 {
		images = imageList(raw.Value("product_main_image_url"), "")
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           sku,
		Name:          raw.StringOr(models.DefaultProductName, "product_title", "subject", "title"),
		Description:   raw.String("description", "product_title"),
		Price:         raw.Float("target_sale_price", "sale_price", "price"),
		CostPrice:     raw.Float("original_price", "sale_price", "price"),
		Currency:      raw.StringOr("USD", "target_sale_price_currency", "currency"),
		StockQuantity: raw.Int("stock", "quantity"),
		Images:        images,
		Category:      raw.StringOr("General", "first_level_category_name", "category"),
		Brand:         raw.String("brand"),
		Variants: variantList(raw.Slice("variants"), variantFields{
			sku:   []string{"skuId", "sku"},
			name:  []string{"skuAttr", "name"},
			price: []string{"price"},
			stock: []string{"availQuantity", "stock"},
		}),
		Attributes:   map[string]interface{}{},
		Status:       models.StatusActive,
		SupplierID:   a.SupplierID(),
		SupplierName: a.SupplierName(),
	}

	if second := raw.String("second_level_category_name"); second != "" {
		product.Attributes["secondCategory"] = second
	}
	if rate := raw.String("evaluate_rate"); rate != "" {
		product.Attributes["evaluationRate"] = rate
	}
	if orders := raw.Int("lastest_volume"); orders > 0 {
		product.Attributes["orders"] = orders
	}

	return product
}
