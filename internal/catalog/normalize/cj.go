package normalize

import "gosupplier_api/internal/catalog/models"

// CJAdapter maps the CJ Dropshipping listV2 shape (keys "cj" and
// "cjdropshipping"). sellPrice wins over price; the cost side falls through
// nowPrice and discountPrice to sellPrice itself, with no estimation ratio.
// Listings are always emitted active.
type CJAdapter struct{}

func (CJAdapter) SupplierID() string   { return "cj" }
func (CJAdapter) SupplierName() string { return "CJ Dropshipping" }

func (a CJAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("pid", "id")

	images := imageList(raw.Value("images"), "")
	if len(images) == 0 {
		images = imageList(raw.Value("bigImage"), "")
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "sku", "productSku"),
		Name:          raw.StringOr(models.DefaultProductName, "nameEn", "productNameEn", "name"),
		Description:   raw.String("description", "nameEn"),
		Price:         raw.Float("sellPrice", "price"),
		CostPrice:     raw.Float("nowPrice", "discountPrice", "sellPrice"),
		Currency:      raw.StringOr("USD", "currency"),
		StockQuantity: raw.Int("warehouseInventoryNum", "totalVerifiedInventory", "stock"),
		Images:        images,
		Category:      raw.StringOr("General", "threeCategoryName", "categoryName", "category"),
		Brand:         raw.String("brand"),
		Weight:        raw.Float("productWeight", "weight"),
		Variants: variantList(raw.Slice("variants"), variantFields{
			sku:   []string{"variantSku", "sku"},
			name:  []string{"variantNameEn", "name"},
			price: []string{"variantSellPrice", "price"},
			stock: []string{"variantInventory", "stock"},
		}),
		Attributes:   map[string]interface{}{},
		Status:       models.StatusActive,
		SupplierID:   a.SupplierID(),
		SupplierName: a.SupplierName(),
	}

	if productType := raw.String("productType"); productType != "" {
		product.Attributes["productType"] = productType
	}
	if source := raw.String("supplierName"); source != "" {
		product.Attributes["sourceSupplier"] = source
	}
	if cycle := raw.String("deliveryCycle"); cycle != "" {
		product.Attributes["deliveryCycle"] = cycle
	}

	return product
}
