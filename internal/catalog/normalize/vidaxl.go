package normalize

import "gosupplier_api/internal/catalog/models"

// VidaXLAdapter maps the VidaXL product feed. Cost falls back to price*0.6
// when the feed has no explicit cost, the default category is Outdoor
// (their core assortment) and listings are always emitted active. VidaXL is
// one of the few feeds with structured package dimensions.
type VidaXLAdapter struct{}

func (VidaXLAdapter) SupplierID() string   { return "vidaxl" }
func (VidaXLAdapter) SupplierName() string { return "VidaXL" }

func (a VidaXLAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id", "sku")
	price := raw.Float("price")

	costPrice := raw.Float("cost")
	if costPrice == 0 {
		costPrice = price * 0.6
	}

	images := imageList(raw.Value("images"), "")
	if len(images) == 0 {
		images = imageList(raw.Value("image"), "")
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "sku"),
		Name:          raw.StringOr(models.DefaultProductName, "title", "name"),
		Description:   raw.String("description"),
		Price:         price,
		CostPrice:     costPrice,
		Currency:      "EUR",
		StockQuantity: raw.Int("stock", "quantity"),
		Images:        images,
		Category:      raw.StringOr("Outdoor", "category"),
		Brand:         raw.String("brand"),
		Weight:        raw.Float("weight"),
		Attributes:    map[string]interface{}{},
		Status:        models.StatusActive,
		SupplierID:    a.SupplierID(),
		SupplierName:  a.SupplierName(),
	}

	if dims := raw.Map("dimensions"); len(dims) > 0 {
		product.Dimensions = &models.Dimensions{
			Length: dims.Float("length"),
			Width:  dims.Float("width"),
			Height: dims.Float("height"),
			Unit:   dims.StringOr("cm", "unit"),
		}
	}
	if ean := raw.String("ean"); ean != "" {
		product.Attributes["ean"] = ean
	}

	return product
}
