package normalize

import (
	"strings"

	"gosupplier_api/internal/catalog/models"
)

// BTSWholesalerAdapter maps the BTS Wholesaler list shape (keys
// "btswholesaler" and "bts"). The feed's price field is the supplier cost;
// the resale price is recommended_price, estimated as cost*1.3 when absent.
// The EAN doubles as the SKU and the category is the first segment of the
// slash-joined category path.
type BTSWholesalerAdapter struct{}

func (BTSWholesalerAdapter) SupplierID() string   { return "btswholesaler" }
func (BTSWholesalerAdapter) SupplierName() string { return "BTS Wholesaler" }

func (a BTSWholesalerAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id", "ean")
	costPrice := raw.Float("price")

	price := raw.Float("recommended_price")
	if price == 0 {
		price = costPrice * 1.3
	}

	category := "General"
	if path := raw.String("categories", "category"); path != "" {
		category = strings.TrimSpace(strings.SplitN(path, "/", 2)[0])
	}

	stock := raw.Int("stock")
	status := models.StatusInactive
	if stock > 0 {
		status = models.StatusActive
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "ean"),
		Name:          raw.StringOr(models.DefaultProductName, "name"),
		Description:   raw.String("description"),
		Price:         price,
		CostPrice:     costPrice,
		Currency:      "EUR",
		StockQuantity: stock,
		Images:        imageList(raw.Value("image"), ""),
		Category:      category,
		Brand:         raw.String("manufacturer_name", "brand"),
		Attributes:    map[string]interface{}{},
		Status:        status,
		SupplierID:    a.SupplierID(),
		SupplierName:  a.SupplierName(),
	}

	if ean := raw.String("ean"); ean != "" {
		product.Attributes["ean"] = ean
	}
	if gender := raw.String("gender"); gender != "" {
		product.Attributes["gender"] = gender
	}

	return product
}
