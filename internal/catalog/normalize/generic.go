package normalize

import (
	"strings"

	"gosupplier_api/internal/catalog/models"
)

// GenericAdapter is the fallback projection for suppliers without a
// dedicated adapter. It tries the most common field-name variants seen
// across the known feeds, estimates cost at price*0.5 and derives the
// supplier id from the caller-supplied name. New adapters should start from
// this behavior.
type GenericAdapter struct {
	Name string
}

func (g GenericAdapter) SupplierID() string   { return slugify(g.Name) }
func (g GenericAdapter) SupplierName() string { return g.Name }

func (g GenericAdapter) Map(raw Raw) models.CanonicalProduct {
	externalID := raw.String("id", "external_id", "reference", "sku")
	price := raw.Float("price", "retail_price", "selling_price", "sale_price")

	costPrice := raw.Float("cost_price", "cost", "wholesale_price")
	if costPrice == 0 {
		costPrice = price * 0.5
	}

	images := imageList(raw.Value("images"), ",")
	if len(images) == 0 {
		images = imageList(raw.Value("image"), ",")
	}
	if len(images) == 0 {
		images = imageList(raw.Value("image_url"), "")
	}

	status := models.StatusActive
	if active, ok := raw.Bool("active"); ok {
		if !active {
			status = models.StatusInactive
		}
	} else {
		switch raw.String("status") {
		case "inactive", "archived":
			status = models.StatusInactive
		case "draft":
			status = models.StatusDraft
		}
	}

	product := models.CanonicalProduct{
		ExternalID:    externalID,
		SKU:           raw.StringOr(externalID, "sku", "reference"),
		Name:          raw.StringOr(models.DefaultProductName, "name", "title", "label"),
		Description:   raw.String("description", "desc", "body_html"),
		Price:         price,
		CostPrice:     costPrice,
		Currency:      raw.StringOr("EUR", "currency"),
		StockQuantity: raw.Int("stock", "quantity", "stock_quantity"),
		Images:        images,
		Category:      raw.StringOr("General", "category", "category_name"),
		Brand:         raw.String("brand", "vendor", "manufacturer"),
		Weight:        raw.Float("weight"),
		Attributes:    map[string]interface{}{},
		Status:        status,
		SupplierID:    g.SupplierID(),
		SupplierName:  g.SupplierName(),
	}

	if attrs := raw.Map("attributes"); len(attrs) > 0 {
		for k, v := range attrs {
			product.Attributes[k] = v
		}
	}
	if ean := raw.String("ean", "barcode", "gtin"); ean != "" {
		product.Attributes["ean"] = ean
	}

	return product
}

// slugify turns a display name into a stable machine key: lowercase with
// runs of non-alphanumeric characters collapsed to single underscores.
func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	pending := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}
	return b.String()
}
