package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupplier_api/internal/catalog/models"
)

func TestBigBuyAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":             12345.0,
		"sku":            "BB-1",
		"name":           "Garden Chair",
		"retailPrice":    "49.90",
		"price":          "39.90",
		"wholesalePrice": 20.0,
		"stock":          12.0,
		"images":         []interface{}{"http://a.jpg", "http://b.jpg"},
		"active":         true,
		"ean13":          "4006381333931",
	}, "bigbuy")

	assert.Equal(t, "12345", product.ExternalID)
	assert.Equal(t, "BB-1", product.SKU)
	assert.Equal(t, 49.90, product.Price)
	assert.Equal(t, 20.0, product.CostPrice)
	assert.Equal(t, "EUR", product.Currency)
	assert.Equal(t, 12, product.StockQuantity)
	assert.Equal(t, models.StatusActive, product.Status)
	assert.Equal(t, "4006381333931", product.Attributes["ean"])

	// no wholesale price: estimate at 60% of retail
	product = n.Normalize(Raw{"id": "1", "retailPrice": 100.0}, "bigbuy")
	assert.Equal(t, 60.0, product.CostPrice)
	assert.Equal(t, models.StatusInactive, product.Status)
	assert.Equal(t, "1", product.SKU)
}

func TestCJAdapter(t *testing.T) {
	n := NewNormalizer()

	raw := Raw{
		"pid":                   "CJ123",
		"nameEn":                "USB Lamp",
		"sellPrice":             "4.20",
		"nowPrice":              "2.80",
		"warehouseInventoryNum": 40.0,
		"bigImage":              "http://cj.jpg",
		"threeCategoryName":     "Lighting",
		"variants": []interface{}{
			map[string]interface{}{
				"variantSku":       "CJ123-RED",
				"variantNameEn":    "Red",
				"variantSellPrice": 4.5,
				"variantInventory": 7.0,
				"attributes":       map[string]interface{}{"color": "red"},
			},
		},
	}

	product := n.Normalize(raw, "cj")
	assert.Equal(t, "CJ123", product.ExternalID)
	assert.Equal(t, "CJ123", product.SKU)
	assert.Equal(t, 4.20, product.Price)
	assert.Equal(t, 2.80, product.CostPrice)
	assert.Equal(t, "USD", product.Currency)
	assert.Equal(t, 40, product.StockQuantity)
	assert.Equal(t, []string{"http://cj.jpg"}, product.Images)
	assert.Equal(t, "Lighting", product.Category)
	assert.Equal(t, models.StatusActive, product.Status)

	require.Len(t, product.Variants, 1)
	assert.Equal(t, "CJ123-RED", product.Variants[0].SKU)
	assert.Equal(t, "Red", product.Variants[0].Name)
	assert.Equal(t, 4.5, product.Variants[0].Price)
	assert.Equal(t, 7, product.Variants[0].Stock)
	assert.Equal(t, map[string]string{"color": "red"}, product.Variants[0].Attributes)

	// the alias resolves to the same adapter
	aliased := n.Normalize(raw, "cjdropshipping")
	assert.Equal(t, product, aliased)
}

func TestBTSWholesalerAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":                "55",
		"ean":               "3600530674725",
		"name":              "Eau de Parfum",
		"price":             10.0,
		"recommended_price": 15.9,
		"stock":             3.0,
		"image":             "http://bts.jpg",
		"categories":        "Perfume/Women/Eau de Parfum",
		"manufacturer_name": "Lancome",
	}, "bts")

	assert.Equal(t, "55", product.ExternalID)
	assert.Equal(t, "3600530674725", product.SKU)
	assert.Equal(t, 15.9, product.Price)
	assert.Equal(t, 10.0, product.CostPrice)
	assert.Equal(t, "Perfume", product.Category)
	assert.Equal(t, "Lancome", product.Brand)
	assert.Equal(t, models.StatusActive, product.Status)

	// no recommended price: resale estimated at cost*1.3
	product = n.Normalize(Raw{"id": "56", "price": 10.0}, "btswholesaler")
	assert.InDelta(t, 13.0, product.Price, 1e-9)
	assert.Equal(t, models.StatusInactive, product.Status)
}

func TestMatterhornAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":                  "M77",
		"name_without_number": "Lace Bodysuit",
		"name":                "Lace Bodysuit 77",
		"prices":              map[string]interface{}{"EUR": 12.0, "PLN": 52.0},
		"stock_total":         "8",
		"images":              []interface{}{"http://m1.jpg"},
		"category_name":       "Lingerie",
	}, "matterhorn")

	assert.Equal(t, "M77", product.ExternalID)
	assert.Equal(t, "MATTERHORN-M77", product.SKU)
	assert.Equal(t, "Lace Bodysuit", product.Name)
	assert.Equal(t, 12.0, product.Price)
	assert.InDelta(t, 8.4, product.CostPrice, 1e-9)
	assert.Equal(t, 8, product.StockQuantity)
	assert.Equal(t, "Lingerie", product.Category)
	assert.Equal(t, models.StatusActive, product.Status)

	product = n.Normalize(Raw{"id": "M78"}, "matterhorn")
	assert.Equal(t, models.StatusInactive, product.Status)
	assert.Equal(t, "Fashion", product.Category)
}

func TestVidaXLAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":    "V1",
		"title": "Patio Set",
		"price": 199.0,
		"stock": 4.0,
		"image": "http://v.jpg",
		"dimensions": map[string]interface{}{
			"length": 120.0, "width": 80.0, "height": 75.0,
		},
		"weight": 24.5,
	}, "vidaxl")

	assert.Equal(t, "Patio Set", product.Name)
	assert.Equal(t, 199.0, product.Price)
	assert.InDelta(t, 119.4, product.CostPrice, 1e-9) // price*0.6
	assert.Equal(t, "Outdoor", product.Category)
	assert.Equal(t, []string{"http://v.jpg"}, product.Images)
	assert.Equal(t, models.StatusActive, product.Status)
	assert.Equal(t, 24.5, product.Weight)

	require.NotNil(t, product.Dimensions)
	assert.Equal(t, 120.0, product.Dimensions.Length)
	assert.Equal(t, "cm", product.Dimensions.Unit)

	// explicit cost wins over the ratio
	product = n.Normalize(Raw{"id": "V2", "price": 100.0, "cost": 55.0}, "vidaxl")
	assert.Equal(t, 55.0, product.CostPrice)
	assert.Nil(t, product.Dimensions)
}

func TestAliExpressAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"product_id":                 1005001.0,
		"product_title":              "Wireless Earbuds",
		"target_sale_price":          "12.34",
		"original_price":             "20.00",
		"target_sale_price_currency": "USD",
		"image_urls":                 "http://a.jpg;http://b.jpg",
		"first_level_category_name":  "Electronics",
	}, "aliexpress")

	assert.Equal(t, "1005001", product.ExternalID)
	assert.Equal(t, "AE-1005001", product.SKU)
	assert.Equal(t, 12.34, product.Price)
	assert.Equal(t, 20.0, product.CostPrice)
	assert.Equal(t, []string{"http://a.jpg", "http://b.jpg"}, product.Images)
	assert.Equal(t, "Electronics", product.Category)
	assert.Equal(t, models.StatusActive, product.Status)
}

func TestShopifyAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":           632910392.0,
		"title":        "IPod Nano",
		"body_html":    "<p>Great player</p>",
		"vendor":       "Apple",
		"product_type": "Music",
		"status":       "draft",
		"variants": []interface{}{
			map[string]interface{}{
				"sku": "IPOD-8GB", "title": "8GB", "price": "199.00",
				"inventory_quantity": 10.0,
			},
			map[string]interface{}{
				"sku": "IPOD-16GB", "title": "16GB", "price": "249.00",
				"inventory_quantity": 5.0,
			},
		},
		"images": []interface{}{map[string]interface{}{"src": "http://ipod.jpg"}},
	}, "shopify")

	assert.Equal(t, "632910392", product.ExternalID)
	assert.Equal(t, "IPOD-8GB", product.SKU)
	assert.Equal(t, 199.0, product.Price)
	assert.Equal(t, 99.5, product.CostPrice) // price*0.5
	assert.Equal(t, 10, product.StockQuantity)
	assert.Equal(t, "Music", product.Category)
	assert.Equal(t, "Apple", product.Brand)
	assert.Equal(t, models.StatusDraft, product.Status)
	require.Len(t, product.Variants, 2)
	assert.Equal(t, "16GB", product.Variants[1].Name)
}

func TestWooCommerceAdapter(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"id":             799.0,
		"name":           "Ship Your Idea",
		"sku":            "WOO-1",
		"price":          "24.00",
		"regular_price":  "30.00",
		"stock_quantity": 17.0,
		"status":         "publish",
		"categories": []interface{}{
			map[string]interface{}{"id": 9.0, "name": "Clothing"},
		},
		"images": []interface{}{map[string]interface{}{"src": "http://woo.jpg"}},
	}, "woocommerce")

	assert.Equal(t, "799", product.ExternalID)
	assert.Equal(t, "WOO-1", product.SKU)
	assert.Equal(t, 24.0, product.Price)
	assert.Equal(t, 12.0, product.CostPrice) // price*0.5
	assert.Equal(t, "Clothing", product.Category)
	assert.Equal(t, models.StatusActive, product.Status)

	product = n.Normalize(Raw{"id": "800", "status": "private"}, "woocommerce")
	assert.Equal(t, models.StatusInactive, product.Status)
}

func TestGenericAdapterFieldUnion(t *testing.T) {
	n := NewNormalizer()

	product := n.Normalize(Raw{
		"external_id":    "X-9",
		"title":          "Mystery Box",
		"retail_price":   "42.00",
		"cost_price":     "21.50",
		"stock_quantity": 3.0,
		"image_url":      "http://x.jpg",
		"vendor":         "Acme",
		"barcode":        "123456",
		"attributes":     map[string]interface{}{"pack": "single"},
	}, "Some New Vendor")

	assert.Equal(t, "X-9", product.ExternalID)
	assert.Equal(t, "X-9", product.SKU)
	assert.Equal(t, "Mystery Box", product.Name)
	assert.Equal(t, 42.0, product.Price)
	assert.Equal(t, 21.5, product.CostPrice)
	assert.Equal(t, 3, product.StockQuantity)
	assert.Equal(t, []string{"http://x.jpg"}, product.Images)
	assert.Equal(t, "Acme", product.Brand)
	assert.Equal(t, "some_new_vendor", product.SupplierID)
	assert.Equal(t, "single", product.Attributes["pack"])
	assert.Equal(t, "123456", product.Attributes["ean"])

	// cost estimation ratio for unknown feeds is 0.5
	product = n.Normalize(Raw{"sku": "Y-1", "price": 10.0}, "othervendor")
	assert.Equal(t, 5.0, product.CostPrice)
}
