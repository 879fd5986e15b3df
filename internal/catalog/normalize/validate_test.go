package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosupplier_api/internal/catalog/models"
)

func publishableProduct() models.CanonicalProduct {
	return models.CanonicalProduct{
		ExternalID:   "W-1",
		SKU:          "W-1",
		Name:         "Widget",
		Price:        9.99,
		Currency:     "EUR",
		Images:       []string{"http://x.jpg"},
		Category:     "General",
		Attributes:   map[string]interface{}{},
		Status:       models.StatusActive,
		SupplierID:   "bigbuy",
		SupplierName: "BigBuy",
	}
}

func TestValidatePublishableProduct(t *testing.T) {
	n := NewNormalizer()

	result := n.Validate(publishableProduct())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Issues)
}

func TestValidateIssueOrder(t *testing.T) {
	n := NewNormalizer()

	product := publishableProduct()
	product.Price = 0
	result := n.Validate(product)
	assert.False(t, result.Valid)
	assert.Equal(t, []string{IssueInvalidPrice}, result.Issues)

	product.Images = nil
	result = n.Validate(product)
	assert.Equal(t, []string{IssueInvalidPrice, IssueNoImage}, result.Issues)

	product.Name = models.DefaultProductName
	product.SKU = ""
	result = n.Validate(product)
	assert.Equal(t, []string{IssueNameMissing, IssueSKUMissing, IssueInvalidPrice, IssueNoImage}, result.Issues)
}

func TestValidatePlaceholderNameCountsAsMissing(t *testing.T) {
	n := NewNormalizer()

	product := publishableProduct()
	product.Name = models.DefaultProductName

	result := n.Validate(product)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Issues, IssueNameMissing)
}

func TestValidateBatchPartitionsInOrder(t *testing.T) {
	n := NewNormalizer()

	good1 := publishableProduct()
	good1.ExternalID = "G-1"
	good2 := publishableProduct()
	good2.ExternalID = "G-2"

	bad1 := publishableProduct()
	bad1.ExternalID = "B-1"
	bad1.Price = 0
	bad2 := publishableProduct()
	bad2.ExternalID = "B-2"
	bad2.Images = nil

	batch := n.ValidateBatch([]models.CanonicalProduct{good1, bad1, good2, bad2})

	require.Len(t, batch.Valid, 2)
	assert.Equal(t, "G-1", batch.Valid[0].ExternalID)
	assert.Equal(t, "G-2", batch.Valid[1].ExternalID)

	require.Len(t, batch.Invalid, 2)
	assert.Equal(t, "B-1", batch.Invalid[0].Product.ExternalID)
	assert.Equal(t, []string{IssueInvalidPrice}, batch.Invalid[0].Issues)
	assert.Equal(t, "B-2", batch.Invalid[1].Product.ExternalID)
	assert.Equal(t, []string{IssueNoImage}, batch.Invalid[1].Issues)
}
