package normalize

import (
	"strings"

	"gosupplier_api/internal/catalog/models"
)

// Checks run in a fixed order (name, sku, price, images) so issue lists
// stay stable across runs.
const (
	IssueNameMissing  = "product name missing"
	IssueSKUMissing   = "SKU missing"
	IssueInvalidPrice = "invalid price"
	IssueNoImage      = "no image"
)

// Validate reports publish-readiness defects. Issues are advisory; a
// failing product is still a complete canonical record.
func (n *Normalizer) Validate(product models.CanonicalProduct) models.ValidationResult {
	issues := make([]string, 0, 4)

	if strings.TrimSpace(product.Name) == "" || product.Name == models.DefaultProductName {
		issues = append(issues, IssueNameMissing)
	}
	if product.SKU == "" {
		issues = append(issues, IssueSKUMissing)
	}
	if product.Price <= 0 {
		issues = append(issues, IssueInvalidPrice)
	}
	if len(product.Images) == 0 {
		issues = append(issues, IssueNoImage)
	}

	return models.ValidationResult{Valid: len(issues) == 0, Issues: issues}
}

// ValidateBatch partitions products into publishable and defective sets,
// preserving relative input order within each partition.
func (n *Normalizer) ValidateBatch(products []models.CanonicalProduct) models.BatchValidation {
	batch := models.BatchValidation{
		Valid:   make([]models.CanonicalProduct, 0, len(products)),
		Invalid: make([]models.InvalidProduct, 0),
	}

	for _, product := range products {
		result := n.Validate(product)
		if result.Valid {
			batch.Valid = append(batch.Valid, product)
			continue
		}
		batch.Invalid = append(batch.Invalid, models.InvalidProduct{
			Product: product,
			Issues:  result.Issues,
		})
	}

	return batch
}
