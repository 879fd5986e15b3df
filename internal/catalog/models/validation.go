package models

// ValidationResult reports publish-readiness defects of one canonical
// product. Issues are advisory: normalization never refuses a record.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

type InvalidProduct struct {
	Product CanonicalProduct `json:"product"`
	Issues  []string         `json:"issues"`
}

// BatchValidation partitions a normalized batch, preserving the relative
// input order inside each partition.
type BatchValidation struct {
	Valid   []CanonicalProduct `json:"valid"`
	Invalid []InvalidProduct   `json:"invalid"`
}
