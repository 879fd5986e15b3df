package normalize

import (
	"fmt"
	"strings"
	"sync"

	"gosupplier_api/internal/catalog/models"
)

// Adapter is one per-supplier projection from a raw feed payload to the
// canonical record. Implementations are pure and hold no state.
type Adapter interface {
	SupplierID() string
	SupplierName() string
	Map(raw Raw) models.CanonicalProduct
}

type adapterRegistry struct {
	adapters map[string]Adapter
	mu       sync.Mutex
}

func newAdapterRegistry() *adapterRegistry {
	return &adapterRegistry{adapters: make(map[string]Adapter)}
}

func (reg *adapterRegistry) register(key string, adapter Adapter) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if adapter == nil {
		return fmt.Errorf("adapter is nil for key '%s'", key)
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return fmt.Errorf("adapter key cannot be empty")
	}
	if _, exists := reg.adapters[key]; exists {
		return fmt.Errorf("adapter with key '%s' already exists", key)
	}

	reg.adapters[key] = adapter
	return nil
}

func (reg *adapterRegistry) get(key string) (Adapter, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	adapter, ok := reg.adapters[strings.ToLower(strings.TrimSpace(key))]
	return adapter, ok
}

// variantFields names the per-supplier key priorities for one variant row.
type variantFields struct {
	sku   []string
	name  []string
	price []string
	stock []string
}

// variantList projects a native variant/SKU tree into canonical variants.
// Returns nil (not an empty slice) when the feed carries none.
func variantList(items []interface{}, fields variantFields) []models.Variant {
	if len(items) == 0 {
		return nil
	}

	variants := make([]models.Variant, 0, len(items))
	for _, item := range items {
		row := AsRaw(item)
		if len(row) == 0 {
			continue
		}
		variant := models.Variant{
			SKU:   row.String(fields.sku...),
			Name:  row.String(fields.name...),
			Price: row.Float(fields.price...),
			Stock: row.Int(fields.stock...),
		}
		if attrs := row.Map("attributes"); len(attrs) > 0 {
			variant.Attributes = make(map[string]string, len(attrs))
			for k, v := range attrs {
				variant.Attributes[k] = asString(v)
			}
		}
		variants = append(variants, variant)
	}

	if len(variants) == 0 {
		return nil
	}
	return variants
}
