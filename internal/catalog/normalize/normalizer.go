package normalize

import (
	"strings"

	"gosupplier_api/internal/catalog/models"
)

// Normalizer dispatches raw vendor payloads to the per-supplier adapters.
// It is stateless; the registry is populated once at construction and
// callers may extend it through Register.
type Normalizer struct {
	registry *adapterRegistry
}

func NewNormalizer() *Normalizer {
	n := &Normalizer{registry: newAdapterRegistry()}

	for _, adapter := range []Adapter{
		BigBuyAdapter{},
		CJAdapter{},
		BTSWholesalerAdapter{},
		MatterhornAdapter{},
		VidaXLAdapter{},
		AliExpressAdapter{},
		ShopifyAdapter{},
		WooCommerceAdapter{},
	} {
		// default table, keys are unique by construction
		_ = n.registry.register(adapter.SupplierID(), adapter)
	}
	_ = n.registry.register("cjdropshipping", CJAdapter{})
	_ = n.registry.register("bts", BTSWholesalerAdapter{})

	return n
}

// Register adds a dedicated adapter for a supplier key, replacing the
// generic fallback for it. Keys are matched case-insensitively.
func (n *Normalizer) Register(key string, adapter Adapter) error {
	return n.registry.register(key, adapter)
}

// Normalize translates one raw payload into the canonical record. It never
// fails: unrecognized suppliers fall through to the generic adapter, which
// keeps the caller-supplied name, and malformed fields degrade to defaults.
func (n *Normalizer) Normalize(raw Raw, supplierName string) models.CanonicalProduct {
	if adapter, ok := n.registry.get(supplierName); ok {
		return adapter.Map(raw)
	}
	return GenericAdapter{Name: strings.TrimSpace(supplierName)}.Map(raw)
}

// NormalizeBatch maps Normalize over the whole payload list, preserving
// input order.
func (n *Normalizer) NormalizeBatch(raws []Raw, supplierName string) []models.CanonicalProduct {
	products := make([]models.CanonicalProduct, 0, len(raws))
	for _, raw := range raws {
		products = append(products, n.Normalize(raw, supplierName))
	}
	return products
}
