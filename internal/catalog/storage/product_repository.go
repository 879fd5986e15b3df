package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/lib/pq"

	"gosupplier_api/internal/catalog/models"
)

// ProductRepository persists canonical products. Re-imports of the same
// (supplier_id, external_id) pair overwrite the previous snapshot, which
// keeps supplier syncs idempotent.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Upsert(product models.CanonicalProduct) error {
	if product.SupplierID == "" || product.ExternalID == "" {
		return fmt.Errorf("product requires supplier_id and external_id for upsert")
	}

	attributes, err := json.Marshal(product.Attributes)
	if err != nil {
		return fmt.Errorf("failed to encode attributes: %w", err)
	}

	var dimensions, variants []byte
	if product.Dimensions != nil {
		if dimensions, err = json.Marshal(product.Dimensions); err != nil {
			return fmt.Errorf("failed to encode dimensions: %w", err)
		}
	}
	if product.Variants != nil {
		if variants, err = json.Marshal(product.Variants); err != nil {
			return fmt.Errorf("failed to encode variants: %w", err)
		}
	}

	query := `
	INSERT INTO catalog.supplier_products (
		supplier_id, external_id, sku, name, description,
		price, cost_price, currency, stock_quantity, images,
		category, brand, weight, dimensions, variants,
		attributes, status, supplier_name, last_synced_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())
	ON CONFLICT (supplier_id, external_id) DO UPDATE SET
		sku = EXCLUDED.sku,
		name = EXCLUDED.name,
		description = EXCLUDED.description,
		price = EXCLUDED.price,
		cost_price = EXCLUDED.cost_price,
		currency = EXCLUDED.currency,
		stock_quantity = EXCLUDED.stock_quantity,
		images = EXCLUDED.images,
		category = EXCLUDED.category,
		brand = EXCLUDED.brand,
		weight = EXCLUDED.weight,
		dimensions = EXCLUDED.dimensions,
		variants = EXCLUDED.variants,
		attributes = EXCLUDED.attributes,
		status = EXCLUDED.status,
		supplier_name = EXCLUDED.supplier_name,
		last_synced_at = now()`

	_, err = r.db.Exec(query,
		product.SupplierID, product.ExternalID, product.SKU, product.Name, product.Description,
		product.Price, product.CostPrice, product.Currency, product.StockQuantity, pq.Array(product.Images),
		product.Category, product.Brand, product.Weight, nullableJSON(dimensions), nullableJSON(variants),
		attributes, string(product.Status), product.SupplierName,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product %s/%s: %w", product.SupplierID, product.ExternalID, err)
	}
	return nil
}

func (r *ProductRepository) GetBySupplier(supplierID string) ([]models.CanonicalProduct, error) {
	query := `
	SELECT supplier_id, external_id, sku, name, description,
		price, cost_price, currency, stock_quantity, images,
		category, brand, weight, dimensions, variants,
		attributes, status, supplier_name
	FROM catalog.supplier_products
	WHERE supplier_id = $1
	ORDER BY external_id`

	rows, err := r.db.Query(query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products for supplier %s: %w", supplierID, err)
	}
	defer rows.Close()

	var products []models.CanonicalProduct
	for rows.Next() {
		var product models.CanonicalProduct
		var images pq.StringArray
		var dimensions, variants, attributes []byte
		var status string

		if err := rows.Scan(
			&product.SupplierID, &product.ExternalID, &product.SKU, &product.Name, &product.Description,
			&product.Price, &product.CostPrice, &product.Currency, &product.StockQuantity, &images,
			&product.Category, &product.Brand, &product.Weight, &dimensions, &variants,
			&attributes, &status, &product.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}

		product.Images = images
		product.Status = models.ProductStatus(status)
		if len(dimensions) > 0 {
			if err := json.Unmarshal(dimensions, &product.Dimensions); err != nil {
				log.Printf("skipping malformed dimensions for %s/%s: %v", product.SupplierID, product.ExternalID, err)
			}
		}
		if len(variants) > 0 {
			if err := json.Unmarshal(variants, &product.Variants); err != nil {
				log.Printf("skipping malformed variants for %s/%s: %v", product.SupplierID, product.ExternalID, err)
			}
		}
		if len(attributes) > 0 {
			if err := json.Unmarshal(attributes, &product.Attributes); err != nil {
				log.Printf("skipping malformed attributes for %s/%s: %v", product.SupplierID, product.ExternalID, err)
			}
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate product rows: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) CountBySupplier(supplierID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM catalog.supplier_products WHERE supplier_id = $1`,
		supplierID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products for supplier %s: %w", supplierID, err)
	}
	return count, nil
}

// nullableJSON keeps absent optional documents as SQL NULL instead of the
// JSON literal null.
func nullableJSON(data []byte) interface{} {
	if len(data) == 0 {
		return nil
	}
	return data
}
