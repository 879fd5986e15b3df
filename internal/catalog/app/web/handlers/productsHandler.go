package handlers

import (
	"encoding/json"
	"net/http"

	"gosupplier_api/internal/catalog/models"
	"gosupplier_api/internal/catalog/storage"
)

type ProductsResponse struct {
	Supplier string                    `json:"supplier"`
	Count    int                       `json:"count"`
	Products []models.CanonicalProduct `json:"products"`
}

// ProductsHandler serves the imported catalog of a single supplier.
type ProductsHandler struct {
	repo *storage.ProductRepository
}

func NewProductsHandler(repo *storage.ProductRepository) *ProductsHandler {
	return &ProductsHandler{repo: repo}
}

func (h *ProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	supplierID := r.URL.Query().Get("supplier")
	if supplierID == "" {
		http.Error(w, "supplier query parameter is required", http.StatusBadRequest)
		return
	}

	products, err := h.repo.GetBySupplier(supplierID)
	if err != nil {
		http.Error(w, "failed to load products: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := ProductsResponse{
		Supplier: supplierID,
		Count:    len(products),
		Products: products,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
