package handlers

import (
	"encoding/json"
	"net/http"

	"gosupplier_api/internal/catalog/models"
	"gosupplier_api/internal/catalog/normalize"
)

type NormalizeRequest struct {
	Supplier string                   `json:"supplier"`
	Products []map[string]interface{} `json:"products"`
}

type NormalizeResponse struct {
	Supplier string                    `json:"supplier"`
	Products []models.CanonicalProduct `json:"products"`
	Valid    int                       `json:"valid"`
	Invalid  []models.InvalidProduct   `json:"invalid"`
}

// NormalizeHandler exposes the normalizer as a stateless endpoint: raw
// payloads in, canonical records plus validation verdicts out. Nothing is
// persisted here.
type NormalizeHandler struct {
	normalizer *normalize.Normalizer
}

func NewNormalizeHandler(normalizer *normalize.Normalizer) *NormalizeHandler {
	return &NormalizeHandler{normalizer: normalizer}
}

func (h *NormalizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.Supplier == "" {
		http.Error(w, "supplier is required", http.StatusBadRequest)
		return
	}

	raws := make([]normalize.Raw, 0, len(request.Products))
	for _, payload := range request.Products {
		raws = append(raws, normalize.Raw(payload))
	}

	products := h.normalizer.NormalizeBatch(raws, request.Supplier)
	batch := h.normalizer.ValidateBatch(products)

	response := NormalizeResponse{
		Supplier: request.Supplier,
		Products: products,
		Valid:    len(batch.Valid),
		Invalid:  batch.Invalid,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
