package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"gosupplier_api/config"
	catalogsync "gosupplier_api/internal/catalog/sync"
	"gosupplier_api/pkg/logger"
)

type SyncRequest struct {
	Supplier string `json:"supplier"`
}

// SyncHandler triggers a catalog pull for one configured supplier. The pull
// runs synchronously and the response carries the import stats, so callers
// see immediately how many records made it through validation.
type SyncHandler struct {
	service   *catalogsync.Service
	suppliers map[string]config.SupplierConfig
	clients   map[string]*catalogsync.SupplierClient
	log       logger.Logger
}

func NewSyncHandler(service *catalogsync.Service, suppliers []config.SupplierConfig, writer io.Writer) *SyncHandler {
	byKey := make(map[string]config.SupplierConfig, len(suppliers))
	clients := make(map[string]*catalogsync.SupplierClient, len(suppliers))
	for _, supplier := range suppliers {
		byKey[supplier.Key] = supplier
		if supplier.FeedURL == "" {
			clients[supplier.Key] = catalogsync.NewSupplierClient(supplier, writer)
		}
	}
	return &SyncHandler{
		service:   service,
		suppliers: byKey,
		clients:   clients,
		log:       logger.NewLogger(writer, "[SyncHandler]"),
	}
}

func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	supplier, ok := h.suppliers[request.Supplier]
	if !ok {
		http.Error(w, "unknown supplier", http.StatusNotFound)
		return
	}

	var stats *catalogsync.Stats
	var err error
	if supplier.FeedURL != "" {
		stats, err = h.service.SyncFeedURL(r.Context(), supplier)
	} else {
		stats, err = h.service.SyncSupplier(r.Context(), h.clients[supplier.Key], supplier.MaxPages)
	}
	if err != nil {
		h.log.Log("sync failed for %s: %s", request.Supplier, err)
		http.Error(w, "sync failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
