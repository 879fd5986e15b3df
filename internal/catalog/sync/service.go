package sync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gosupplier_api/config"
	"gosupplier_api/internal/catalog/models"
	"gosupplier_api/internal/catalog/normalize"
	"gosupplier_api/internal/catalog/storage"
	"gosupplier_api/metrics"
	"gosupplier_api/pkg/business/service"
	"gosupplier_api/pkg/logger"
)

const defaultMaxPages = 10

// Stats summarizes one sync pass over a supplier catalog.
type Stats struct {
	Supplier string   `json:"supplier"`
	Fetched  int      `json:"fetched"`
	Imported int      `json:"imported"`
	Invalid  int      `json:"invalid"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Service runs the import pipeline around the normalizer: fetch raw pages,
// normalize, validate, persist the publishable records. Invalid records are
// counted and reported, never written.
type Service struct {
	normalizer *normalize.Normalizer
	repo       *storage.ProductRepository
	text       service.ITextService
	values     config.CatalogValues
	totals     *metrics.SyncMetrics
	log        logger.Logger
}

func NewService(
	normalizer *normalize.Normalizer,
	repo *storage.ProductRepository,
	values config.CatalogValues,
	writer io.Writer,
) *Service {
	return &Service{
		normalizer: normalizer,
		repo:       repo,
		text:       service.NewTextService(),
		values:     values,
		totals:     &metrics.SyncMetrics{},
		log:        logger.NewLogger(writer, "[CatalogSync]"),
	}
}

// Totals returns the lifetime import counters, aggregated across all runs
// of this service instance.
func (s *Service) Totals() *metrics.SyncMetrics {
	return s.totals
}

// SyncSupplier pulls the supplier's catalog page by page until an empty
// page or the configured page cap.
func (s *Service) SyncSupplier(ctx context.Context, client *SupplierClient, maxPages int) (*Stats, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	stats := &Stats{Supplier: client.Key()}
	for page := 1; page <= maxPages; page++ {
		raws, err := client.FetchPage(ctx, page)
		if err != nil {
			metrics.RecordSyncFailure(client.Key())
			return stats, fmt.Errorf("sync of %s stopped at page %d: %w", client.Key(), page, err)
		}
		if len(raws) == 0 {
			break
		}
		s.importBatch(raws, client.Key(), stats)
	}

	s.log.Log("supplier %s: fetched=%d imported=%d invalid=%d failed=%d",
		stats.Supplier, stats.Fetched, stats.Imported, stats.Invalid, stats.Failed)
	return stats, nil
}

// SyncFeedURL imports a delimited feed file published at a URL, the way
// legacy wholesalers distribute their catalogs.
func (s *Service) SyncFeedURL(ctx context.Context, cfg config.SupplierConfig) (*Stats, error) {
	stats := &Stats{Supplier: cfg.Key}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.FeedURL, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to build feed request for %s: %w", cfg.Key, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		metrics.RecordSyncFailure(cfg.Key)
		return stats, fmt.Errorf("feed download for %s failed: %w", cfg.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordSyncFailure(cfg.Key)
		return stats, fmt.Errorf("feed for %s returned status %d", cfg.Key, resp.StatusCode)
	}

	comma := ';'
	if cfg.FeedComma != "" {
		comma = rune(cfg.FeedComma[0])
	}
	raws, err := ReadCSVFeed(resp.Body, comma, cfg.FeedEncoding)
	if err != nil {
		metrics.RecordSyncFailure(cfg.Key)
		return stats, fmt.Errorf("feed parse for %s failed: %w", cfg.Key, err)
	}

	s.importBatch(raws, cfg.Key, stats)
	s.log.Log("feed %s: fetched=%d imported=%d invalid=%d failed=%d",
		stats.Supplier, stats.Fetched, stats.Imported, stats.Invalid, stats.Failed)
	return stats, nil
}

func (s *Service) importBatch(raws []normalize.Raw, supplierName string, stats *Stats) {
	stats.Fetched += len(raws)
	s.totals.FetchedCount.Add(int32(len(raws)))

	products := s.normalizer.NormalizeBatch(raws, supplierName)
	for i := range products {
		s.cleanText(&products[i])
	}
	metrics.RecordNormalized(supplierName, len(products))

	batch := s.normalizer.ValidateBatch(products)
	for _, invalid := range batch.Invalid {
		stats.Invalid++
		s.totals.InvalidCount.Add(1)
		for _, issue := range invalid.Issues {
			metrics.RecordValidationIssue(supplierName, issue)
		}
	}

	for _, product := range batch.Valid {
		if err := s.repo.Upsert(product); err != nil {
			stats.Failed++
			s.totals.FailedCount.Add(1)
			stats.Errors = append(stats.Errors, err.Error())
			continue
		}
		stats.Imported++
		s.totals.ImportedCount.Add(1)
	}
}

// cleanText strips vendor HTML and trims runaway marketing copy before the
// record reaches storage. Normalization itself stays a pure projection.
func (s *Service) cleanText(product *models.CanonicalProduct) {
	if strings.Contains(product.Description, "<") || len(product.Description) > s.values.MaxDescriptionLength {
		product.Description = s.text.ClearAndReduce(product.Description, s.values.MaxDescriptionLength)
	}
	if len(product.Name) > s.values.MaxNameLength {
		product.Name = s.text.ReduceToLength(product.Name, s.values.MaxNameLength)
	}
}
