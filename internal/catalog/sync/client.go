package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"gosupplier_api/config"
	"gosupplier_api/internal/catalog/normalize"
	"gosupplier_api/pkg/logger"
)

const (
	defaultPageSize  = 100
	defaultRateLimit = 60 // requests per minute
	requestTimeout   = 30 * time.Second
)

// SupplierClient pulls paginated catalog pages from one supplier API and
// hands them over as raw records. Throttling follows the per-supplier rate
// limit so bulk syncs stay inside vendor quotas.
type SupplierClient struct {
	cfg     config.SupplierConfig
	client  *http.Client
	limiter *rate.Limiter
	log     logger.Logger
}

func NewSupplierClient(cfg config.SupplierConfig, writer io.Writer) *SupplierClient {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	return &SupplierClient{
		cfg:     cfg,
		client:  &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(float64(limit)/60.0), 1),
		log:     logger.NewLogger(writer, fmt.Sprintf("[SupplierClient:%s]", cfg.Key)),
	}
}

func (c *SupplierClient) Key() string { return c.cfg.Key }

// FetchPage requests one catalog page. An empty result marks the end of the
// feed.
func (c *SupplierClient) FetchPage(ctx context.Context, page int) ([]normalize.Raw, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	requestURL, err := c.pageURL(page)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", c.cfg.Key, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		header := c.cfg.AuthHeader
		if header == "" {
			header = "Authorization"
		}
		value := c.cfg.APIKey
		if header == "Authorization" {
			value = "Bearer " + value
		}
		req.Header.Set(header, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.cfg.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("supplier %s returned status %d: %s", c.cfg.Key, resp.StatusCode, body)
	}

	var payload interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", c.cfg.Key, err)
	}

	raws := extractProductList(payload)
	c.log.Log("fetched page %d: %d products", page, len(raws))
	return raws, nil
}

func (c *SupplierClient) pageURL(page int) (string, error) {
	parsed, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url for %s: %w", c.cfg.Key, err)
	}

	query := parsed.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(c.cfg.PageSize))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// extractProductList accepts the two common list envelopes: a bare JSON
// array, or an object wrapping the list under products/data/items.
func extractProductList(payload interface{}) []normalize.Raw {
	items, ok := payload.([]interface{})
	if !ok {
		envelope := normalize.AsRaw(payload)
		for _, key := range []string{"products", "data", "items"} {
			if list := envelope.Slice(key); list != nil {
				items = list
				break
			}
		}
	}

	raws := make([]normalize.Raw, 0, len(items))
	for _, item := range items {
		raws = append(raws, normalize.AsRaw(item))
	}
	return raws
}
