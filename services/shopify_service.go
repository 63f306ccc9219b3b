package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MonkyMars/gecho"

	"github.com/vivekrai1999/shopspy/structs"
)

// ShopifyService fetches public storefront catalogs through the
// /products.json endpoint, paging until the catalog is exhausted.
type ShopifyService struct {
	logger *gecho.Logger
	config *structs.Config
	client *http.Client
}

// FetchProgress is invoked after each fetched page with the page number
// and the running product total.
type FetchProgress func(page, total int)

func NewShopifyService(logger *gecho.Logger, cfg *structs.Config) *ShopifyService {
	return &ShopifyService{
		logger: logger,
		config: cfg,
		client: &http.Client{Timeout: cfg.Source.RequestTimeout},
	}
}

// NormalizeStoreURL canonicalizes user input into a bare https store
// origin: scheme defaulted to https, path/query/fragment discarded,
// trailing slashes stripped.
func NormalizeStoreURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("store url is empty")
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid store url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("store url has no host")
	}

	return u.Scheme + "://" + u.Host, nil
}

// FetchAll retrieves the complete product catalog of a store. Pages are
// requested sequentially with the configured page limit; fetching stops
// when a page comes back short, the page cap is reached, or the context
// is cancelled.
func (ss *ShopifyService) FetchAll(ctx context.Context, storeURL string, progress FetchProgress) ([]structs.Product, error) {
	base, err := NormalizeStoreURL(storeURL)
	if err != nil {
		return nil, err
	}

	limit := ss.config.Source.PageLimit
	maxPages := ss.config.Source.MaxPages

	var products []structs.Product
	for page := 1; page <= maxPages; page++ {
		batch, err := ss.fetchPage(ctx, base, page, limit)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		products = append(products, batch...)
		if progress != nil {
			progress(page, len(products))
		}

		ss.logger.Debug("Fetched catalog page",
			gecho.Field("store", base),
			gecho.Field("page", page),
			gecho.Field("batch", len(batch)),
			gecho.Field("total", len(products)),
		)

		// A short page means the catalog is exhausted.
		if len(batch) < limit {
			break
		}
	}

	ss.logger.Info("Catalog fetch complete",
		gecho.Field("store", base),
		gecho.Field("products", len(products)),
	)

	return products, nil
}

func (ss *ShopifyService) fetchPage(ctx context.Context, base string, page, limit int) ([]structs.Product, error) {
	endpoint := fmt.Sprintf("%s/products.json?limit=%d&page=%d", base, limit, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", ss.config.Source.UserAgent)

	resp, err := ss.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("store does not expose a public catalog")
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("store rate limited the request")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed structs.ProductsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decoding catalog page: %w", err)
	}

	return parsed.Products, nil
}
