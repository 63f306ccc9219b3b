package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"

	"github.com/vivekrai1999/shopspy/structs"
)

func TestNormalizeStoreURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/", "https://example.com"},
		{"https://example.com/collections/all?page=2#top", "https://example.com"},
		{"shop.example.com/products", "https://shop.example.com"},
	}
	for _, c := range cases {
		got, err := NormalizeStoreURL(c.in)
		if err != nil {
			t.Errorf("NormalizeStoreURL(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("NormalizeStoreURL(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeStoreURLRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "ftp://example.com", "https://"} {
		if got, err := NormalizeStoreURL(in); err == nil {
			t.Errorf("NormalizeStoreURL(%q) = %q, want error", in, got)
		}
	}
}

func testShopifyService(pageLimit, maxPages int) *ShopifyService {
	cfg := &structs.Config{
		Source: &structs.SourceConfig{
			PageLimit:      pageLimit,
			MaxPages:       maxPages,
			RequestTimeout: 5 * time.Second,
			UserAgent:      "shopspy-test",
		},
	}
	return NewShopifyService(gecho.NewDefaultLogger(), cfg)
}

// catalogServer serves a synthetic paged catalog of total products.
func catalogServer(t *testing.T, total int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products.json" {
			http.NotFound(w, r)
			return
		}
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if limit < 1 || page < 1 {
			t.Errorf("bad paging query %q", r.URL.RawQuery)
		}

		start := (page - 1) * limit
		var resp structs.ProductsResponse
		for i := start; i < start+limit && i < total; i++ {
			resp.Products = append(resp.Products, structs.Product{
				ID:     int64(i + 1),
				Title:  fmt.Sprintf("Product %d", i+1),
				Handle: fmt.Sprintf("product-%d", i+1),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestFetchAllPagesUntilShortPage(t *testing.T) {
	srv := catalogServer(t, 25)
	defer srv.Close()

	ss := testShopifyService(10, 50)
	var pages []int
	products, err := ss.FetchAll(context.Background(), srv.URL, func(page, total int) {
		pages = append(pages, page)
	})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(products) != 25 {
		t.Fatalf("product count = %d, want 25", len(products))
	}
	if len(pages) != 3 {
		t.Fatalf("fetched %d pages, want 3 (last one short)", len(pages))
	}
	if products[0].ID != 1 || products[24].ID != 25 {
		t.Errorf("products out of order: first %d last %d", products[0].ID, products[24].ID)
	}
}

func TestFetchAllStopsAtPageCap(t *testing.T) {
	srv := catalogServer(t, 1000)
	defer srv.Close()

	ss := testShopifyService(10, 3)
	products, err := ss.FetchAll(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(products) != 30 {
		t.Fatalf("product count = %d, want 30 (3 pages of 10)", len(products))
	}
}

func TestFetchAllEmptyCatalog(t *testing.T) {
	srv := catalogServer(t, 0)
	defer srv.Close()

	ss := testShopifyService(10, 50)
	products, err := ss.FetchAll(context.Background(), srv.URL, nil)
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("product count = %d, want 0", len(products))
	}
}

func TestFetchAllMissingCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	ss := testShopifyService(10, 50)
	_, err := ss.FetchAll(context.Background(), srv.URL, nil)
	if err == nil || !strings.Contains(err.Error(), "public catalog") {
		t.Fatalf("err = %v, want public catalog error", err)
	}
}

func TestFetchAllRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ss := testShopifyService(10, 50)
	_, err := ss.FetchAll(context.Background(), srv.URL, nil)
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("err = %v, want rate limit error", err)
	}
}

func TestFetchAllSendsIdentity(t *testing.T) {
	var gotAgent, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		json.NewEncoder(w).Encode(structs.ProductsResponse{})
	}))
	defer srv.Close()

	ss := testShopifyService(10, 50)
	if _, err := ss.FetchAll(context.Background(), srv.URL, nil); err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if gotAgent != "shopspy-test" {
		t.Errorf("user agent = %q", gotAgent)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept = %q", gotAccept)
	}
}

func TestFetchAllHonoursContext(t *testing.T) {
	srv := catalogServer(t, 1000)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ss := testShopifyService(10, 50)
	if _, err := ss.FetchAll(ctx, srv.URL, nil); err == nil {
		t.Fatal("cancelled fetch succeeded")
	}
}
