package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/structs"
)

// ErrSessionNotFound is returned when a catalog session does not exist or
// has expired.
var ErrSessionNotFound = fmt.Errorf("catalog session not found")

// CatalogSession is one fetched store catalog, addressable by session id
// until its TTL lapses.
type CatalogSession struct {
	ID        uuid.UUID         `json:"id"`
	StoreURL  string            `json:"store_url"`
	FetchedAt time.Time         `json:"fetched_at"`
	Products  []structs.Product `json:"products"`
}

// CatalogService owns catalog sessions: fetching populates an in-memory
// map with a Redis write-through, reads fall back to Redis so sessions
// survive process restarts.
type CatalogService struct {
	logger  *gecho.Logger
	config  *structs.Config
	shopify *ShopifyService
	cache   *CacheService

	mu       sync.RWMutex
	sessions map[uuid.UUID]*CatalogSession
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, shopify *ShopifyService, cache *CacheService) *CatalogService {
	return &CatalogService{
		logger:   logger,
		config:   cfg,
		shopify:  shopify,
		cache:    cache,
		sessions: make(map[uuid.UUID]*CatalogSession),
	}
}

// Fetch pulls a store's full catalog and registers it as a new session.
func (cs *CatalogService) Fetch(ctx context.Context, storeURL string) (*CatalogSession, error) {
	normalized, err := NormalizeStoreURL(storeURL)
	if err != nil {
		return nil, err
	}

	products, err := cs.shopify.FetchAll(ctx, normalized, nil)
	if err != nil {
		return nil, err
	}

	session := &CatalogSession{
		ID:        uuid.New(),
		StoreURL:  normalized,
		FetchedAt: time.Now(),
		Products:  products,
	}

	cs.mu.Lock()
	cs.sessions[session.ID] = session
	cs.mu.Unlock()

	// Write-through; a cache failure only costs restart durability.
	if err := cs.cache.SetCatalog(session.ID, &CachedCatalog{
		StoreURL:  session.StoreURL,
		FetchedAt: session.FetchedAt,
		Products:  session.Products,
	}); err != nil {
		cs.logger.Warn("Failed to cache catalog session",
			gecho.Field("session_id", session.ID.String()),
			gecho.Field("error", err),
		)
	}

	return session, nil
}

// Get returns a live session by id, reading through to Redis when the
// in-memory copy is missing.
func (cs *CatalogService) Get(sessionID uuid.UUID) (*CatalogSession, error) {
	cs.mu.RLock()
	session, ok := cs.sessions[sessionID]
	cs.mu.RUnlock()

	if ok {
		if cs.expired(session) {
			cs.evict(sessionID)
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	cached, err := cs.cache.GetCatalog(sessionID)
	if err != nil || cached == nil {
		return nil, ErrSessionNotFound
	}

	session = &CatalogSession{
		ID:        sessionID,
		StoreURL:  cached.StoreURL,
		FetchedAt: cached.FetchedAt,
		Products:  cached.Products,
	}

	cs.mu.Lock()
	cs.sessions[sessionID] = session
	cs.mu.Unlock()

	return session, nil
}

// Product returns a single product from a session by its source id.
func (cs *CatalogService) Product(sessionID uuid.UUID, productID int64) (*structs.Product, error) {
	session, err := cs.Get(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range session.Products {
		if session.Products[i].ID == productID {
			return &session.Products[i], nil
		}
	}
	return nil, fmt.Errorf("product %d not found in session", productID)
}

// Subset returns the session's products filtered to the given ids,
// preserving catalog order. An empty id list means the full catalog.
func (cs *CatalogService) Subset(sessionID uuid.UUID, ids []int64) ([]structs.Product, error) {
	session, err := cs.Get(sessionID)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return session.Products, nil
	}

	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var subset []structs.Product
	for _, p := range session.Products {
		if wanted[p.ID] {
			subset = append(subset, p)
		}
	}
	return subset, nil
}

// Delete removes a session from memory and cache.
func (cs *CatalogService) Delete(sessionID uuid.UUID) {
	cs.evict(sessionID)
}

// Count reports how many sessions are held in memory.
func (cs *CatalogService) Count() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.sessions)
}

func (cs *CatalogService) expired(session *CatalogSession) bool {
	ttl := cs.config.Cache.CatalogTTL
	if ttl <= 0 {
		return false
	}
	return time.Since(session.FetchedAt) > ttl
}

func (cs *CatalogService) evict(sessionID uuid.UUID) {
	cs.mu.Lock()
	delete(cs.sessions, sessionID)
	cs.mu.Unlock()

	if err := cs.cache.DeleteCatalog(sessionID); err != nil {
		cs.logger.Warn("Failed to delete cached catalog",
			gecho.Field("session_id", sessionID.String()),
			gecho.Field("error", err),
		)
	}
}
