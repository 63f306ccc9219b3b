package services

import (
	"github.com/MonkyMars/gecho"

	"github.com/vivekrai1999/shopspy/database"
	"github.com/vivekrai1999/shopspy/structs"
)

type ServiceManager struct {
	CacheService   *CacheService
	ShopifyService *ShopifyService
	CatalogService *CatalogService
	ExportService  *ExportService
	PresetService  *PresetService
	HealthService  *HealthService
}

// NewServiceManager wires the service graph. db may be nil when preset
// persistence is disabled.
func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	shopifyService := NewShopifyService(logger, cfg)
	catalogService := NewCatalogService(logger, cfg, shopifyService, cacheService)
	exportService := NewExportService(logger, catalogService)
	presetService := NewPresetService(logger, db)
	healthService := NewHealthService(logger, db, cacheService, catalogService)

	return &ServiceManager{
		CacheService:   cacheService,
		ShopifyService: shopifyService,
		CatalogService: catalogService,
		ExportService:  exportService,
		PresetService:  presetService,
		HealthService:  healthService,
	}
}
