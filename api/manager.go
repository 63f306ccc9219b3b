package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/vivekrai1999/shopspy/api/export"
	"github.com/vivekrai1999/shopspy/api/health"
	"github.com/vivekrai1999/shopspy/api/presets"
	"github.com/vivekrai1999/shopspy/api/products"
)

type routerManager struct {
	productRoutes *products.ProductRoutesManager
	exportRoutes  *export.ExportRoutesManager
	presetRoutes  *presets.PresetRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func newRouterManager(
	productRoutes *products.ProductRoutesManager,
	exportRoutes *export.ExportRoutesManager,
	presetRoutes *presets.PresetRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		productRoutes: productRoutes,
		exportRoutes:  exportRoutes,
		presetRoutes:  presetRoutes,
		healthRoutes:  healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.productRoutes.RegisterRoutes(r)
	rm.exportRoutes.RegisterRoutes(r)
	rm.presetRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
