package products

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/vivekrai1999/shopspy/api/middleware"
	"github.com/vivekrai1999/shopspy/services"
	"github.com/vivekrai1999/shopspy/structs"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	catalogService *services.CatalogService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	catalogService *services.CatalogService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		cfg:            cfg,
		catalogService: catalogService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.With(prm.mw.FetchRateLimit()).Post("/products/fetch", prm.FetchCatalog)
	r.Get("/products/{session}", prm.TableView)
	r.Get("/products/{session}/{id}", prm.GetProduct)
}
