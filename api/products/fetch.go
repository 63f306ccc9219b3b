package products

import (
	"net/http"

	"github.com/MonkyMars/gecho"

	"github.com/vivekrai1999/shopspy/api/health"
	"github.com/vivekrai1999/shopspy/lib"
)

type fetchRequest struct {
	StoreURL string `json:"store_url" validate:"required"`
}

// FetchCatalog handles POST /products/fetch: it pulls a store's full
// public catalog and opens a new session over it.
func (prm *ProductRoutesManager) FetchCatalog(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[fetchRequest](r)
	if err != nil {
		prm.logger.Warn("Invalid fetch request", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	session, err := prm.catalogService.Fetch(r.Context(), body.StoreURL)
	if err != nil {
		health.CatalogFetches.WithLabelValues("error").Inc()
		prm.logger.Error("Catalog fetch failed",
			gecho.Field("store_url", body.StoreURL),
			gecho.Field("error", err),
		)
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.fetchFailed"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	health.CatalogFetches.WithLabelValues("success").Inc()
	health.CatalogProducts.Observe(float64(len(session.Products)))

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"session_id": session.ID,
			"store_url":  session.StoreURL,
			"fetched_at": session.FetchedAt,
			"count":      len(session.Products),
		}),
		gecho.Send(),
	)
}
