package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/handling"
	"github.com/vivekrai1999/shopspy/services"
	"github.com/vivekrai1999/shopspy/table"
)

// columnMeta is the per-column rendering contract exposed to clients.
type columnMeta struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Width  int    `json:"width,omitempty"`
	Pin    string `json:"pin,omitempty"`
	Offset int    `json:"offset"`
}

// TableView handles GET /products/{session}: the session's catalog
// filtered, sorted and paginated per query parameters.
func (prm *ProductRoutesManager) TableView(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidSessionId"),
			gecho.Send(),
		)
		return
	}

	opts, err := handling.ParseTableOptions(r)
	if err != nil {
		handling.HandleBadRequest(err, "error.invalidQueryParameters", prm.logger, w)
		return
	}

	session, err := prm.catalogService.Get(sessionID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.catalog.sessionNotFound"),
				gecho.Send(),
			)
			return
		}
		handling.HandleError(err, "Failed to load session", prm.logger, w)
		return
	}

	pageSize := prm.cfg.Table.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}

	engine := table.NewEngine(session.Products, Columns(), pageSize)
	engine.SetPinnedColumnWidth(prm.cfg.Table.PinnedColumnWidth)
	applyOptions(engine, opts)

	view := engine.VisibleSlice()

	columns := make([]columnMeta, 0)
	for _, col := range engine.VisibleColumns() {
		side, offset := engine.PinOffset(col.ID)
		columns = append(columns, columnMeta{
			ID:     col.ID,
			Label:  col.Label,
			Width:  col.Width,
			Pin:    pinLabel(side),
			Offset: offset,
		})
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"view":       view,
			"columns":    columns,
			"pages":      engine.PageItems(),
			"store_url":  session.StoreURL,
			"fetched_at": session.FetchedAt,
		}),
		gecho.Send(),
	)
}

// GetProduct handles GET /products/{session}/{id} for a single product.
func (prm *ProductRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidSessionId"),
			gecho.Send(),
		)
		return
	}

	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.Product(sessionID, productID)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.catalog.sessionNotFound"),
				gecho.Send(),
			)
			return
		}
		gecho.NotFound(w,
			gecho.WithMessage("error.catalog.productNotFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

func applyOptions[T any](engine *table.Engine[T], opts *handling.TableOptions) {
	for column, token := range opts.Filters {
		engine.SetFilter(column, token)
	}
	if opts.SortColumn != "" {
		engine.SortBy(opts.SortColumn, opts.SortDir)
	}
	for _, id := range opts.Hide {
		engine.SetColumnVisibility(id, false)
	}
	for _, id := range opts.Show {
		engine.SetColumnVisibility(id, true)
	}
	for _, id := range opts.PinLeft {
		engine.SetColumnPin(id, table.PinLeft)
	}
	for _, id := range opts.PinRight {
		engine.SetColumnPin(id, table.PinRight)
	}
	if opts.Page > 0 {
		engine.SetPage(opts.Page)
	}
}

func pinLabel(side table.PinSide) string {
	switch side {
	case table.PinLeft:
		return "left"
	case table.PinRight:
		return "right"
	default:
		return ""
	}
}
