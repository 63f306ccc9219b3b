package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/api/health"
	"github.com/vivekrai1999/shopspy/export"
	"github.com/vivekrai1999/shopspy/handling"
	"github.com/vivekrai1999/shopspy/lib"
	"github.com/vivekrai1999/shopspy/services"
	"github.com/vivekrai1999/shopspy/structs"
)

// Download handles GET /export/{session}/{format} for the fixed formats:
// csv, xlsx, json and shopify. An ids query parameter restricts the
// export to a product selection.
func (erm *ExportRoutesManager) Download(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidSessionId"),
			gecho.Send(),
		)
		return
	}

	format := services.ExportFormat(chi.URLParam(r, "format"))
	switch format {
	case services.FormatCSV, services.FormatXLSX, services.FormatJSON, services.FormatShopify:
	default:
		gecho.BadRequest(w,
			gecho.WithMessage("error.export.unsupportedFormat"),
			gecho.Send(),
		)
		return
	}

	ids, err := handling.ParseIDList(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.export.invalidSelection"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	payload, err := erm.exportService.Export(sessionID, format, ids)
	if err != nil {
		erm.respondError(w, err)
		return
	}

	health.ExportsGenerated.WithLabelValues(string(format)).Inc()
	servePayload(w, payload)
}

type customExportRequest struct {
	Mappings []structs.FieldMapping `json:"mappings" validate:"omitempty,dive"`
	PresetID *uuid.UUID             `json:"preset_id"`
	Format   string                 `json:"format" validate:"omitempty,oneof=csv xlsx"`
	IDs      []int64                `json:"ids"`
}

// DownloadCustom handles POST /export/{session}/custom. Mappings come
// either inline or from a saved preset.
func (erm *ExportRoutesManager) DownloadCustom(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "session"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.catalog.invalidSessionId"),
			gecho.Send(),
		)
		return
	}

	body, err := lib.ExtractAndValidateBody[customExportRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	mappings := body.Mappings
	if len(mappings) == 0 && body.PresetID != nil {
		preset, err := erm.presetService.Get(r.Context(), *body.PresetID)
		if err != nil {
			erm.respondError(w, err)
			return
		}
		if preset == nil {
			gecho.NotFound(w,
				gecho.WithMessage("error.presets.notFound"),
				gecho.Send(),
			)
			return
		}
		mappings = preset.Mappings
	}

	asWorkbook := body.Format == "xlsx"
	payload, err := erm.exportService.ExportCustom(sessionID, mappings, asWorkbook, body.IDs)
	if err != nil {
		erm.respondError(w, err)
		return
	}

	health.ExportsGenerated.WithLabelValues("custom").Inc()
	servePayload(w, payload)
}

// respondError translates service errors into HTTP responses.
func (erm *ExportRoutesManager) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		gecho.NotFound(w,
			gecho.WithMessage("error.catalog.sessionNotFound"),
			gecho.Send(),
		)
	case errors.Is(err, export.ErrNoProducts),
		errors.Is(err, export.ErrNoMappings),
		errors.Is(err, export.ErrMissingFieldName):
		gecho.BadRequest(w,
			gecho.WithMessage("error.export.invalidRequest"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
	case errors.Is(err, services.ErrPresetsDisabled):
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.presets.disabled"),
			gecho.Send(),
		)
	default:
		erm.logger.Error("Export failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.export.failed"),
			gecho.Send(),
		)
	}
}

func servePayload(w http.ResponseWriter, payload *services.ExportPayload) {
	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(payload.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(payload.Data)
}
