package export

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/vivekrai1999/shopspy/services"
)

type ExportRoutesManager struct {
	logger        *gecho.Logger
	exportService *services.ExportService
	presetService *services.PresetService
}

func NewExportRoutesManager(
	logger *gecho.Logger,
	exportService *services.ExportService,
	presetService *services.PresetService,
) *ExportRoutesManager {
	return &ExportRoutesManager{
		logger:        logger,
		exportService: exportService,
		presetService: presetService,
	}
}

func (erm *ExportRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/export/{session}/{format}", erm.Download)
	r.Post("/export/{session}/custom", erm.DownloadCustom)
}
