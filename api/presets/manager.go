package presets

import (
	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"github.com/vivekrai1999/shopspy/services"
)

type PresetRoutesManager struct {
	logger        *gecho.Logger
	presetService *services.PresetService
}

func NewPresetRoutesManager(logger *gecho.Logger, presetService *services.PresetService) *PresetRoutesManager {
	return &PresetRoutesManager{
		logger:        logger,
		presetService: presetService,
	}
}

func (prm *PresetRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/presets", prm.ListPresets)
	r.Post("/presets", prm.CreatePreset)
	r.Get("/presets/{id}", prm.GetPreset)
	r.Put("/presets/{id}", prm.UpdatePreset)
	r.Delete("/presets/{id}", prm.DeletePreset)
}
