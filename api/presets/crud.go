package presets

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/handling"
	"github.com/vivekrai1999/shopspy/lib"
	"github.com/vivekrai1999/shopspy/services"
	"github.com/vivekrai1999/shopspy/structs"
)

type presetRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=120"`
	Mappings []structs.FieldMapping `json:"mappings" validate:"required,min=1,dive"`
}

func (prm *PresetRoutesManager) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := prm.presetService.List(r.Context())
	if err != nil {
		prm.respondError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"presets": presets}),
		gecho.Send(),
	)
}

func (prm *PresetRoutesManager) GetPreset(w http.ResponseWriter, r *http.Request) {
	id, ok := prm.parseID(w, r)
	if !ok {
		return
	}

	preset, err := prm.presetService.Get(r.Context(), id)
	if err != nil {
		prm.respondError(w, err)
		return
	}
	if preset == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.presets.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"preset": preset}),
		gecho.Send(),
	)
}

func (prm *PresetRoutesManager) CreatePreset(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[presetRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	preset, err := prm.presetService.Create(r.Context(), body.Name, body.Mappings)
	if err != nil {
		prm.respondError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"preset": preset}),
		gecho.Send(),
	)
}

func (prm *PresetRoutesManager) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	id, ok := prm.parseID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[presetRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidRequestBody"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	preset, err := prm.presetService.Update(r.Context(), id, body.Name, body.Mappings)
	if err != nil {
		prm.respondError(w, err)
		return
	}
	if preset == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.presets.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"preset": preset}),
		gecho.Send(),
	)
}

func (prm *PresetRoutesManager) DeletePreset(w http.ResponseWriter, r *http.Request) {
	id, ok := prm.parseID(w, r)
	if !ok {
		return
	}

	deleted, err := prm.presetService.Delete(r.Context(), id)
	if err != nil {
		prm.respondError(w, err)
		return
	}
	if !deleted {
		gecho.NotFound(w,
			gecho.WithMessage("error.presets.notFound"),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Preset deleted"),
		gecho.Send(),
	)
}

func (prm *PresetRoutesManager) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.presets.invalidId"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}
	return id, true
}

func (prm *PresetRoutesManager) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPresetsDisabled):
		gecho.ServiceUnavailable(w,
			gecho.WithMessage("error.presets.disabled"),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w,
			gecho.WithMessage("error.presets.nameTaken"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
	default:
		handling.HandleError(err, "Preset operation failed", prm.logger, w)
	}
}
