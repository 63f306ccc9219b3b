package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"

	"github.com/vivekrai1999/shopspy/database"
	"github.com/vivekrai1999/shopspy/lib"
	"github.com/vivekrai1999/shopspy/structs"
	"github.com/vivekrai1999/shopspy/structs/tables"
)

// ErrPresetsDisabled is returned when preset persistence is turned off.
var ErrPresetsDisabled = fmt.Errorf("export presets require a database connection")

// PresetService persists reusable custom-export mapping lists.
type PresetService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewPresetService(logger *gecho.Logger, db *database.DB) *PresetService {
	return &PresetService{
		logger: logger,
		db:     db,
	}
}

// Enabled reports whether preset persistence is available.
func (ps *PresetService) Enabled() bool {
	return ps.db != nil
}

// List returns all presets, newest first.
func (ps *PresetService) List(ctx context.Context) ([]tables.ExportPreset, error) {
	if !ps.Enabled() {
		return nil, ErrPresetsDisabled
	}

	return database.Query[tables.ExportPreset](ps.db).
		Context(ctx).
		OrderBy("created_at", database.DESC).
		All()
}

// Get returns a preset by id, or nil when absent.
func (ps *PresetService) Get(ctx context.Context, id uuid.UUID) (*tables.ExportPreset, error) {
	if !ps.Enabled() {
		return nil, ErrPresetsDisabled
	}

	return database.Query[tables.ExportPreset](ps.db).
		Context(ctx).
		Where("id", id).
		First()
}

// Create validates and stores a new preset.
func (ps *PresetService) Create(ctx context.Context, name string, mappings []structs.FieldMapping) (*tables.ExportPreset, error) {
	if !ps.Enabled() {
		return nil, ErrPresetsDisabled
	}
	if err := validatePreset(name, mappings); err != nil {
		return nil, err
	}

	now := time.Now()
	preset := &tables.ExportPreset{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Mappings:  mappings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := database.Query[tables.ExportPreset](ps.db).Context(ctx).Insert(preset); err != nil {
		if errors.Is(lib.MapPgError(err), lib.ErrConflict) {
			return nil, fmt.Errorf("preset %q: %w", preset.Name, lib.ErrConflict)
		}
		return nil, fmt.Errorf("creating preset: %w", err)
	}

	ps.logger.Info("Export preset created",
		gecho.Field("preset_id", preset.ID.String()),
		gecho.Field("name", preset.Name),
		gecho.Field("columns", len(mappings)),
	)

	return preset, nil
}

// Update replaces a preset's name and mappings. Returns the updated
// preset, or nil when the id is unknown.
func (ps *PresetService) Update(ctx context.Context, id uuid.UUID, name string, mappings []structs.FieldMapping) (*tables.ExportPreset, error) {
	if !ps.Enabled() {
		return nil, ErrPresetsDisabled
	}
	if err := validatePreset(name, mappings); err != nil {
		return nil, err
	}

	affected, err := database.Query[tables.ExportPreset](ps.db).
		Context(ctx).
		Where("id", id).
		Update(map[string]any{
			"name":       strings.TrimSpace(name),
			"mappings":   mappings,
			"updated_at": time.Now(),
		})
	if err != nil {
		if errors.Is(lib.MapPgError(err), lib.ErrConflict) {
			return nil, fmt.Errorf("preset %q: %w", strings.TrimSpace(name), lib.ErrConflict)
		}
		return nil, fmt.Errorf("updating preset: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return ps.Get(ctx, id)
}

// Delete removes a preset. Reports whether a row was deleted.
func (ps *PresetService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if !ps.Enabled() {
		return false, ErrPresetsDisabled
	}

	affected, err := database.Query[tables.ExportPreset](ps.db).
		Context(ctx).
		Where("id", id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("deleting preset: %w", err)
	}
	return affected > 0, nil
}

func validatePreset(name string, mappings []structs.FieldMapping) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset name is required")
	}
	if len(mappings) == 0 {
		return fmt.Errorf("preset needs at least one field mapping")
	}
	for i, m := range mappings {
		if strings.TrimSpace(m.Label) == "" {
			return fmt.Errorf("mapping %d has no label", i+1)
		}
	}
	return nil
}
