package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vivekrai1999/shopspy/structs"
)

// ExportPreset is a saved custom-export field mapping list. Presets are the
// only thing this service persists; fetched catalogs stay in memory.
type ExportPreset struct {
	bun.BaseModel `bun:"table:export_presets,alias:ep"`

	ID        uuid.UUID              `bun:"id,pk,type:uuid" json:"id"`
	Name      string                 `bun:"name,notnull,unique" json:"name"`
	Mappings  []structs.FieldMapping `bun:"mappings,type:jsonb" json:"mappings"`
	CreatedAt time.Time              `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time              `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
