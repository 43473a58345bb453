package models

import (
	"time"

	"github.com/google/uuid"
)

// TableMetadata is the catalog record for a physical table.
type TableMetadata struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SchemaName string    `json:"schema_name"`
	DatabaseID uuid.UUID `json:"database_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (t *TableMetadata) Prepare() {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
}
