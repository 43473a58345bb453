package models

import (
	"time"

	"github.com/google/uuid"
)

// LogicalDatabase is a named unit mapped to a physical schema in the backing
// store. It can be associated with multiple subject areas through the
// subject_area_logical_databases join table.
type LogicalDatabase struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *LogicalDatabase) Prepare() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
}
