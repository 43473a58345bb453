package models

import (
	"time"

	"github.com/google/uuid"
)

// LOB is a Line of Business, the root of the catalog hierarchy.
type LOB struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *LOB) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
}
