package models

import (
	"time"

	"github.com/google/uuid"
)

// SubjectArea groups logical databases within a LOB. Its name is unique per
// LOB, not globally.
type SubjectArea struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LOBID     uuid.UUID `json:"lob_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *SubjectArea) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}
