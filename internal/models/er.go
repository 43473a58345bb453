package models

import (
	"time"

	"github.com/google/uuid"
)

// Cardinality values accepted for an ER relationship. This is the only
// enumerated domain constraint enforced at the application layer.
const (
	CardinalityOneToOne  = "one-to-one"
	CardinalityOneToMany = "one-to-many"
	CardinalityManyToOne = "many-to-one"
)

var Cardinalities = []string{
	CardinalityOneToOne,
	CardinalityOneToMany,
	CardinalityManyToOne,
}

// ERRelationship records a foreign-key-like link between two table columns.
// EREntityID is set when the relationship belongs to a named ER diagram.
type ERRelationship struct {
	ID               uuid.UUID  `json:"id"`
	FromTableID      uuid.UUID  `json:"from_table_id"`
	FromColumn       string     `json:"from_column"`
	ToTableID        uuid.UUID  `json:"to_table_id"`
	ToColumn         string     `json:"to_column"`
	Cardinality      string     `json:"cardinality"`
	RelationshipType *string    `json:"relationship_type,omitempty"`
	EREntityID       *uuid.UUID `json:"er_entity_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (r *ERRelationship) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
}

// EREntity is a named ER diagram under a LOB, owning a subset of
// relationships.
type EREntity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LOBID       uuid.UUID `json:"lob_id"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *EREntity) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
}
