package models

import "github.com/google/uuid"

// Search result type tags.
const (
	SearchTypeLOB         = "lob"
	SearchTypeSubjectArea = "subject_area"
	SearchTypeDatabase    = "database"
	SearchTypeTable       = "table"
)

// SearchResult is one case-insensitive name match with whatever ancestor
// names the joins could resolve.
type SearchResult struct {
	Type            string    `json:"type"`
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	LOBName         *string   `json:"lob_name,omitempty"`
	SubjectAreaName *string   `json:"subject_area_name,omitempty"`
	DatabaseName    *string   `json:"database_name,omitempty"`
}
