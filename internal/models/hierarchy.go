package models

import "github.com/google/uuid"

// HierarchyRow is one row of the wide outer-join over the catalog hierarchy.
// Everything below the LOB level may be NULL when a branch has no children.
type HierarchyRow struct {
	LOBID           uuid.UUID
	LOBName         string
	SubjectAreaID   *uuid.UUID
	SubjectAreaName *string
	DatabaseID      *uuid.UUID
	DatabaseName    *string
	TableID         *uuid.UUID
	TableName       *string
}

// Hierarchy is the nested LOB → SubjectArea → LogicalDatabase → Table mapping
// keyed by entity id.
type Hierarchy map[string]*HierarchyLOB

type HierarchyLOB struct {
	Name         string                          `json:"name"`
	SubjectAreas map[string]*HierarchySubjectArea `json:"subject_areas"`
}

type HierarchySubjectArea struct {
	Name      string                        `json:"name"`
	Databases map[string]*HierarchyDatabase `json:"databases"`
}

type HierarchyDatabase struct {
	Name   string            `json:"name"`
	Tables map[string]string `json:"tables"`
}
