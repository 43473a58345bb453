package domain

import (
	"context"

	"github.com/google/uuid"

	"metacatalog/internal/models"
)

// Repository contracts consumed by the service layer. Get methods return
// (nil, nil) when the record is absent; multi-step mutations are atomic inside
// one implementation-managed transaction.

type LOBRepository interface {
	Create(ctx context.Context, lob *models.LOB) error
	GetByName(ctx context.Context, name string) (*models.LOB, error)
	List(ctx context.Context) ([]models.LOB, error)
}

type SubjectAreaRepository interface {
	Create(ctx context.Context, area *models.SubjectArea) error
	GetByLOBAndName(ctx context.Context, lobID uuid.UUID, name string) (*models.SubjectArea, error)
}

type LogicalDatabaseRepository interface {
	// CreateAndProvision inserts the database row, the subject-area
	// association, and provisions the physical schema in one transaction.
	CreateAndProvision(ctx context.Context, db *models.LogicalDatabase, subjectAreaID uuid.UUID) error
	// Associate links an existing logical database to another subject area.
	Associate(ctx context.Context, databaseID, subjectAreaID uuid.UUID) error
	GetByName(ctx context.Context, name string) (*models.LogicalDatabase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.LogicalDatabase, error)
	List(ctx context.Context) ([]models.LogicalDatabase, error)
}

type TableRepository interface {
	PhysicalTableExists(ctx context.Context, schema, table string) (bool, error)
	// CreateWithMetadata runs the CREATE TABLE statement and inserts the
	// metadata row in one transaction.
	CreateWithMetadata(ctx context.Context, table *models.TableMetadata, createSQL string) error
	// RegisterMetadata records an already-materialized table without touching
	// the physical store.
	RegisterMetadata(ctx context.Context, table *models.TableMetadata) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TableMetadata, error)
	List(ctx context.Context) ([]models.TableMetadata, error)
	ListByDatabase(ctx context.Context, databaseName string) ([]models.TableMetadata, error)
	ListColumns(ctx context.Context, schema, table string) ([]models.Column, error)
	// DeleteCascade removes dependent ER relationships, drops the physical
	// table, and deletes the metadata row in one transaction.
	DeleteCascade(ctx context.Context, table *models.TableMetadata) error
}

type ERRepository interface {
	Create(ctx context.Context, rel *models.ERRelationship) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ERRelationship, error)
	ListByDatabase(ctx context.Context, databaseName string) ([]models.ERRelationship, error)
	ListByTable(ctx context.Context, tableID uuid.UUID) ([]models.ERRelationship, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID) ([]models.ERRelationship, error)
	Update(ctx context.Context, rel *models.ERRelationship) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EREntityRepository interface {
	Create(ctx context.Context, entity *models.EREntity) error
	ListByLOB(ctx context.Context, lobID uuid.UUID) ([]models.EREntity, error)
}

type ExplorerRepository interface {
	HierarchyRows(ctx context.Context) ([]models.HierarchyRow, error)
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type ProfileRepository interface {
	GetByTable(ctx context.Context, schema, table string) (*models.TableProfile, error)
	Upsert(ctx context.Context, profile *models.TableProfile) error
	// SampleHash returns a content hash over a bounded sample of the physical
	// table, used to decide report freshness.
	SampleHash(ctx context.Context, schema, table string) (string, error)
}

// ReportGenerator produces the profiling report for a physical table. The
// report content is delegated entirely to the implementation.
type ReportGenerator interface {
	Generate(ctx context.Context, schema, table string) (html string, rowCount int64, columnCount int, err error)
}
