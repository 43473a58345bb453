package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

// TableService creates, lists, and deletes catalog tables, keeping the
// physical table and its metadata row in step.
type TableService struct {
	tableRepo    domain.TableRepository
	databaseRepo domain.LogicalDatabaseRepository
	logger       *zap.SugaredLogger
}

func NewTableService(
	tableRepo domain.TableRepository,
	databaseRepo domain.LogicalDatabaseRepository,
	logger *zap.SugaredLogger,
) *TableService {
	return &TableService{
		tableRepo:    tableRepo,
		databaseRepo: databaseRepo,
		logger:       logger,
	}
}

type ColumnDefinition struct {
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Default    *string `json:"default"`
	References *string `json:"references"`
	Primary    bool    `json:"primary"`
}

type CreateTableRequest struct {
	TableName  string             `json:"table_name" binding:"required"`
	SchemaName string             `json:"schema_name" binding:"required"`
	DatabaseID uuid.UUID          `json:"database_id" binding:"required"`
	Columns    []ColumnDefinition `json:"columns" binding:"required"`
}

// CreateTableResult reports whether the table was physically created or only
// registered because it already existed in the backing store.
type CreateTableResult struct {
	Table    *models.TableMetadata `json:"table"`
	Imported bool                  `json:"imported"`
}

func (s *TableService) CreateTable(ctx context.Context, req *CreateTableRequest) (*CreateTableResult, error) {
	if err := s.validateCreateTableRequest(req); err != nil {
		return nil, err
	}

	db, err := s.databaseRepo.GetByID(ctx, req.DatabaseID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up logical database")
	}
	if db == nil {
		return nil, domain.ErrNotFound("logical database %s not found", req.DatabaseID)
	}

	table := &models.TableMetadata{
		Name:       req.TableName,
		SchemaName: req.SchemaName,
		DatabaseID: req.DatabaseID,
	}

	exists, err := s.tableRepo.PhysicalTableExists(ctx, req.SchemaName, req.TableName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to check whether table exists")
	}

	if exists {
		// Already materialized: register metadata only, the idempotent import
		// path.
		if err := s.tableRepo.RegisterMetadata(ctx, table); err != nil {
			return nil, wrapStorage(s.logger, err, "failed to register table metadata")
		}
		s.logger.Infow("Existing table registered", "schema", table.SchemaName, "table", table.Name)
		return &CreateTableResult{Table: table, Imported: true}, nil
	}

	createSQL := buildCreateTableSQL(req)
	if err := s.tableRepo.CreateWithMetadata(ctx, table, createSQL); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to create table")
	}

	s.logger.Infow("Table created", "schema", table.SchemaName, "table", table.Name)
	return &CreateTableResult{Table: table, Imported: false}, nil
}

func (s *TableService) ListTables(ctx context.Context) ([]models.TableMetadata, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list tables")
	}
	if tables == nil {
		tables = []models.TableMetadata{}
	}
	return tables, nil
}

func (s *TableService) ListTablesByDatabase(ctx context.Context, databaseName string) ([]models.TableMetadata, error) {
	tables, err := s.tableRepo.ListByDatabase(ctx, databaseName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list tables")
	}
	if tables == nil {
		tables = []models.TableMetadata{}
	}
	return tables, nil
}

// GetTableAttributes returns the physical columns of a registered table.
func (s *TableService) GetTableAttributes(ctx context.Context, tableID uuid.UUID) ([]models.Column, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up table")
	}
	if table == nil {
		return nil, domain.ErrNotFound("table %s not found", tableID)
	}

	columns, err := s.tableRepo.ListColumns(ctx, table.SchemaName, table.Name)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to read table columns")
	}
	if columns == nil {
		columns = []models.Column{}
	}
	return columns, nil
}

// DeleteTable cascades: dependent ER relationships, the physical table, and
// the metadata row go together or not at all.
func (s *TableService) DeleteTable(ctx context.Context, tableID uuid.UUID) (*models.TableMetadata, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up table")
	}
	if table == nil {
		return nil, domain.ErrNotFound("table %s not found", tableID)
	}

	if err := s.tableRepo.DeleteCascade(ctx, table); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to delete table")
	}

	s.logger.Infow("Table deleted", "schema", table.SchemaName, "table", table.Name)
	return table, nil
}

func (s *TableService) validateCreateTableRequest(req *CreateTableRequest) error {
	if !isValidIdentifier(req.SchemaName) {
		return domain.ErrValidation("invalid schema name: %q", req.SchemaName)
	}
	if !isValidIdentifier(req.TableName) {
		return domain.ErrValidation("invalid table name: %q", req.TableName)
	}
	if req.DatabaseID == uuid.Nil {
		return domain.ErrValidation("database_id is required")
	}
	if len(req.Columns) == 0 {
		return domain.ErrValidation("at least one column is required")
	}

	for i, col := range req.Columns {
		if !isValidIdentifier(col.Name) {
			return domain.ErrValidation("invalid column name at index %d: %q", i, col.Name)
		}
		if !isValidColumnType(col.Type) {
			return domain.ErrValidation("invalid column type for %s: %q", col.Name, col.Type)
		}
		if col.Default != nil && *col.Default != "" && !isValidDefault(*col.Default) {
			return domain.ErrValidation("invalid default for column %s", col.Name)
		}
		if col.References != nil && *col.References != "" && !isValidReference(*col.References) {
			return domain.ErrValidation("invalid reference for column %s", col.Name)
		}
	}

	return nil
}

// buildCreateTableSQL assembles the DDL from validated parts. At most one
// primary-key column is recognized; the first one wins.
func buildCreateTableSQL(req *CreateTableRequest) string {
	var colDefs []string
	var pkCol string

	for _, col := range req.Columns {
		line := fmt.Sprintf("%s %s",
			pgx.Identifier{col.Name}.Sanitize(),
			strings.ToUpper(strings.TrimSpace(col.Type)),
		)
		if col.Default != nil && *col.Default != "" {
			line += " DEFAULT " + strings.TrimSpace(*col.Default)
		}
		if col.References != nil && *col.References != "" {
			line += fmt.Sprintf(" REFERENCES %s.%s",
				pgx.Identifier{req.SchemaName}.Sanitize(),
				strings.TrimSpace(*col.References),
			)
		}
		colDefs = append(colDefs, line)

		if col.Primary && pkCol == "" {
			pkCol = col.Name
		}
	}

	if pkCol != "" {
		colDefs = append(colDefs, fmt.Sprintf("PRIMARY KEY (%s)", pgx.Identifier{pkCol}.Sanitize()))
	}

	return fmt.Sprintf("CREATE TABLE %s.%s (\n  %s\n)",
		pgx.Identifier{req.SchemaName}.Sanitize(),
		pgx.Identifier{req.TableName}.Sanitize(),
		strings.Join(colDefs, ",\n  "),
	)
}
