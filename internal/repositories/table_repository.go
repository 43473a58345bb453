package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

type TableRepository struct {
	pool *pgxpool.Pool
}

func NewTableRepository(pool *pgxpool.Pool) *TableRepository {
	return &TableRepository{pool: pool}
}

func (r *TableRepository) PhysicalTableExists(ctx context.Context, schema, table string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = $1 AND table_name = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, schema, table).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// CreateWithMetadata runs the caller-built CREATE TABLE statement and inserts
// the metadata row in one transaction. The statement is assembled by the
// service from allow-listed identifiers and types.
func (r *TableRepository) CreateWithMetadata(ctx context.Context, table *models.TableMetadata, createSQL string) error {
	table.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if err := r.insertMetadata(ctx, tx, table); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TableRepository) RegisterMetadata(ctx context.Context, table *models.TableMetadata) error {
	table.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.insertMetadata(ctx, tx, table); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TableRepository) insertMetadata(ctx context.Context, tx pgx.Tx, table *models.TableMetadata) error {
	query := `
		INSERT INTO tables_metadata (id, name, schema_name, database_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := tx.QueryRow(ctx, query,
		table.ID,
		table.Name,
		table.SchemaName,
		table.DatabaseID,
	).Scan(&table.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("table %q is already registered in this database", table.Name)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound("logical database %s not found", table.DatabaseID)
		}
		return err
	}

	return nil
}

func (r *TableRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TableMetadata, error) {
	query := `
		SELECT id, name, schema_name, database_id, created_at
		FROM tables_metadata WHERE id = $1
	`

	var table models.TableMetadata
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&table.ID,
		&table.Name,
		&table.SchemaName,
		&table.DatabaseID,
		&table.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &table, nil
}

func (r *TableRepository) List(ctx context.Context) ([]models.TableMetadata, error) {
	query := `
		SELECT id, name, schema_name, database_id, created_at
		FROM tables_metadata
		ORDER BY schema_name, name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTables(rows)
}

func (r *TableRepository) ListByDatabase(ctx context.Context, databaseName string) ([]models.TableMetadata, error) {
	query := `
		SELECT t.id, t.name, t.schema_name, t.database_id, t.created_at
		FROM tables_metadata t
		JOIN logical_databases db ON db.id = t.database_id
		WHERE db.name = $1
		ORDER BY t.schema_name, t.name
	`

	rows, err := r.pool.Query(ctx, query, databaseName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTables(rows)
}

func scanTables(rows pgx.Rows) ([]models.TableMetadata, error) {
	var tables []models.TableMetadata
	for rows.Next() {
		var table models.TableMetadata
		err := rows.Scan(
			&table.ID,
			&table.Name,
			&table.SchemaName,
			&table.DatabaseID,
			&table.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

// ListColumns returns the physical columns of a table from information_schema.
func (r *TableRepository) ListColumns(ctx context.Context, schema, table string) ([]models.Column, error) {
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := r.pool.Query(ctx, query, schema, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var col models.Column
		var nullable string
		if err := rows.Scan(&col.Name, &col.DataType, &nullable); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"
		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// DeleteCascade removes the table's ER relationships, drops the physical
// table, and deletes the metadata row. One transaction covers all three so a
// failed drop does not commit the relationship deletions.
func (r *TableRepository) DeleteCascade(ctx context.Context, table *models.TableMetadata) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	deleteRels := `
		DELETE FROM er_relationships
		WHERE from_table_id = $1 OR to_table_id = $1
	`
	if _, err := tx.Exec(ctx, deleteRels, table.ID); err != nil {
		return err
	}

	drop := fmt.Sprintf("DROP TABLE IF EXISTS %s.%s",
		pgx.Identifier{table.SchemaName}.Sanitize(),
		pgx.Identifier{table.Name}.Sanitize(),
	)
	if _, err := tx.Exec(ctx, drop); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}

	deleteMeta := `DELETE FROM tables_metadata WHERE id = $1`
	result, err := tx.Exec(ctx, deleteMeta, table.ID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound("table %s not found", table.ID)
	}

	return tx.Commit(ctx)
}
