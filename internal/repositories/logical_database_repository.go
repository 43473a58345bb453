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

type LogicalDatabaseRepository struct {
	pool *pgxpool.Pool
}

func NewLogicalDatabaseRepository(pool *pgxpool.Pool) *LogicalDatabaseRepository {
	return &LogicalDatabaseRepository{pool: pool}
}

// CreateAndProvision inserts the database row, links it to the subject area,
// and creates the physical schema. All three statements share one transaction
// so a provisioning failure leaves no orphaned rows.
func (r *LogicalDatabaseRepository) CreateAndProvision(ctx context.Context, db *models.LogicalDatabase, subjectAreaID uuid.UUID) error {
	db.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertDB := `
		INSERT INTO logical_databases (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`
	if err := tx.QueryRow(ctx, insertDB, db.ID, db.Name).Scan(&db.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("logical database %q already exists", db.Name)
		}
		return err
	}

	insertAssoc := `
		INSERT INTO subject_area_logical_databases (subject_area_id, logical_database_id)
		VALUES ($1, $2)
	`
	if _, err := tx.Exec(ctx, insertAssoc, subjectAreaID, db.ID); err != nil {
		return err
	}

	schema := pgx.Identifier{db.Name}.Sanitize()
	if _, err := tx.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)); err != nil {
		return fmt.Errorf("schema provisioning failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *LogicalDatabaseRepository) Associate(ctx context.Context, databaseID, subjectAreaID uuid.UUID) error {
	query := `
		INSERT INTO subject_area_logical_databases (subject_area_id, logical_database_id)
		VALUES ($1, $2)
	`

	_, err := r.pool.Exec(ctx, query, subjectAreaID, databaseID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("logical database is already linked to this subject area")
		}
		return err
	}

	return nil
}

func (r *LogicalDatabaseRepository) GetByName(ctx context.Context, name string) (*models.LogicalDatabase, error) {
	query := `SELECT id, name, created_at FROM logical_databases WHERE name = $1`
	return r.get(ctx, query, name)
}

func (r *LogicalDatabaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LogicalDatabase, error) {
	query := `SELECT id, name, created_at FROM logical_databases WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *LogicalDatabaseRepository) get(ctx context.Context, query string, arg interface{}) (*models.LogicalDatabase, error) {
	var db models.LogicalDatabase
	err := r.pool.QueryRow(ctx, query, arg).Scan(&db.ID, &db.Name, &db.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &db, nil
}

func (r *LogicalDatabaseRepository) List(ctx context.Context) ([]models.LogicalDatabase, error) {
	query := `SELECT id, name, created_at FROM logical_databases ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dbs []models.LogicalDatabase
	for rows.Next() {
		var db models.LogicalDatabase
		if err := rows.Scan(&db.ID, &db.Name, &db.CreatedAt); err != nil {
			return nil, err
		}
		dbs = append(dbs, db)
	}

	return dbs, rows.Err()
}
