package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

type ERRepository struct {
	pool *pgxpool.Pool
}

func NewERRepository(pool *pgxpool.Pool) *ERRepository {
	return &ERRepository{pool: pool}
}

const erColumns = `
	id, from_table_id, from_column, to_table_id, to_column,
	cardinality, relationship_type, er_entity_id, created_at
`

func (r *ERRepository) Create(ctx context.Context, rel *models.ERRelationship) error {
	rel.Prepare()

	query := `
		INSERT INTO er_relationships
			(id, from_table_id, from_column, to_table_id, to_column,
			 cardinality, relationship_type, er_entity_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		rel.ID,
		rel.FromTableID,
		rel.FromColumn,
		rel.ToTableID,
		rel.ToColumn,
		rel.Cardinality,
		rel.RelationshipType,
		rel.EREntityID,
	).Scan(&rel.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("an identical relationship already exists")
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound("referenced table or ER entity not found")
		}
		return err
	}

	return nil
}

func (r *ERRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ERRelationship, error) {
	query := `SELECT ` + erColumns + ` FROM er_relationships WHERE id = $1`

	rel, err := scanRelationship(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return rel, nil
}

func (r *ERRepository) ListByDatabase(ctx context.Context, databaseName string) ([]models.ERRelationship, error) {
	query := `
		SELECT DISTINCT r.id, r.from_table_id, r.from_column, r.to_table_id, r.to_column,
			r.cardinality, r.relationship_type, r.er_entity_id, r.created_at
		FROM er_relationships r
		JOIN tables_metadata t ON t.id = r.from_table_id OR t.id = r.to_table_id
		JOIN logical_databases db ON db.id = t.database_id
		WHERE db.name = $1
		ORDER BY r.created_at
	`

	return r.list(ctx, query, databaseName)
}

func (r *ERRepository) ListByTable(ctx context.Context, tableID uuid.UUID) ([]models.ERRelationship, error) {
	query := `
		SELECT ` + erColumns + `
		FROM er_relationships
		WHERE from_table_id = $1 OR to_table_id = $1
		ORDER BY created_at
	`

	return r.list(ctx, query, tableID)
}

func (r *ERRepository) ListByEntity(ctx context.Context, entityID uuid.UUID) ([]models.ERRelationship, error) {
	query := `
		SELECT ` + erColumns + `
		FROM er_relationships
		WHERE er_entity_id = $1
		ORDER BY created_at
	`

	return r.list(ctx, query, entityID)
}

func (r *ERRepository) list(ctx context.Context, query string, arg interface{}) ([]models.ERRelationship, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rels []models.ERRelationship
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, err
		}
		rels = append(rels, *rel)
	}

	return rels, rows.Err()
}

func (r *ERRepository) Update(ctx context.Context, rel *models.ERRelationship) error {
	query := `
		UPDATE er_relationships SET
			from_table_id = $2, from_column = $3, to_table_id = $4, to_column = $5,
			cardinality = $6, relationship_type = $7, er_entity_id = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		rel.ID,
		rel.FromTableID,
		rel.FromColumn,
		rel.ToTableID,
		rel.ToColumn,
		rel.Cardinality,
		rel.RelationshipType,
		rel.EREntityID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("an identical relationship already exists")
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound("referenced table or ER entity not found")
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound("relationship %s not found", rel.ID)
	}

	return nil
}

func (r *ERRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM er_relationships WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound("relationship %s not found", id)
	}

	return nil
}

func scanRelationship(row pgx.Row) (*models.ERRelationship, error) {
	var rel models.ERRelationship
	err := row.Scan(
		&rel.ID,
		&rel.FromTableID,
		&rel.FromColumn,
		&rel.ToTableID,
		&rel.ToColumn,
		&rel.Cardinality,
		&rel.RelationshipType,
		&rel.EREntityID,
		&rel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rel, nil
}
