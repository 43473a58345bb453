package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

type EREntityRepository struct {
	pool *pgxpool.Pool
}

func NewEREntityRepository(pool *pgxpool.Pool) *EREntityRepository {
	return &EREntityRepository{pool: pool}
}

func (r *EREntityRepository) Create(ctx context.Context, entity *models.EREntity) error {
	entity.Prepare()

	query := `
		INSERT INTO er_entities (id, name, lob_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.LOBID,
		entity.Description,
	).Scan(&entity.CreatedAt, &entity.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("ER diagram %q already exists in this LOB", entity.Name)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound("LOB %s not found", entity.LOBID)
		}
		return err
	}

	return nil
}

func (r *EREntityRepository) ListByLOB(ctx context.Context, lobID uuid.UUID) ([]models.EREntity, error) {
	query := `
		SELECT id, name, lob_id, description, created_at, updated_at
		FROM er_entities
		WHERE lob_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, lobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []models.EREntity
	for rows.Next() {
		var entity models.EREntity
		err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.LOBID,
			&entity.Description,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, rows.Err()
}
