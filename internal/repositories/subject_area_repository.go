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

type SubjectAreaRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectAreaRepository(pool *pgxpool.Pool) *SubjectAreaRepository {
	return &SubjectAreaRepository{pool: pool}
}

func (r *SubjectAreaRepository) Create(ctx context.Context, area *models.SubjectArea) error {
	area.Prepare()

	query := `
		INSERT INTO subject_areas (id, name, lob_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, area.ID, area.Name, area.LOBID).Scan(&area.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("subject area %q already exists in this LOB", area.Name)
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound("LOB %s not found", area.LOBID)
		}
		return err
	}

	return nil
}

func (r *SubjectAreaRepository) GetByLOBAndName(ctx context.Context, lobID uuid.UUID, name string) (*models.SubjectArea, error) {
	query := `
		SELECT id, name, lob_id, created_at
		FROM subject_areas
		WHERE lob_id = $1 AND name = $2
	`

	var area models.SubjectArea
	err := r.pool.QueryRow(ctx, query, lobID, name).Scan(
		&area.ID,
		&area.Name,
		&area.LOBID,
		&area.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &area, nil
}
