package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

type LOBRepository struct {
	pool *pgxpool.Pool
}

func NewLOBRepository(pool *pgxpool.Pool) *LOBRepository {
	return &LOBRepository{pool: pool}
}

func (r *LOBRepository) Create(ctx context.Context, lob *models.LOB) error {
	lob.Prepare()

	query := `
		INSERT INTO lobs (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, lob.ID, lob.Name).Scan(&lob.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict("LOB %q already exists", lob.Name)
		}
		return err
	}

	return nil
}

func (r *LOBRepository) GetByName(ctx context.Context, name string) (*models.LOB, error) {
	query := `SELECT id, name, created_at FROM lobs WHERE name = $1`

	var lob models.LOB
	err := r.pool.QueryRow(ctx, query, name).Scan(&lob.ID, &lob.Name, &lob.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &lob, nil
}

func (r *LOBRepository) List(ctx context.Context) ([]models.LOB, error) {
	query := `SELECT id, name, created_at FROM lobs ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lobs []models.LOB
	for rows.Next() {
		var lob models.LOB
		if err := rows.Scan(&lob.ID, &lob.Name, &lob.CreatedAt); err != nil {
			return nil, err
		}
		lobs = append(lobs, lob)
	}

	return lobs, rows.Err()
}
