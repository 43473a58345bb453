package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/models"
)

// profileSampleLimit bounds the rows hashed for freshness detection.
const profileSampleLimit = 100

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetByTable(ctx context.Context, schema, table string) (*models.TableProfile, error) {
	query := `
		SELECT id, schema_name, table_name, sample_hash, report_html,
			row_count, column_count, generated_at
		FROM table_profiles
		WHERE schema_name = $1 AND table_name = $2
	`

	var profile models.TableProfile
	err := r.pool.QueryRow(ctx, query, schema, table).Scan(
		&profile.ID,
		&profile.SchemaName,
		&profile.TableName,
		&profile.SampleHash,
		&profile.ReportHTML,
		&profile.RowCount,
		&profile.ColumnCount,
		&profile.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.TableProfile) error {
	profile.Prepare()

	query := `
		INSERT INTO table_profiles
			(id, schema_name, table_name, sample_hash, report_html, row_count, column_count, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (schema_name, table_name) DO UPDATE SET
			sample_hash = EXCLUDED.sample_hash,
			report_html = EXCLUDED.report_html,
			row_count = EXCLUDED.row_count,
			column_count = EXCLUDED.column_count,
			generated_at = NOW()
		RETURNING id, generated_at
	`

	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.SchemaName,
		profile.TableName,
		profile.SampleHash,
		profile.ReportHTML,
		profile.RowCount,
		profile.ColumnCount,
	).Scan(&profile.ID, &profile.GeneratedAt)
}

// SampleHash hashes a bounded sample of the physical table. Identical samples
// mean the cached report is considered fresh.
func (r *ProfileRepository) SampleHash(ctx context.Context, schema, table string) (string, error) {
	query := fmt.Sprintf("SELECT * FROM %s.%s LIMIT %d",
		pgx.Identifier{schema}.Sanitize(),
		pgx.Identifier{table}.Sanitize(),
		profileSampleLimit,
	)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	hash := sha256.New()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return "", err
		}
		for _, v := range values {
			fmt.Fprintf(hash, "%v|", v)
		}
		hash.Write([]byte{'\n'})
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
