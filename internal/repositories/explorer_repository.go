package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/models"
)

// ExplorerRepository serves the read-only hierarchy and search projections.
type ExplorerRepository struct {
	pool *pgxpool.Pool
}

func NewExplorerRepository(pool *pgxpool.Pool) *ExplorerRepository {
	return &ExplorerRepository{pool: pool}
}

// HierarchyRows returns the full catalog as one wide outer join, ordered so
// callers can group rows by walking them in join order.
func (r *ExplorerRepository) HierarchyRows(ctx context.Context) ([]models.HierarchyRow, error) {
	query := `
		SELECT l.id AS lob_id, l.name AS lob_name,
			sa.id AS subject_area_id, sa.name AS subject_area_name,
			db.id AS db_id, db.name AS db_name,
			t.id AS table_id, t.name AS table_name
		FROM lobs l
		LEFT JOIN subject_areas sa ON sa.lob_id = l.id
		LEFT JOIN subject_area_logical_databases sald ON sald.subject_area_id = sa.id
		LEFT JOIN logical_databases db ON db.id = sald.logical_database_id
		LEFT JOIN tables_metadata t ON t.database_id = db.id
		ORDER BY l.name, sa.name, db.name, t.name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.HierarchyRow
	for rows.Next() {
		var row models.HierarchyRow
		err := rows.Scan(
			&row.LOBID,
			&row.LOBName,
			&row.SubjectAreaID,
			&row.SubjectAreaName,
			&row.DatabaseID,
			&row.DatabaseName,
			&row.TableID,
			&row.TableName,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// Search matches the query as a case-insensitive substring against LOB,
// subject area, logical database, and table names. Ancestor names are
// resolved where the joins allow; databases linked to several subject areas
// report one of them.
func (r *ExplorerRepository) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	stmt := `
		SELECT * FROM (
			(SELECT 'lob' AS type, l.id, l.name,
				NULL::text AS lob_name, NULL::text AS subject_area_name, NULL::text AS database_name
			FROM lobs l
			WHERE l.name ILIKE $1)
		UNION ALL
			(SELECT 'subject_area', sa.id, sa.name, l.name, NULL, NULL
			FROM subject_areas sa
			JOIN lobs l ON l.id = sa.lob_id
			WHERE sa.name ILIKE $1)
		UNION ALL
			(SELECT DISTINCT ON (db.id) 'database', db.id, db.name, l.name, sa.name, NULL
			FROM logical_databases db
			LEFT JOIN subject_area_logical_databases sald ON sald.logical_database_id = db.id
			LEFT JOIN subject_areas sa ON sa.id = sald.subject_area_id
			LEFT JOIN lobs l ON l.id = sa.lob_id
			WHERE db.name ILIKE $1
			ORDER BY db.id)
		UNION ALL
			(SELECT DISTINCT ON (t.id) 'table', t.id, t.name, l.name, sa.name, db.name
			FROM tables_metadata t
			JOIN logical_databases db ON db.id = t.database_id
			LEFT JOIN subject_area_logical_databases sald ON sald.logical_database_id = db.id
			LEFT JOIN subject_areas sa ON sa.id = sald.subject_area_id
			LEFT JOIN lobs l ON l.id = sa.lob_id
			WHERE t.name ILIKE $1
			ORDER BY t.id)
		) matches
		ORDER BY type, name
	`

	rows, err := r.pool.Query(ctx, stmt, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.SearchResult
	for rows.Next() {
		var match models.SearchResult
		err := rows.Scan(
			&match.Type,
			&match.ID,
			&match.Name,
			&match.LOBName,
			&match.SubjectAreaName,
			&match.DatabaseName,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, match)
	}

	return results, rows.Err()
}
