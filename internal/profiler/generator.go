// Package profiler implements the report generator behind the profiling
// endpoint. The catalog core only consumes the domain.ReportGenerator
// contract; everything in here is replaceable.
package profiler

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"metacatalog/internal/models"
)

// Generator builds a basic statistics report for one physical table.
type Generator struct {
	pool *pgxpool.Pool
}

func NewGenerator(pool *pgxpool.Pool) *Generator {
	return &Generator{pool: pool}
}

type columnStat struct {
	Column        models.Column
	DistinctCount int64
}

// Generate collects row/column statistics and renders them as HTML.
func (g *Generator) Generate(ctx context.Context, schema, table string) (string, int64, int, error) {
	qualified := fmt.Sprintf("%s.%s",
		pgx.Identifier{schema}.Sanitize(),
		pgx.Identifier{table}.Sanitize(),
	)

	var rowCount int64
	if err := g.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+qualified).Scan(&rowCount); err != nil {
		return "", 0, 0, fmt.Errorf("failed to count rows: %w", err)
	}

	columns, err := g.listColumns(ctx, schema, table)
	if err != nil {
		return "", 0, 0, err
	}

	stats := make([]columnStat, 0, len(columns))
	for _, col := range columns {
		stat := columnStat{Column: col}
		distinctQuery := fmt.Sprintf("SELECT COUNT(DISTINCT %s) FROM %s",
			pgx.Identifier{col.Name}.Sanitize(), qualified)
		if err := g.pool.QueryRow(ctx, distinctQuery).Scan(&stat.DistinctCount); err != nil {
			return "", 0, 0, fmt.Errorf("failed to profile column %s: %w", col.Name, err)
		}
		stats = append(stats, stat)
	}

	var sb strings.Builder
	if err := reportPage(schema, table, rowCount, stats).Render(&sb); err != nil {
		return "", 0, 0, fmt.Errorf("failed to render report: %w", err)
	}

	return sb.String(), rowCount, len(columns), nil
}

func (g *Generator) listColumns(ctx context.Context, schema, table string) ([]models.Column, error) {
	query := `
		SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := g.pool.Query(ctx, query, schema, table)
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
