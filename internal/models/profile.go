package models

import (
	"time"

	"github.com/google/uuid"
)

// TableProfile is a cached profiling report for one physical table. The
// sample hash decides whether the stored report is still fresh.
type TableProfile struct {
	ID          uuid.UUID `json:"id"`
	SchemaName  string    `json:"schema_name"`
	TableName   string    `json:"table_name"`
	SampleHash  string    `json:"-"`
	ReportHTML  string    `json:"report_html"`
	RowCount    int64     `json:"row_count"`
	ColumnCount int       `json:"column_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

func (p *TableProfile) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

// ProfileResult is what the profiling endpoint returns.
type ProfileResult struct {
	HTML        string    `json:"html"`
	IsCached    bool      `json:"is_cached"`
	GeneratedAt time.Time `json:"generated_at"`
	RowCount    int64     `json:"row_count"`
	ColumnCount int       `json:"column_count"`
}
