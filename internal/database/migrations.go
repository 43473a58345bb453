package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RunMigrations applies the catalog schema in order. Every statement is
// idempotent so the server can run them on each start.
func RunMigrations(pool *pgxpool.Pool, logger *zap.SugaredLogger) error {
	ctx := context.Background()

	migrations := []string{
		createLOBsTable,
		createSubjectAreasTable,
		createLogicalDatabasesTable,
		createSubjectAreaLogicalDatabasesTable,
		createTablesMetadataTable,
		createEREntitiesTable,
		createERRelationshipsTable,
		createTableProfilesTable,
	}

	for i, migration := range migrations {
		logger.Infof("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("All migrations completed successfully")
	return nil
}

const createLOBsTable = `
CREATE TABLE IF NOT EXISTS lobs (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_lobs_name ON lobs(name);
`

const createSubjectAreasTable = `
CREATE TABLE IF NOT EXISTS subject_areas (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  lob_id UUID NOT NULL REFERENCES lobs(id),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (lob_id, name)
);

CREATE INDEX IF NOT EXISTS idx_subject_areas_lob_id ON subject_areas(lob_id);
`

const createLogicalDatabasesTable = `
CREATE TABLE IF NOT EXISTS logical_databases (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL UNIQUE,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createSubjectAreaLogicalDatabasesTable = `
CREATE TABLE IF NOT EXISTS subject_area_logical_databases (
  subject_area_id UUID NOT NULL REFERENCES subject_areas(id),
  logical_database_id UUID NOT NULL REFERENCES logical_databases(id),
  PRIMARY KEY (subject_area_id, logical_database_id)
);

CREATE INDEX IF NOT EXISTS idx_sald_logical_database_id
  ON subject_area_logical_databases(logical_database_id);
`

const createTablesMetadataTable = `
CREATE TABLE IF NOT EXISTS tables_metadata (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  schema_name TEXT NOT NULL,
  database_id UUID NOT NULL REFERENCES logical_databases(id),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (database_id, schema_name, name)
);

CREATE INDEX IF NOT EXISTS idx_tables_metadata_database_id ON tables_metadata(database_id);
`

const createEREntitiesTable = `
CREATE TABLE IF NOT EXISTS er_entities (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name TEXT NOT NULL,
  lob_id UUID NOT NULL REFERENCES lobs(id),
  description TEXT,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (lob_id, name)
);

CREATE INDEX IF NOT EXISTS idx_er_entities_lob_id ON er_entities(lob_id);
`

const createERRelationshipsTable = `
CREATE TABLE IF NOT EXISTS er_relationships (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  from_table_id UUID NOT NULL REFERENCES tables_metadata(id),
  from_column TEXT NOT NULL,
  to_table_id UUID NOT NULL REFERENCES tables_metadata(id),
  to_column TEXT NOT NULL,
  cardinality TEXT NOT NULL,
  relationship_type TEXT,
  er_entity_id UUID REFERENCES er_entities(id),
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE NULLS NOT DISTINCT (from_table_id, from_column, to_table_id, to_column, er_entity_id)
);

CREATE INDEX IF NOT EXISTS idx_er_relationships_from_table_id ON er_relationships(from_table_id);
CREATE INDEX IF NOT EXISTS idx_er_relationships_to_table_id ON er_relationships(to_table_id);
CREATE INDEX IF NOT EXISTS idx_er_relationships_er_entity_id ON er_relationships(er_entity_id);
`

const createTableProfilesTable = `
CREATE TABLE IF NOT EXISTS table_profiles (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  schema_name TEXT NOT NULL,
  table_name TEXT NOT NULL,
  sample_hash TEXT NOT NULL,
  report_html TEXT NOT NULL,
  row_count BIGINT NOT NULL DEFAULT 0,
  column_count INT NOT NULL DEFAULT 0,
  generated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
  UNIQUE (schema_name, table_name)
);
`
