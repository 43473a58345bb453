package handlers

import (
	"context"

	"github.com/google/uuid"

	"metacatalog/internal/models"
)

// Minimal in-memory repositories for exercising handlers end to end through
// the real service layer.

type stubLOBRepo struct {
	lobs map[string]*models.LOB
}

func newStubLOBRepo() *stubLOBRepo {
	return &stubLOBRepo{lobs: map[string]*models.LOB{}}
}

func (s *stubLOBRepo) Create(_ context.Context, lob *models.LOB) error {
	lob.Prepare()
	s.lobs[lob.Name] = lob
	return nil
}

func (s *stubLOBRepo) GetByName(_ context.Context, name string) (*models.LOB, error) {
	return s.lobs[name], nil
}

func (s *stubLOBRepo) List(_ context.Context) ([]models.LOB, error) {
	out := []models.LOB{}
	for _, lob := range s.lobs {
		out = append(out, *lob)
	}
	return out, nil
}

type stubSubjectAreaRepo struct {
	areas []*models.SubjectArea
}

func (s *stubSubjectAreaRepo) Create(_ context.Context, area *models.SubjectArea) error {
	area.Prepare()
	s.areas = append(s.areas, area)
	return nil
}

func (s *stubSubjectAreaRepo) GetByLOBAndName(_ context.Context, lobID uuid.UUID, name string) (*models.SubjectArea, error) {
	for _, area := range s.areas {
		if area.LOBID == lobID && area.Name == name {
			return area, nil
		}
	}
	return nil, nil
}

type stubDatabaseRepo struct {
	databases map[string]*models.LogicalDatabase
}

func newStubDatabaseRepo() *stubDatabaseRepo {
	return &stubDatabaseRepo{databases: map[string]*models.LogicalDatabase{}}
}

func (s *stubDatabaseRepo) CreateAndProvision(_ context.Context, db *models.LogicalDatabase, _ uuid.UUID) error {
	db.Prepare()
	s.databases[db.Name] = db
	return nil
}

func (s *stubDatabaseRepo) Associate(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func (s *stubDatabaseRepo) GetByName(_ context.Context, name string) (*models.LogicalDatabase, error) {
	return s.databases[name], nil
}

func (s *stubDatabaseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.LogicalDatabase, error) {
	for _, db := range s.databases {
		if db.ID == id {
			return db, nil
		}
	}
	return nil, nil
}

func (s *stubDatabaseRepo) List(_ context.Context) ([]models.LogicalDatabase, error) {
	out := []models.LogicalDatabase{}
	for _, db := range s.databases {
		out = append(out, *db)
	}
	return out, nil
}

type stubTableRepo struct {
	tables map[uuid.UUID]*models.TableMetadata
}

func newStubTableRepo() *stubTableRepo {
	return &stubTableRepo{tables: map[uuid.UUID]*models.TableMetadata{}}
}

func (s *stubTableRepo) PhysicalTableExists(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (s *stubTableRepo) CreateWithMetadata(_ context.Context, table *models.TableMetadata, _ string) error {
	table.Prepare()
	s.tables[table.ID] = table
	return nil
}

func (s *stubTableRepo) RegisterMetadata(_ context.Context, table *models.TableMetadata) error {
	table.Prepare()
	s.tables[table.ID] = table
	return nil
}

func (s *stubTableRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TableMetadata, error) {
	return s.tables[id], nil
}

func (s *stubTableRepo) List(_ context.Context) ([]models.TableMetadata, error) {
	out := []models.TableMetadata{}
	for _, t := range s.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (s *stubTableRepo) ListByDatabase(_ context.Context, _ string) ([]models.TableMetadata, error) {
	return nil, nil
}

func (s *stubTableRepo) ListColumns(_ context.Context, _, _ string) ([]models.Column, error) {
	return nil, nil
}

func (s *stubTableRepo) DeleteCascade(_ context.Context, table *models.TableMetadata) error {
	delete(s.tables, table.ID)
	return nil
}

type stubERRepo struct {
	rels       map[uuid.UUID]*models.ERRelationship
	byDatabase map[string][]models.ERRelationship
}

func newStubERRepo() *stubERRepo {
	return &stubERRepo{
		rels:       map[uuid.UUID]*models.ERRelationship{},
		byDatabase: map[string][]models.ERRelationship{},
	}
}

func (s *stubERRepo) Create(_ context.Context, rel *models.ERRelationship) error {
	rel.Prepare()
	s.rels[rel.ID] = rel
	return nil
}

func (s *stubERRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ERRelationship, error) {
	return s.rels[id], nil
}

func (s *stubERRepo) ListByDatabase(_ context.Context, databaseName string) ([]models.ERRelationship, error) {
	return s.byDatabase[databaseName], nil
}

func (s *stubERRepo) ListByTable(_ context.Context, _ uuid.UUID) ([]models.ERRelationship, error) {
	return nil, nil
}

func (s *stubERRepo) ListByEntity(_ context.Context, _ uuid.UUID) ([]models.ERRelationship, error) {
	return nil, nil
}

func (s *stubERRepo) Update(_ context.Context, rel *models.ERRelationship) error {
	s.rels[rel.ID] = rel
	return nil
}

func (s *stubERRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.rels, id)
	return nil
}

type stubEREntityRepo struct {
	entities []*models.EREntity
}

func (s *stubEREntityRepo) Create(_ context.Context, entity *models.EREntity) error {
	entity.Prepare()
	s.entities = append(s.entities, entity)
	return nil
}

func (s *stubEREntityRepo) ListByLOB(_ context.Context, lobID uuid.UUID) ([]models.EREntity, error) {
	var out []models.EREntity
	for _, e := range s.entities {
		if e.LOBID == lobID {
			out = append(out, *e)
		}
	}
	return out, nil
}
