package services

import (
	"context"

	"github.com/google/uuid"

	"metacatalog/internal/models"
)

// In-memory repository fakes backing the service tests. Each embeds enough
// state for the scenarios; unneeded methods return zero values.

type fakeLOBRepo struct {
	lobs      map[string]*models.LOB
	createErr error
}

func newFakeLOBRepo() *fakeLOBRepo {
	return &fakeLOBRepo{lobs: map[string]*models.LOB{}}
}

func (f *fakeLOBRepo) Create(_ context.Context, lob *models.LOB) error {
	if f.createErr != nil {
		return f.createErr
	}
	lob.Prepare()
	f.lobs[lob.Name] = lob
	return nil
}

func (f *fakeLOBRepo) GetByName(_ context.Context, name string) (*models.LOB, error) {
	return f.lobs[name], nil
}

func (f *fakeLOBRepo) List(_ context.Context) ([]models.LOB, error) {
	var out []models.LOB
	for _, lob := range f.lobs {
		out = append(out, *lob)
	}
	return out, nil
}

type fakeSubjectAreaRepo struct {
	areas []*models.SubjectArea
}

func (f *fakeSubjectAreaRepo) Create(_ context.Context, area *models.SubjectArea) error {
	area.Prepare()
	f.areas = append(f.areas, area)
	return nil
}

func (f *fakeSubjectAreaRepo) GetByLOBAndName(_ context.Context, lobID uuid.UUID, name string) (*models.SubjectArea, error) {
	for _, area := range f.areas {
		if area.LOBID == lobID && area.Name == name {
			return area, nil
		}
	}
	return nil, nil
}

type fakeDatabaseRepo struct {
	databases    map[string]*models.LogicalDatabase
	associations map[uuid.UUID][]uuid.UUID
	provisionErr error
	associateErr error
}

func newFakeDatabaseRepo() *fakeDatabaseRepo {
	return &fakeDatabaseRepo{
		databases:    map[string]*models.LogicalDatabase{},
		associations: map[uuid.UUID][]uuid.UUID{},
	}
}

func (f *fakeDatabaseRepo) CreateAndProvision(_ context.Context, db *models.LogicalDatabase, subjectAreaID uuid.UUID) error {
	if f.provisionErr != nil {
		return f.provisionErr
	}
	db.Prepare()
	f.databases[db.Name] = db
	f.associations[db.ID] = append(f.associations[db.ID], subjectAreaID)
	return nil
}

func (f *fakeDatabaseRepo) Associate(_ context.Context, databaseID, subjectAreaID uuid.UUID) error {
	if f.associateErr != nil {
		return f.associateErr
	}
	f.associations[databaseID] = append(f.associations[databaseID], subjectAreaID)
	return nil
}

func (f *fakeDatabaseRepo) GetByName(_ context.Context, name string) (*models.LogicalDatabase, error) {
	return f.databases[name], nil
}

func (f *fakeDatabaseRepo) GetByID(_ context.Context, id uuid.UUID) (*models.LogicalDatabase, error) {
	for _, db := range f.databases {
		if db.ID == id {
			return db, nil
		}
	}
	return nil, nil
}

func (f *fakeDatabaseRepo) List(_ context.Context) ([]models.LogicalDatabase, error) {
	var out []models.LogicalDatabase
	for _, db := range f.databases {
		out = append(out, *db)
	}
	return out, nil
}

type fakeTableRepo struct {
	tables        map[uuid.UUID]*models.TableMetadata
	physical      map[string]bool
	columns       map[string][]models.Column
	createdSQL    []string
	registered    []*models.TableMetadata
	deleted       []*models.TableMetadata
	existsErr     error
	createErr     error
	registerErr   error
	deleteCascErr error
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{
		tables:   map[uuid.UUID]*models.TableMetadata{},
		physical: map[string]bool{},
		columns:  map[string][]models.Column{},
	}
}

func physicalKey(schema, table string) string {
	return schema + "." + table
}

func (f *fakeTableRepo) PhysicalTableExists(_ context.Context, schema, table string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.physical[physicalKey(schema, table)], nil
}

func (f *fakeTableRepo) CreateWithMetadata(_ context.Context, table *models.TableMetadata, createSQL string) error {
	if f.createErr != nil {
		return f.createErr
	}
	table.Prepare()
	f.tables[table.ID] = table
	f.physical[physicalKey(table.SchemaName, table.Name)] = true
	f.createdSQL = append(f.createdSQL, createSQL)
	return nil
}

func (f *fakeTableRepo) RegisterMetadata(_ context.Context, table *models.TableMetadata) error {
	if f.registerErr != nil {
		return f.registerErr
	}
	table.Prepare()
	f.tables[table.ID] = table
	f.registered = append(f.registered, table)
	return nil
}

func (f *fakeTableRepo) GetByID(_ context.Context, id uuid.UUID) (*models.TableMetadata, error) {
	return f.tables[id], nil
}

func (f *fakeTableRepo) List(_ context.Context) ([]models.TableMetadata, error) {
	var out []models.TableMetadata
	for _, t := range f.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTableRepo) ListByDatabase(_ context.Context, _ string) ([]models.TableMetadata, error) {
	return nil, nil
}

func (f *fakeTableRepo) ListColumns(_ context.Context, schema, table string) ([]models.Column, error) {
	return f.columns[physicalKey(schema, table)], nil
}

func (f *fakeTableRepo) DeleteCascade(_ context.Context, table *models.TableMetadata) error {
	if f.deleteCascErr != nil {
		return f.deleteCascErr
	}
	delete(f.tables, table.ID)
	delete(f.physical, physicalKey(table.SchemaName, table.Name))
	f.deleted = append(f.deleted, table)
	return nil
}

type fakeERRepo struct {
	rels      map[uuid.UUID]*models.ERRelationship
	createErr error
	updateErr error
	deleteErr error
}

func newFakeERRepo() *fakeERRepo {
	return &fakeERRepo{rels: map[uuid.UUID]*models.ERRelationship{}}
}

func (f *fakeERRepo) Create(_ context.Context, rel *models.ERRelationship) error {
	if f.createErr != nil {
		return f.createErr
	}
	rel.Prepare()
	f.rels[rel.ID] = rel
	return nil
}

func (f *fakeERRepo) GetByID(_ context.Context, id uuid.UUID) (*models.ERRelationship, error) {
	return f.rels[id], nil
}

func (f *fakeERRepo) ListByDatabase(_ context.Context, _ string) ([]models.ERRelationship, error) {
	return nil, nil
}

func (f *fakeERRepo) ListByTable(_ context.Context, tableID uuid.UUID) ([]models.ERRelationship, error) {
	var out []models.ERRelationship
	for _, rel := range f.rels {
		if rel.FromTableID == tableID || rel.ToTableID == tableID {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (f *fakeERRepo) ListByEntity(_ context.Context, entityID uuid.UUID) ([]models.ERRelationship, error) {
	var out []models.ERRelationship
	for _, rel := range f.rels {
		if rel.EREntityID != nil && *rel.EREntityID == entityID {
			out = append(out, *rel)
		}
	}
	return out, nil
}

func (f *fakeERRepo) Update(_ context.Context, rel *models.ERRelationship) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rels[rel.ID] = rel
	return nil
}

func (f *fakeERRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rels, id)
	return nil
}

type fakeEREntityRepo struct {
	entities  []*models.EREntity
	createErr error
}

func (f *fakeEREntityRepo) Create(_ context.Context, entity *models.EREntity) error {
	if f.createErr != nil {
		return f.createErr
	}
	entity.Prepare()
	f.entities = append(f.entities, entity)
	return nil
}

func (f *fakeEREntityRepo) ListByLOB(_ context.Context, lobID uuid.UUID) ([]models.EREntity, error) {
	var out []models.EREntity
	for _, e := range f.entities {
		if e.LOBID == lobID {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeExplorerRepo struct {
	rows      []models.HierarchyRow
	results   []models.SearchResult
	lastQuery string
	err       error
}

func (f *fakeExplorerRepo) HierarchyRows(_ context.Context) ([]models.HierarchyRow, error) {
	return f.rows, f.err
}

func (f *fakeExplorerRepo) Search(_ context.Context, query string) ([]models.SearchResult, error) {
	f.lastQuery = query
	return f.results, f.err
}

type fakeProfileRepo struct {
	stored  map[string]*models.TableProfile
	hash    string
	hashErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{stored: map[string]*models.TableProfile{}}
}

func (f *fakeProfileRepo) GetByTable(_ context.Context, schema, table string) (*models.TableProfile, error) {
	return f.stored[physicalKey(schema, table)], nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *models.TableProfile) error {
	profile.Prepare()
	f.stored[physicalKey(profile.SchemaName, profile.TableName)] = profile
	return nil
}

func (f *fakeProfileRepo) SampleHash(_ context.Context, _, _ string) (string, error) {
	return f.hash, f.hashErr
}

type fakeGenerator struct {
	html    string
	rows    int64
	cols    int
	err     error
	calls   int
}

func (f *fakeGenerator) Generate(_ context.Context, _, _ string) (string, int64, int, error) {
	f.calls++
	return f.html, f.rows, f.cols, f.err
}
