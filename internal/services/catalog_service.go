package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

// CatalogService owns the upper catalog hierarchy: LOBs, subject areas, and
// logical databases.
type CatalogService struct {
	lobRepo      domain.LOBRepository
	areaRepo     domain.SubjectAreaRepository
	databaseRepo domain.LogicalDatabaseRepository
	logger       *zap.SugaredLogger
}

func NewCatalogService(
	lobRepo domain.LOBRepository,
	areaRepo domain.SubjectAreaRepository,
	databaseRepo domain.LogicalDatabaseRepository,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		lobRepo:      lobRepo,
		areaRepo:     areaRepo,
		databaseRepo: databaseRepo,
		logger:       logger,
	}
}

type CreateLOBRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateSubjectAreaRequest struct {
	Name    string `json:"name" binding:"required"`
	LOBName string `json:"lob_name" binding:"required"`
}

type CreateLogicalDatabaseRequest struct {
	Name        string `json:"name" binding:"required"`
	LOBName     string `json:"lob_name" binding:"required"`
	SubjectName string `json:"subject_name" binding:"required"`
}

type ImportLogicalDatabaseRequest struct {
	DatabaseName string `json:"database_name" binding:"required"`
	LOBName      string `json:"lob_name" binding:"required"`
	SubjectName  string `json:"subject_name" binding:"required"`
}

func (s *CatalogService) CreateLOB(ctx context.Context, req *CreateLOBRequest) (*models.LOB, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrValidation("name is required")
	}

	// Fast-path pre-check; the unique constraint remains the authority under
	// concurrent creates.
	existing, err := s.lobRepo.GetByName(ctx, name)
	if err != nil {
		return nil, s.storage(err, "failed to look up LOB")
	}
	if existing != nil {
		return nil, domain.ErrConflict("LOB %q already exists", name)
	}

	lob := &models.LOB{Name: name}
	if err := s.lobRepo.Create(ctx, lob); err != nil {
		return nil, s.storage(err, "failed to create LOB")
	}

	s.logger.Infow("LOB created", "id", lob.ID, "name", lob.Name)
	return lob, nil
}

func (s *CatalogService) ListLOBs(ctx context.Context) ([]models.LOB, error) {
	lobs, err := s.lobRepo.List(ctx)
	if err != nil {
		return nil, s.storage(err, "failed to list LOBs")
	}
	if lobs == nil {
		lobs = []models.LOB{}
	}
	return lobs, nil
}

func (s *CatalogService) CreateSubjectArea(ctx context.Context, req *CreateSubjectAreaRequest) (*models.SubjectArea, error) {
	name := strings.TrimSpace(req.Name)
	lobName := strings.TrimSpace(req.LOBName)
	if name == "" || lobName == "" {
		return nil, domain.ErrValidation("name and lob_name are required")
	}

	lob, err := s.lobRepo.GetByName(ctx, lobName)
	if err != nil {
		return nil, s.storage(err, "failed to look up LOB")
	}
	if lob == nil {
		return nil, domain.ErrNotFound("LOB %q not found", lobName)
	}

	existing, err := s.areaRepo.GetByLOBAndName(ctx, lob.ID, name)
	if err != nil {
		return nil, s.storage(err, "failed to look up subject area")
	}
	if existing != nil {
		return nil, domain.ErrConflict("subject area %q already exists in LOB %q", name, lobName)
	}

	area := &models.SubjectArea{Name: name, LOBID: lob.ID}
	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, s.storage(err, "failed to create subject area")
	}

	s.logger.Infow("Subject area created", "id", area.ID, "name", area.Name, "lob", lobName)
	return area, nil
}

// CreateLogicalDatabase resolves the owning subject area by (lob, subject)
// pair, then creates the database row, the association, and the physical
// schema as one unit.
func (s *CatalogService) CreateLogicalDatabase(ctx context.Context, req *CreateLogicalDatabaseRequest) (*models.LogicalDatabase, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.LOBName) == "" || strings.TrimSpace(req.SubjectName) == "" {
		return nil, domain.ErrValidation("name, lob_name and subject_name are required")
	}
	if !isValidIdentifier(name) {
		return nil, domain.ErrValidation("invalid database name: %q", name)
	}

	area, err := s.resolveSubjectArea(ctx, req.LOBName, req.SubjectName)
	if err != nil {
		return nil, err
	}

	db := &models.LogicalDatabase{Name: name}
	if err := s.databaseRepo.CreateAndProvision(ctx, db, area.ID); err != nil {
		return nil, s.storage(err, "failed to create logical database")
	}

	s.logger.Infow("Logical database created", "id", db.ID, "name", db.Name)
	return db, nil
}

func (s *CatalogService) GetLogicalDatabase(ctx context.Context, name string) (*models.LogicalDatabase, error) {
	db, err := s.databaseRepo.GetByName(ctx, name)
	if err != nil {
		return nil, s.storage(err, "failed to look up logical database")
	}
	if db == nil {
		return nil, domain.ErrNotFound("logical database %q not found", name)
	}
	return db, nil
}

func (s *CatalogService) ListLogicalDatabases(ctx context.Context) ([]models.LogicalDatabase, error) {
	dbs, err := s.databaseRepo.List(ctx)
	if err != nil {
		return nil, s.storage(err, "failed to list logical databases")
	}
	if dbs == nil {
		dbs = []models.LogicalDatabase{}
	}
	return dbs, nil
}

// ImportLogicalDatabase links an existing logical database to another subject
// area through the join table.
func (s *CatalogService) ImportLogicalDatabase(ctx context.Context, req *ImportLogicalDatabaseRequest) (*models.LogicalDatabase, error) {
	db, err := s.databaseRepo.GetByName(ctx, strings.TrimSpace(req.DatabaseName))
	if err != nil {
		return nil, s.storage(err, "failed to look up logical database")
	}
	if db == nil {
		return nil, domain.ErrNotFound("logical database %q not found", req.DatabaseName)
	}

	area, err := s.resolveSubjectArea(ctx, req.LOBName, req.SubjectName)
	if err != nil {
		return nil, err
	}

	if err := s.databaseRepo.Associate(ctx, db.ID, area.ID); err != nil {
		return nil, s.storage(err, "failed to import logical database")
	}

	s.logger.Infow("Logical database imported", "database", db.Name, "subject_area", area.Name)
	return db, nil
}

func (s *CatalogService) resolveSubjectArea(ctx context.Context, lobName, subjectName string) (*models.SubjectArea, error) {
	lob, err := s.lobRepo.GetByName(ctx, strings.TrimSpace(lobName))
	if err != nil {
		return nil, s.storage(err, "failed to look up LOB")
	}
	if lob == nil {
		return nil, domain.ErrNotFound("LOB %q not found", lobName)
	}

	area, err := s.areaRepo.GetByLOBAndName(ctx, lob.ID, strings.TrimSpace(subjectName))
	if err != nil {
		return nil, s.storage(err, "failed to look up subject area")
	}
	if area == nil {
		return nil, domain.ErrNotFound("subject area %q not found in LOB %q", subjectName, lobName)
	}

	return area, nil
}

func (s *CatalogService) storage(err error, msg string) error {
	return wrapStorage(s.logger, err, msg)
}
