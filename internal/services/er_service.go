package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
	"metacatalog/internal/utils"
)

// ERService manages ER relationships and the named diagrams grouping them.
type ERService struct {
	erRepo     domain.ERRepository
	entityRepo domain.EREntityRepository
	tableRepo  domain.TableRepository
	lobRepo    domain.LOBRepository
	logger     *zap.SugaredLogger
}

func NewERService(
	erRepo domain.ERRepository,
	entityRepo domain.EREntityRepository,
	tableRepo domain.TableRepository,
	lobRepo domain.LOBRepository,
	logger *zap.SugaredLogger,
) *ERService {
	return &ERService{
		erRepo:     erRepo,
		entityRepo: entityRepo,
		tableRepo:  tableRepo,
		lobRepo:    lobRepo,
		logger:     logger,
	}
}

type RelationshipRequest struct {
	FromTableID      uuid.UUID  `json:"from_table_id" binding:"required"`
	FromColumn       string     `json:"from_column" binding:"required"`
	ToTableID        uuid.UUID  `json:"to_table_id" binding:"required"`
	ToColumn         string     `json:"to_column" binding:"required"`
	Cardinality      string     `json:"cardinality" binding:"required"`
	RelationshipType *string    `json:"relationship_type"`
	EREntityID       *uuid.UUID `json:"er_entity_id"`
}

type CreateERDiagramRequest struct {
	Name        string  `json:"name" binding:"required"`
	LOBName     string  `json:"lob_name" binding:"required"`
	Description *string `json:"description"`
}

func (s *ERService) validateRelationship(req *RelationshipRequest) error {
	if req.FromTableID == uuid.Nil || req.ToTableID == uuid.Nil {
		return domain.ErrValidation("from_table_id and to_table_id are required")
	}
	if strings.TrimSpace(req.FromColumn) == "" || strings.TrimSpace(req.ToColumn) == "" {
		return domain.ErrValidation("from_column and to_column are required")
	}
	if !utils.Contains(models.Cardinalities, req.Cardinality) {
		return domain.ErrValidation(
			"invalid cardinality %q: must be one of %s",
			req.Cardinality, strings.Join(models.Cardinalities, ", "),
		)
	}
	return nil
}

func (s *ERService) AddRelationship(ctx context.Context, req *RelationshipRequest) (*models.ERRelationship, error) {
	if err := s.validateRelationship(req); err != nil {
		return nil, err
	}

	for _, tableID := range []uuid.UUID{req.FromTableID, req.ToTableID} {
		table, err := s.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return nil, wrapStorage(s.logger, err, "failed to look up table")
		}
		if table == nil {
			return nil, domain.ErrNotFound("table %s not found", tableID)
		}
	}

	rel := &models.ERRelationship{
		FromTableID:      req.FromTableID,
		FromColumn:       req.FromColumn,
		ToTableID:        req.ToTableID,
		ToColumn:         req.ToColumn,
		Cardinality:      req.Cardinality,
		RelationshipType: req.RelationshipType,
		EREntityID:       req.EREntityID,
	}
	if err := s.erRepo.Create(ctx, rel); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to create relationship")
	}

	s.logger.Infow("ER relationship created", "id", rel.ID)
	return rel, nil
}

func (s *ERService) GetRelationship(ctx context.Context, id uuid.UUID) (*models.ERRelationship, error) {
	rel, err := s.erRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up relationship")
	}
	if rel == nil {
		return nil, domain.ErrNotFound("relationship %s not found", id)
	}
	return rel, nil
}

func (s *ERService) ListRelationshipsByDatabase(ctx context.Context, databaseName string) ([]models.ERRelationship, error) {
	rels, err := s.erRepo.ListByDatabase(ctx, databaseName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list relationships")
	}
	return emptyIfNil(rels), nil
}

func (s *ERService) ListRelationshipsByTable(ctx context.Context, tableID uuid.UUID) ([]models.ERRelationship, error) {
	rels, err := s.erRepo.ListByTable(ctx, tableID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list relationships")
	}
	return emptyIfNil(rels), nil
}

func (s *ERService) ListRelationshipsByEntity(ctx context.Context, entityID uuid.UUID) ([]models.ERRelationship, error) {
	rels, err := s.erRepo.ListByEntity(ctx, entityID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list relationships")
	}
	return emptyIfNil(rels), nil
}

func (s *ERService) UpdateRelationship(ctx context.Context, id uuid.UUID, req *RelationshipRequest) (*models.ERRelationship, error) {
	if err := s.validateRelationship(req); err != nil {
		return nil, err
	}

	existing, err := s.erRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up relationship")
	}
	if existing == nil {
		return nil, domain.ErrNotFound("relationship %s not found", id)
	}

	rel := &models.ERRelationship{
		ID:               id,
		FromTableID:      req.FromTableID,
		FromColumn:       req.FromColumn,
		ToTableID:        req.ToTableID,
		ToColumn:         req.ToColumn,
		Cardinality:      req.Cardinality,
		RelationshipType: req.RelationshipType,
		EREntityID:       req.EREntityID,
		CreatedAt:        existing.CreatedAt,
	}
	if err := s.erRepo.Update(ctx, rel); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to update relationship")
	}

	return rel, nil
}

func (s *ERService) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	if err := s.erRepo.Delete(ctx, id); err != nil {
		return wrapStorage(s.logger, err, "failed to delete relationship")
	}
	s.logger.Infow("ER relationship deleted", "id", id)
	return nil
}

func (s *ERService) CreateDiagram(ctx context.Context, req *CreateERDiagramRequest) (*models.EREntity, error) {
	name := strings.TrimSpace(req.Name)
	lobName := strings.TrimSpace(req.LOBName)
	if name == "" || lobName == "" {
		return nil, domain.ErrValidation("name and lob_name are required")
	}

	lob, err := s.lobRepo.GetByName(ctx, lobName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up LOB")
	}
	if lob == nil {
		return nil, domain.ErrNotFound("LOB %q not found", lobName)
	}

	entity := &models.EREntity{Name: name, LOBID: lob.ID, Description: req.Description}
	if err := s.entityRepo.Create(ctx, entity); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to create ER diagram")
	}

	s.logger.Infow("ER diagram created", "id", entity.ID, "name", entity.Name)
	return entity, nil
}

func (s *ERService) ListDiagrams(ctx context.Context, lobName string) ([]models.EREntity, error) {
	lob, err := s.lobRepo.GetByName(ctx, strings.TrimSpace(lobName))
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up LOB")
	}
	if lob == nil {
		return nil, domain.ErrNotFound("LOB %q not found", lobName)
	}

	entities, err := s.entityRepo.ListByLOB(ctx, lob.ID)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to list ER diagrams")
	}
	if entities == nil {
		entities = []models.EREntity{}
	}
	return entities, nil
}

func emptyIfNil(rels []models.ERRelationship) []models.ERRelationship {
	if rels == nil {
		return []models.ERRelationship{}
	}
	return rels
}
