package services

import (
	"context"

	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

// ProfileService decides whether a stored profiling report is still fresh and
// delegates regeneration to the external report generator.
type ProfileService struct {
	profileRepo domain.ProfileRepository
	tableRepo   domain.TableRepository
	generator   domain.ReportGenerator
	logger      *zap.SugaredLogger
}

func NewProfileService(
	profileRepo domain.ProfileRepository,
	tableRepo domain.TableRepository,
	generator domain.ReportGenerator,
	logger *zap.SugaredLogger,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		tableRepo:   tableRepo,
		generator:   generator,
		logger:      logger,
	}
}

type ProfileRequest struct {
	SchemaName string `json:"schema_name" binding:"required"`
	TableName  string `json:"table_name" binding:"required"`
}

// GetOrGenerateProfile returns the cached report when the table's sample hash
// is unchanged, otherwise regenerates and stores a fresh one.
func (s *ProfileService) GetOrGenerateProfile(ctx context.Context, req *ProfileRequest) (*models.ProfileResult, error) {
	if !isValidIdentifier(req.SchemaName) {
		return nil, domain.ErrValidation("invalid schema name: %q", req.SchemaName)
	}
	if !isValidIdentifier(req.TableName) {
		return nil, domain.ErrValidation("invalid table name: %q", req.TableName)
	}

	exists, err := s.tableRepo.PhysicalTableExists(ctx, req.SchemaName, req.TableName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to check whether table exists")
	}
	if !exists {
		return nil, domain.ErrNotFound("table %s.%s not found", req.SchemaName, req.TableName)
	}

	hash, err := s.profileRepo.SampleHash(ctx, req.SchemaName, req.TableName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to sample table")
	}

	stored, err := s.profileRepo.GetByTable(ctx, req.SchemaName, req.TableName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to look up profile")
	}
	if stored != nil && stored.SampleHash == hash {
		s.logger.Debugw("Profile served from cache", "schema", req.SchemaName, "table", req.TableName)
		return &models.ProfileResult{
			HTML:        stored.ReportHTML,
			IsCached:    true,
			GeneratedAt: stored.GeneratedAt,
			RowCount:    stored.RowCount,
			ColumnCount: stored.ColumnCount,
		}, nil
	}

	html, rowCount, columnCount, err := s.generator.Generate(ctx, req.SchemaName, req.TableName)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "profile generation failed")
	}

	profile := &models.TableProfile{
		SchemaName:  req.SchemaName,
		TableName:   req.TableName,
		SampleHash:  hash,
		ReportHTML:  html,
		RowCount:    rowCount,
		ColumnCount: columnCount,
	}
	if stored != nil {
		profile.ID = stored.ID
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, wrapStorage(s.logger, err, "failed to store profile")
	}

	s.logger.Infow("Profile regenerated", "schema", req.SchemaName, "table", req.TableName)
	return &models.ProfileResult{
		HTML:        html,
		IsCached:    false,
		GeneratedAt: profile.GeneratedAt,
		RowCount:    rowCount,
		ColumnCount: columnCount,
	}, nil
}
