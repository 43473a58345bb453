package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"metacatalog/internal/domain"
	"metacatalog/internal/models"
)

// ExplorerService serves the read-only hierarchy and search projections.
type ExplorerService struct {
	explorerRepo domain.ExplorerRepository
	logger       *zap.SugaredLogger
}

func NewExplorerService(explorerRepo domain.ExplorerRepository, logger *zap.SugaredLogger) *ExplorerService {
	return &ExplorerService{explorerRepo: explorerRepo, logger: logger}
}

// Hierarchy returns the full catalog tree. Rows arrive in join order; each
// nesting level is initialized the first time its key appears, so branches
// without children end up with empty child maps rather than being dropped.
func (s *ExplorerService) Hierarchy(ctx context.Context) (models.Hierarchy, error) {
	rows, err := s.explorerRepo.HierarchyRows(ctx)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "failed to load hierarchy")
	}

	return GroupHierarchy(rows), nil
}

// GroupHierarchy folds the flat outer-join rows into the nested mapping.
func GroupHierarchy(rows []models.HierarchyRow) models.Hierarchy {
	hierarchy := models.Hierarchy{}

	for _, row := range rows {
		lobKey := row.LOBID.String()
		lob, ok := hierarchy[lobKey]
		if !ok {
			lob = &models.HierarchyLOB{
				Name:         row.LOBName,
				SubjectAreas: map[string]*models.HierarchySubjectArea{},
			}
			hierarchy[lobKey] = lob
		}

		if row.SubjectAreaID == nil {
			continue
		}
		areaKey := row.SubjectAreaID.String()
		area, ok := lob.SubjectAreas[areaKey]
		if !ok {
			area = &models.HierarchySubjectArea{
				Name:      *row.SubjectAreaName,
				Databases: map[string]*models.HierarchyDatabase{},
			}
			lob.SubjectAreas[areaKey] = area
		}

		if row.DatabaseID == nil {
			continue
		}
		dbKey := row.DatabaseID.String()
		db, ok := area.Databases[dbKey]
		if !ok {
			db = &models.HierarchyDatabase{
				Name:   *row.DatabaseName,
				Tables: map[string]string{},
			}
			area.Databases[dbKey] = db
		}

		if row.TableID == nil {
			continue
		}
		db.Tables[row.TableID.String()] = *row.TableName
	}

	return hierarchy
}

// Search returns an empty list for a blank query, never an error.
func (s *ExplorerService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	results, err := s.explorerRepo.Search(ctx, query)
	if err != nil {
		return nil, wrapStorage(s.logger, err, "search failed")
	}
	if results == nil {
		results = []models.SearchResult{}
	}
	return results, nil
}
