package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metacatalog/internal/responses"
	"metacatalog/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// CreateLOB handles POST /api/lobs
func (h *CatalogHandler) CreateLOB(c *gin.Context) {
	var req services.CreateLOBRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	lob, err := h.catalogService.CreateLOB(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the LOB")
		return
	}

	responses.Success(c, http.StatusCreated, lob, "LOB created successfully")
}

// ListLOBs handles GET /api/lobs
func (h *CatalogHandler) ListLOBs(c *gin.Context) {
	lobs, err := h.catalogService.ListLOBs(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Error while listing LOBs")
		return
	}

	responses.Success(c, http.StatusOK, lobs, "LOBs retrieved successfully")
}

// CreateSubjectArea handles POST /api/subject-areas
func (h *CatalogHandler) CreateSubjectArea(c *gin.Context) {
	var req services.CreateSubjectAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	area, err := h.catalogService.CreateSubjectArea(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the subject area")
		return
	}

	responses.Success(c, http.StatusCreated, area, "Subject area created successfully")
}

// CreateLogicalDatabase handles POST /api/logical-databases
func (h *CatalogHandler) CreateLogicalDatabase(c *gin.Context) {
	var req services.CreateLogicalDatabaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	db, err := h.catalogService.CreateLogicalDatabase(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the logical database")
		return
	}

	responses.Success(c, http.StatusCreated, db, "Logical database created successfully")
}

// GetLogicalDatabase handles GET /api/logical-databases/:name
func (h *CatalogHandler) GetLogicalDatabase(c *gin.Context) {
	name := c.Param("name")

	db, err := h.catalogService.GetLogicalDatabase(c.Request.Context(), name)
	if err != nil {
		responses.Error(c, err, "Error while fetching the logical database")
		return
	}

	responses.Success(c, http.StatusOK, db, "Logical database retrieved successfully")
}

// ListLogicalDatabases handles GET /api/logical-databases
func (h *CatalogHandler) ListLogicalDatabases(c *gin.Context) {
	dbs, err := h.catalogService.ListLogicalDatabases(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Error while listing logical databases")
		return
	}

	responses.Success(c, http.StatusOK, dbs, "Logical databases retrieved successfully")
}

// ImportLogicalDatabase handles POST /api/logical-databases/import
func (h *CatalogHandler) ImportLogicalDatabase(c *gin.Context) {
	var req services.ImportLogicalDatabaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	db, err := h.catalogService.ImportLogicalDatabase(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while importing the logical database")
		return
	}

	responses.Success(c, http.StatusCreated, db, "Logical database imported successfully")
}
