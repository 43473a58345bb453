package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metacatalog/internal/responses"
	"metacatalog/internal/services"
)

type ERHandler struct {
	erService *services.ERService
}

func NewERHandler(erService *services.ERService) *ERHandler {
	return &ERHandler{
		erService: erService,
	}
}

// CreateRelationship handles POST /api/er_relationships
func (h *ERHandler) CreateRelationship(c *gin.Context) {
	var req services.RelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	rel, err := h.erService.AddRelationship(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the relationship")
		return
	}

	responses.Success(c, http.StatusCreated, rel, "Relationship created successfully")
}

// GetRelationship handles GET /api/er_relationships/:id. The browser also
// requests this path with a database name in place of the id, so non-UUID
// keys fall back to the per-database listing.
func (h *ERHandler) GetRelationship(c *gin.Context) {
	key := c.Param("id")

	id, err := uuid.Parse(key)
	if err != nil {
		rels, err := h.erService.ListRelationshipsByDatabase(c.Request.Context(), key)
		if err != nil {
			responses.Error(c, err, "Error while listing relationships")
			return
		}
		responses.Success(c, http.StatusOK, rels, "Relationships retrieved successfully")
		return
	}

	rel, err := h.erService.GetRelationship(c.Request.Context(), id)
	if err != nil {
		responses.Error(c, err, "Error while fetching the relationship")
		return
	}

	responses.Success(c, http.StatusOK, rel, "Relationship retrieved successfully")
}

// ListRelationshipsByDatabase handles GET /api/er_relationships/database/:database_name
func (h *ERHandler) ListRelationshipsByDatabase(c *gin.Context) {
	rels, err := h.erService.ListRelationshipsByDatabase(c.Request.Context(), c.Param("database_name"))
	if err != nil {
		responses.Error(c, err, "Error while listing relationships")
		return
	}

	responses.Success(c, http.StatusOK, rels, "Relationships retrieved successfully")
}

// ListRelationshipsByTable handles GET /api/er_relationships/table/:table_id
func (h *ERHandler) ListRelationshipsByTable(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("table_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid table id format")
		return
	}

	rels, err := h.erService.ListRelationshipsByTable(c.Request.Context(), tableID)
	if err != nil {
		responses.Error(c, err, "Error while listing relationships")
		return
	}

	responses.Success(c, http.StatusOK, rels, "Relationships retrieved successfully")
}

// ListRelationshipsByEntity handles GET /api/er_relationships/entity/:entity_id
func (h *ERHandler) ListRelationshipsByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("entity_id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid entity id format")
		return
	}

	rels, err := h.erService.ListRelationshipsByEntity(c.Request.Context(), entityID)
	if err != nil {
		responses.Error(c, err, "Error while listing relationships")
		return
	}

	responses.Success(c, http.StatusOK, rels, "Relationships retrieved successfully")
}

// UpdateRelationship handles PUT /api/er_relationships/:id
func (h *ERHandler) UpdateRelationship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid relationship id format")
		return
	}

	var req services.RelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	rel, err := h.erService.UpdateRelationship(c.Request.Context(), id, &req)
	if err != nil {
		responses.Error(c, err, "Error while updating the relationship")
		return
	}

	responses.Success(c, http.StatusOK, rel, "Relationship updated successfully")
}

// DeleteRelationship handles DELETE /api/er_relationships/:id
func (h *ERHandler) DeleteRelationship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid relationship id format")
		return
	}

	if err := h.erService.DeleteRelationship(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Error while deleting the relationship")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"id": id}, "Relationship deleted successfully")
}

// CreateDiagram handles POST /api/create_er_diagram
func (h *ERHandler) CreateDiagram(c *gin.Context) {
	var req services.CreateERDiagramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	entity, err := h.erService.CreateDiagram(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the ER diagram")
		return
	}

	responses.Success(c, http.StatusCreated, entity, "ER diagram created successfully")
}

// ListDiagrams handles GET /api/get_er_entities/:lob_name
func (h *ERHandler) ListDiagrams(c *gin.Context) {
	entities, err := h.erService.ListDiagrams(c.Request.Context(), c.Param("lob_name"))
	if err != nil {
		responses.Error(c, err, "Error while listing ER diagrams")
		return
	}

	responses.Success(c, http.StatusOK, entities, "ER diagrams retrieved successfully")
}
