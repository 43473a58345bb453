package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metacatalog/internal/responses"
	"metacatalog/internal/services"
)

type ExplorerHandler struct {
	explorerService *services.ExplorerService
}

func NewExplorerHandler(explorerService *services.ExplorerService) *ExplorerHandler {
	return &ExplorerHandler{
		explorerService: explorerService,
	}
}

// GetHierarchy handles GET /api/hierarchy
func (h *ExplorerHandler) GetHierarchy(c *gin.Context) {
	hierarchy, err := h.explorerService.Hierarchy(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Error while building the hierarchy")
		return
	}

	responses.Success(c, http.StatusOK, hierarchy, "Hierarchy retrieved successfully")
}

// Search handles GET /api/search?q=term
func (h *ExplorerHandler) Search(c *gin.Context) {
	results, err := h.explorerService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		responses.Error(c, err, "Error while searching the catalog")
		return
	}

	responses.Success(c, http.StatusOK, results, "Search results retrieved successfully")
}
