package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

type ExplorerRoutes struct {
	explorerHandler *handlers.ExplorerHandler
}

func NewExplorerRoutes(explorerHandler *handlers.ExplorerHandler) *ExplorerRoutes {
	return &ExplorerRoutes{
		explorerHandler: explorerHandler,
	}
}

func (r *ExplorerRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/hierarchy", r.explorerHandler.GetHierarchy)
	router.GET("/search", r.explorerHandler.Search)
}
