package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

type CatalogRoutes struct {
	catalogHandler *handlers.CatalogHandler
}

func NewCatalogRoutes(catalogHandler *handlers.CatalogHandler) *CatalogRoutes {
	return &CatalogRoutes{
		catalogHandler: catalogHandler,
	}
}

func (r *CatalogRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/lobs", r.catalogHandler.CreateLOB)
	router.GET("/lobs", r.catalogHandler.ListLOBs)

	router.POST("/subject-areas", r.catalogHandler.CreateSubjectArea)

	databases := router.Group("/logical-databases")
	{
		databases.POST("", r.catalogHandler.CreateLogicalDatabase)
		databases.GET("", r.catalogHandler.ListLogicalDatabases)
		databases.POST("/import", r.catalogHandler.ImportLogicalDatabase)
		databases.GET("/:name", r.catalogHandler.GetLogicalDatabase)
	}
}
