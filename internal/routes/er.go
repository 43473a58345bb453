package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

type ERRoutes struct {
	erHandler *handlers.ERHandler
}

func NewERRoutes(erHandler *handlers.ERHandler) *ERRoutes {
	return &ERRoutes{
		erHandler: erHandler,
	}
}

func (r *ERRoutes) RegisterRoutes(router *gin.RouterGroup) {
	relationships := router.Group("/er_relationships")
	{
		relationships.POST("", r.erHandler.CreateRelationship)
		relationships.GET("/:id", r.erHandler.GetRelationship)
		relationships.PUT("/:id", r.erHandler.UpdateRelationship)
		relationships.DELETE("/:id", r.erHandler.DeleteRelationship)
		relationships.GET("/database/:database_name", r.erHandler.ListRelationshipsByDatabase)
		relationships.GET("/table/:table_id", r.erHandler.ListRelationshipsByTable)
		relationships.GET("/entity/:entity_id", r.erHandler.ListRelationshipsByEntity)
	}

	router.POST("/create_er_diagram", r.erHandler.CreateDiagram)
	router.GET("/get_er_entities/:lob_name", r.erHandler.ListDiagrams)
}
