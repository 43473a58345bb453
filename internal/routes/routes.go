package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	catalogHandler *handlers.CatalogHandler,
	tableHandler *handlers.TableHandler,
	erHandler *handlers.ERHandler,
	explorerHandler *handlers.ExplorerHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := router.Group("/api")

	catalogRoutes := NewCatalogRoutes(catalogHandler)
	catalogRoutes.RegisterRoutes(api)

	tableRoutes := NewTableRoutes(tableHandler)
	tableRoutes.RegisterRoutes(api)

	erRoutes := NewERRoutes(erHandler)
	erRoutes.RegisterRoutes(api)

	explorerRoutes := NewExplorerRoutes(explorerHandler)
	explorerRoutes.RegisterRoutes(api)

	profileRoutes := NewProfileRoutes(profileHandler)
	profileRoutes.RegisterRoutes(api)

	router.GET("/health", healthHandler.Check)
}
