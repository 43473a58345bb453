package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

type TableRoutes struct {
	tableHandler *handlers.TableHandler
}

func NewTableRoutes(tableHandler *handlers.TableHandler) *TableRoutes {
	return &TableRoutes{
		tableHandler: tableHandler,
	}
}

func (r *TableRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tables := router.Group("/tables")
	{
		tables.POST("", r.tableHandler.CreateTable)
		tables.GET("", r.tableHandler.ListTables)
		// :name carries a database name for the listing and a table id
		// for the attribute and delete routes; gin requires the shared
		// wildcard, so the handlers tell them apart.
		tables.GET("/:name", r.tableHandler.ListTablesByDatabase)
		tables.GET("/:name/attributes", r.tableHandler.GetTableAttributes)
		tables.DELETE("/:name", r.tableHandler.DeleteTable)
	}
}
