package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"metacatalog/internal/responses"
	"metacatalog/internal/services"
)

type TableHandler struct {
	tableService *services.TableService
}

func NewTableHandler(tableService *services.TableService) *TableHandler {
	return &TableHandler{
		tableService: tableService,
	}
}

// CreateTable handles POST /api/tables
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req services.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.tableService.CreateTable(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while creating the table")
		return
	}

	message := "Table created successfully"
	if result.Imported {
		message = "Existing table registered successfully"
	}
	responses.Success(c, http.StatusCreated, result, message)
}

// ListTables handles GET /api/tables
func (h *TableHandler) ListTables(c *gin.Context) {
	tables, err := h.tableService.ListTables(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Error while listing tables")
		return
	}

	responses.Success(c, http.StatusOK, tables, "Tables retrieved successfully")
}

// ListTablesByDatabase handles GET /api/tables/:name
func (h *TableHandler) ListTablesByDatabase(c *gin.Context) {
	databaseName := c.Param("name")

	tables, err := h.tableService.ListTablesByDatabase(c.Request.Context(), databaseName)
	if err != nil {
		responses.Error(c, err, "Error while listing tables")
		return
	}

	responses.Success(c, http.StatusOK, tables, "Tables retrieved successfully")
}

// GetTableAttributes handles GET /api/tables/:name/attributes
func (h *TableHandler) GetTableAttributes(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("name"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid table id format")
		return
	}

	columns, err := h.tableService.GetTableAttributes(c.Request.Context(), tableID)
	if err != nil {
		responses.Error(c, err, "Error while fetching table attributes")
		return
	}

	responses.Success(c, http.StatusOK, columns, "Table attributes retrieved successfully")
}

// DeleteTable handles DELETE /api/tables/:name
func (h *TableHandler) DeleteTable(c *gin.Context) {
	tableID, err := uuid.Parse(c.Param("name"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid table id format")
		return
	}

	table, err := h.tableService.DeleteTable(c.Request.Context(), tableID)
	if err != nil {
		responses.Error(c, err, "Cannot delete the given table")
		return
	}

	responses.Success(c, http.StatusOK, table, "Table deleted successfully")
}
