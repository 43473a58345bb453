package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metacatalog/internal/services"
)

func newCatalogRouter() (*gin.Engine, *stubLOBRepo) {
	gin.SetMode(gin.TestMode)

	lobRepo := newStubLOBRepo()
	svc := services.NewCatalogService(lobRepo, &stubSubjectAreaRepo{}, newStubDatabaseRepo(), zap.NewNop().Sugar())
	handler := NewCatalogHandler(svc)

	router := gin.New()
	router.POST("/api/lobs", handler.CreateLOB)
	router.GET("/api/lobs", handler.ListLOBs)
	router.POST("/api/subject-areas", handler.CreateSubjectArea)
	router.GET("/api/logical-databases/:name", handler.GetLogicalDatabase)
	return router, lobRepo
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateLOBEndpoint(t *testing.T) {
	router, _ := newCatalogRouter()

	w := postJSON(t, router, "/api/lobs", gin.H{"name": "Finance"})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Finance", resp.Data.Name)
}

func TestCreateLOBEndpointDuplicate(t *testing.T) {
	router, _ := newCatalogRouter()

	w := postJSON(t, router, "/api/lobs", gin.H{"name": "Finance"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/lobs", gin.H{"name": "Finance"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestCreateLOBEndpointBadBody(t *testing.T) {
	router, _ := newCatalogRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/lobs", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSubjectAreaEndpointMissingLOB(t *testing.T) {
	router, _ := newCatalogRouter()

	w := postJSON(t, router, "/api/subject-areas", gin.H{"name": "Billing", "lob_name": "Nope"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetLogicalDatabaseEndpointNotFound(t *testing.T) {
	router, _ := newCatalogRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/logical-databases/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
