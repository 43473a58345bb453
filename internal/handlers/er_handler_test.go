package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"metacatalog/internal/models"
	"metacatalog/internal/services"
)

type erHandlerFixture struct {
	router    *gin.Engine
	erRepo    *stubERRepo
	tableRepo *stubTableRepo
}

func newERRouter() *erHandlerFixture {
	gin.SetMode(gin.TestMode)

	erRepo := newStubERRepo()
	tableRepo := newStubTableRepo()
	svc := services.NewERService(erRepo, &stubEREntityRepo{}, tableRepo, newStubLOBRepo(), zap.NewNop().Sugar())
	handler := NewERHandler(svc)

	router := gin.New()
	router.POST("/api/er_relationships", handler.CreateRelationship)
	router.GET("/api/er_relationships/:id", handler.GetRelationship)
	router.DELETE("/api/er_relationships/:id", handler.DeleteRelationship)

	return &erHandlerFixture{router: router, erRepo: erRepo, tableRepo: tableRepo}
}

func (f *erHandlerFixture) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGetRelationshipEndpoint(t *testing.T) {
	f := newERRouter()
	rel := &models.ERRelationship{
		FromTableID: uuid.New(),
		FromColumn:  "invoice_id",
		ToTableID:   uuid.New(),
		ToColumn:    "id",
		Cardinality: models.CardinalityManyToOne,
	}
	rel.Prepare()
	f.erRepo.rels[rel.ID] = rel

	w := f.get("/api/er_relationships/" + rel.ID.String())
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ERRelationship `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, rel.ID, resp.Data.ID)
}

func TestGetRelationshipEndpointNotFound(t *testing.T) {
	f := newERRouter()

	w := f.get("/api/er_relationships/" + uuid.NewString())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// A non-UUID key on the single-relationship route is treated as a database
// name and answered with the per-database listing.
func TestGetRelationshipEndpointFallsBackToDatabaseListing(t *testing.T) {
	f := newERRouter()
	rel := models.ERRelationship{
		FromTableID: uuid.New(),
		FromColumn:  "invoice_id",
		ToTableID:   uuid.New(),
		ToColumn:    "id",
		Cardinality: models.CardinalityManyToOne,
	}
	rel.Prepare()
	f.erRepo.byDatabase["billing_db"] = []models.ERRelationship{rel}

	w := f.get("/api/er_relationships/billing_db")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.ERRelationship `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, rel.ID, resp.Data[0].ID)
}

func TestCreateRelationshipEndpointMissingTable(t *testing.T) {
	f := newERRouter()

	w := postJSON(t, f.router, "/api/er_relationships", gin.H{
		"from_table_id": uuid.NewString(),
		"from_column":   "invoice_id",
		"to_table_id":   uuid.NewString(),
		"to_column":     "id",
		"cardinality":   models.CardinalityManyToOne,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRelationshipEndpointBadID(t *testing.T) {
	f := newERRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/er_relationships/not-a-uuid", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
