package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"metacatalog/internal/responses"
	"metacatalog/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile handles POST /api/profile. Generation can take a while
// on big tables, so the cached report is served whenever the sample hash
// still matches.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	var req services.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	result, err := h.profileService.GetOrGenerateProfile(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err, "Error while generating the table profile")
		return
	}

	responses.Success(c, http.StatusOK, result, "Table profile retrieved successfully")
}
