package routes

import (
	"github.com/gin-gonic/gin"

	"metacatalog/internal/handlers"
)

type ProfileRoutes struct {
	profileHandler *handlers.ProfileHandler
}

func NewProfileRoutes(profileHandler *handlers.ProfileHandler) *ProfileRoutes {
	return &ProfileRoutes{
		profileHandler: profileHandler,
	}
}

func (r *ProfileRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/profile", r.profileHandler.GetProfile)
}
