package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/middleware"
	"github.com/garagehub/garage-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p := middleware.Principal(c)

	var user models.User
	if err := h.db.Preload("Role").Preload("Garage").
		First(&user, p.UserID).Error; err != nil {
		httperr.Internal(c, "An error occurred while retrieving the profile", err)
		return
	}

	httpresp.OK(c, "Profile retrieved successfully", user)
}
