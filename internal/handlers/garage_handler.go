package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/audit"
	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/middleware"
	"github.com/garagehub/garage-api/internal/models"
)

type GarageHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewGarageHandler(db *gorm.DB, audit *audit.Dispatcher) *GarageHandler {
	return &GarageHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateGarageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
	BannerPhoto string `json:"bannerPhoto"`
}

type UpdateGarageRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PhotoURL    *string `json:"photoUrl,omitempty"`
	BannerPhoto *string `json:"bannerPhoto,omitempty"`
}

// --------- Handlers ---------

func (h *GarageHandler) List(c *gin.Context) {
	var garages []models.Garage
	if err := h.db.Order("id ASC").Find(&garages).Error; err != nil {
		httperr.Internal(c, "An error occurred while retrieving garages", err)
		return
	}

	httpresp.OK(c, "Garages retrieved successfully", garages)
}

func (h *GarageHandler) Get(c *gin.Context) {
	var garage models.Garage
	if err := h.db.First(&garage, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Garage not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the garage", err)
		return
	}

	httpresp.OK(c, "Garage retrieved successfully", garage)
}

// Create registers a new garage and binds it to the creating Admin. An
// Admin already running a garage cannot open a second one.
func (h *GarageHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	var req CreateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Garage name is required", err)
		return
	}

	if p.RoleName == authz.RoleAdmin && p.HasTenant() {
		httperr.Forbidden(c, "Access denied: You are already assigned to a garage.")
		return
	}

	garage := models.Garage{
		Name:        req.Name,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		BannerPhoto: req.BannerPhoto,
	}

	// Creating the garage and binding the admin must not be observable
	// half-done.
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&garage).Error; err != nil {
			return err
		}
		if p.RoleName == authz.RoleAdmin && !p.HasTenant() {
			return tx.Model(&models.User{}).
				Where("id = ?", p.UserID).
				Update("garage_id", garage.ID).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "An error occurred while creating the garage", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		GarageID: &garage.ID,
		UserID:   &p.UserID,
		Action:   "garage_created",
		Entity:   "garage",
		EntityID: &garage.ID,
	})

	httpresp.Created(c, "Garage created successfully", garage)
}

func (h *GarageHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	var garage models.Garage
	if err := h.db.First(&garage, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Garage not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the garage", err)
		return
	}

	if err := authz.CheckAdminTenant(p, garage.ID,
		"Access denied: You can only update your own garage."); err != nil {
		httperr.WriteError(c, err, "An error occurred while updating the garage")
		return
	}

	var req UpdateGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid garage payload", err)
		return
	}

	if req.Name != nil {
		garage.Name = *req.Name
	}
	if req.Description != nil {
		garage.Description = *req.Description
	}
	if req.PhotoURL != nil {
		garage.PhotoURL = *req.PhotoURL
	}
	if req.BannerPhoto != nil {
		garage.BannerPhoto = *req.BannerPhoto
	}

	if err := h.db.Save(&garage).Error; err != nil {
		httperr.Internal(c, "An error occurred while updating the garage", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		GarageID: &garage.ID,
		UserID:   &p.UserID,
		Action:   "garage_updated",
		Entity:   "garage",
		EntityID: &garage.ID,
	})

	httpresp.OK(c, "Garage updated successfully", garage)
}

func (h *GarageHandler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	var garage models.Garage
	if err := h.db.First(&garage, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Garage not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the garage", err)
		return
	}

	if err := authz.CheckAdminTenant(p, garage.ID,
		"Access denied: You can only delete your own garage."); err != nil {
		httperr.WriteError(c, err, "An error occurred while deleting the garage")
		return
	}

	if err := h.db.Delete(&garage).Error; err != nil {
		httperr.Internal(c, "An error occurred while deleting the garage", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		GarageID: &garage.ID,
		UserID:   &p.UserID,
		Action:   "garage_deleted",
		Entity:   "garage",
		EntityID: &garage.ID,
	})

	httpresp.OK(c, "Garage deleted successfully", nil)
}
