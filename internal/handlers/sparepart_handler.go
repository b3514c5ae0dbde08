package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/middleware"
	"github.com/garagehub/garage-api/internal/models"
)

// Spareparts are visible to Admin and Technician alike, but only ever
// within the caller's own garage.
type SparepartHandler struct {
	db *gorm.DB
}

func NewSparepartHandler(db *gorm.DB) *SparepartHandler {
	return &SparepartHandler{db: db}
}

// --------- Requests ---------

type CreateSparepartRequest struct {
	Name       string `json:"name" binding:"required"`
	PartNumber string `json:"partNumber"`
	Brand      string `json:"brand"`
	Category   string `json:"category"`
	Price      int    `json:"price" binding:"min=0"`
	PhotoURL   string `json:"photoUrl"`
}

type UpdateSparepartRequest struct {
	Name       *string `json:"name,omitempty"`
	PartNumber *string `json:"partNumber,omitempty"`
	Brand      *string `json:"brand,omitempty"`
	Category   *string `json:"category,omitempty"`
	Price      *int    `json:"price,omitempty" binding:"omitempty,min=0"`
	PhotoURL   *string `json:"photoUrl,omitempty"`
}

// --------- Handlers ---------

func (h *SparepartHandler) List(c *gin.Context) {
	p := middleware.Principal(c)

	garageID, err := authz.TenantID(p, "view spareparts")
	if err != nil {
		httperr.WriteError(c, err, "An error occurred while retrieving spareparts")
		return
	}

	var spareparts []models.Sparepart
	if err := h.db.Where("garage_id = ?", garageID).
		Order("id ASC").
		Find(&spareparts).Error; err != nil {
		httperr.Internal(c, "An error occurred while retrieving spareparts", err)
		return
	}

	httpresp.OK(c, "Spareparts retrieved successfully", spareparts)
}

func (h *SparepartHandler) Get(c *gin.Context) {
	p := middleware.Principal(c)

	var sparepart models.Sparepart
	if err := h.db.First(&sparepart, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Sparepart not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the sparepart", err)
		return
	}

	if err := authz.CheckSameTenant(p, sparepart.GarageID,
		"Access denied: You can only view spareparts in your own garage."); err != nil {
		httperr.WriteError(c, err, "An error occurred while retrieving the sparepart")
		return
	}

	httpresp.OK(c, "Sparepart retrieved successfully", sparepart)
}

func (h *SparepartHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	garageID, err := authz.TenantID(p, "create spareparts")
	if err != nil {
		httperr.WriteError(c, err, "An error occurred while creating the sparepart")
		return
	}

	var req CreateSparepartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Sparepart name is required", err)
		return
	}

	sparepart := models.Sparepart{
		Name:       req.Name,
		PartNumber: req.PartNumber,
		Brand:      req.Brand,
		Category:   req.Category,
		Price:      req.Price,
		PhotoURL:   req.PhotoURL,
		GarageID:   garageID,
	}

	if err := h.db.Create(&sparepart).Error; err != nil {
		httperr.Internal(c, "An error occurred while creating the sparepart", err)
		return
	}

	httpresp.Created(c, "Sparepart created successfully", sparepart)
}

func (h *SparepartHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	var sparepart models.Sparepart
	if err := h.db.First(&sparepart, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Sparepart not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the sparepart", err)
		return
	}

	if err := authz.CheckSameTenant(p, sparepart.GarageID,
		"Access denied: You can only update spareparts in your own garage."); err != nil {
		httperr.WriteError(c, err, "An error occurred while updating the sparepart")
		return
	}

	var req UpdateSparepartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid sparepart payload", err)
		return
	}

	if req.Name != nil {
		sparepart.Name = *req.Name
	}
	if req.PartNumber != nil {
		sparepart.PartNumber = *req.PartNumber
	}
	if req.Brand != nil {
		sparepart.Brand = *req.Brand
	}
	if req.Category != nil {
		sparepart.Category = *req.Category
	}
	if req.Price != nil {
		sparepart.Price = *req.Price
	}
	if req.PhotoURL != nil {
		sparepart.PhotoURL = *req.PhotoURL
	}

	if err := h.db.Save(&sparepart).Error; err != nil {
		httperr.Internal(c, "An error occurred while updating the sparepart", err)
		return
	}

	httpresp.OK(c, "Sparepart updated successfully", sparepart)
}

func (h *SparepartHandler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	var sparepart models.Sparepart
	if err := h.db.First(&sparepart, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Sparepart not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the sparepart", err)
		return
	}

	if err := authz.CheckSameTenant(p, sparepart.GarageID,
		"Access denied: You can only delete spareparts in your own garage."); err != nil {
		httperr.WriteError(c, err, "An error occurred while deleting the sparepart")
		return
	}

	if err := h.db.Delete(&sparepart).Error; err != nil {
		httperr.Internal(c, "An error occurred while deleting the sparepart", err)
		return
	}

	httpresp.OK(c, "Sparepart deleted successfully", nil)
}
