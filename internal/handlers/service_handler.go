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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       *int   `json:"price" binding:"required,min=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" binding:"omitempty,min=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "An error occurred while retrieving services", err)
		return
	}

	httpresp.OK(c, "Services retrieved successfully", services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the service", err)
		return
	}

	httpresp.OK(c, "Service retrieved successfully", service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p := middleware.Principal(c)

	garageID, err := authz.TenantID(p, "create services")
	if err != nil {
		httperr.WriteError(c, err, "An error occurred while creating the service")
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Service name and price are required", err)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		GarageID:    garageID,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "An error occurred while creating the service", err)
		return
	}

	httpresp.Created(c, "Service created successfully", service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	p := middleware.Principal(c)

	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the service", err)
		return
	}

	if err := authz.CheckAdminTenant(p, service.GarageID,
		"Access denied: You can only update services belonging to your garage"); err != nil {
		httperr.WriteError(c, err, "An error occurred while updating the service")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid service payload", err)
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "An error occurred while updating the service", err)
		return
	}

	httpresp.OK(c, "Service updated successfully", service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	p := middleware.Principal(c)

	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Service not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the service", err)
		return
	}

	if err := authz.CheckAdminTenant(p, service.GarageID,
		"Access denied: You can only delete services belonging to your garage"); err != nil {
		httperr.WriteError(c, err, "An error occurred while deleting the service")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "An error occurred while deleting the service", err)
		return
	}

	httpresp.OK(c, "Service deleted successfully", nil)
}
