package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/models"
)

// Account administration. Unlike self-registration this can assign a role
// and a garage directly.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	PhotoURL string `json:"photoUrl"`
	Phone    string `json:"phone"`
	RoleID   *uint  `json:"roleId"`
	GarageID *uint  `json:"garageId"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
	PhotoURL *string `json:"photoUrl,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	RoleID   *uint   `json:"roleId,omitempty"`
	GarageID *uint   `json:"garageId,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Preload("Role").Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "An error occurred while retrieving users", err)
		return
	}

	httpresp.OK(c, "Users retrieved successfully", users)
}

func (h *UserHandler) Get(c *gin.Context) {
	var user models.User
	if err := h.db.Preload("Role").First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the user", err)
		return
	}

	httpresp.OK(c, "User retrieved successfully", user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and password are required", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "An error occurred while creating the user", err)
		return
	}
	if count > 0 {
		httperr.Conflict(c, "User with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "An error occurred while creating the user", err)
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		PhotoURL:     req.PhotoURL,
		Phone:        req.Phone,
		RoleID:       req.RoleID,
		GarageID:     req.GarageID,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "An error occurred while creating the user", err)
		return
	}

	httpresp.Created(c, "User created successfully", user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the user", err)
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid user payload", err)
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "An error occurred while updating the user", err)
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.PhotoURL != nil {
		user.PhotoURL = *req.PhotoURL
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.RoleID != nil {
		user.RoleID = req.RoleID
	}
	if req.GarageID != nil {
		user.GarageID = req.GarageID
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "An error occurred while updating the user", err)
		return
	}

	httpresp.OK(c, "User updated successfully", user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "User not found")
			return
		}
		httperr.Internal(c, "An error occurred while retrieving the user", err)
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "An error occurred while deleting the user", err)
		return
	}

	httpresp.OK(c, "User deleted successfully", nil)
}
