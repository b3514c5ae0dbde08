package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/config"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/httpresp"
	"github.com/garagehub/garage-api/internal/models"
	ucUser "github.com/garagehub/garage-api/internal/usecase/user"
)

type AuthHandler struct {
	db         *gorm.DB
	config     *config.Config
	registerUC *ucUser.RegisterUser
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, registerUC *ucUser.RegisterUser) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, registerUC: registerUC}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	PhotoURL string `json:"photoUrl"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and password are required", err)
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucUser.RegisterUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		PhotoURL: req.PhotoURL,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.WriteError(c, err, "An error occurred during registration")
		return
	}

	httpresp.Created(c, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Email and password are required", err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Role").Preload("Garage").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Invalid email or password")
			return
		}
		httperr.Internal(c, "An error occurred during login", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "An error occurred during login", err)
		return
	}

	httpresp.OK(c, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// --------- JWT ---------

// The token carries identity only. Role and garage are re-read from the
// store on every request, so a role change takes effect without reissuing
// tokens.
func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(h.config.TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
