package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/config"
	"github.com/garagehub/garage-api/internal/httperr"
	"github.com/garagehub/garage-api/internal/models"
)

const (
	ContextPrincipal = "principal"
	ContextUser      = "currentUser"
)

// UserLoader fetches the token's subject with its role preloaded. The token
// only proves identity; role and garage always come from the store.
type UserLoader interface {
	GetUserWithRole(ctx context.Context, id uint) (*models.User, error)
}

func Auth(cfg *config.Config, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "Authorization token requires Bearer format")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				httperr.Unauthorized(c, "Token has expired")
			} else {
				httperr.Unauthorized(c, "Unauthorized: Invalid token")
			}
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "Unauthorized: Invalid token")
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			httperr.Unauthorized(c, "Unauthorized: Invalid token")
			c.Abort()
			return
		}

		user, err := users.GetUserWithRole(c.Request.Context(), uint(sub))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				httperr.Unauthorized(c, "User not found or token invalid")
			} else {
				httperr.Internal(c, "An error occurred while authenticating", err)
			}
			c.Abort()
			return
		}

		p := authz.Principal{
			UserID:   user.ID,
			GarageID: user.GarageID,
		}
		if user.Role != nil {
			p.RoleName = user.Role.Name
		}

		c.Set(ContextPrincipal, p)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// Principal returns the identity resolved by Auth. Only valid on routes
// behind it.
func Principal(c *gin.Context) authz.Principal {
	v, _ := c.Get(ContextPrincipal)
	p, _ := v.(authz.Principal)
	return p
}

func CurrentUser(c *gin.Context) *models.User {
	v, _ := c.Get(ContextUser)
	u, _ := v.(*models.User)
	return u
}
