package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/garagehub/garage-api/internal/authz"
	"github.com/garagehub/garage-api/internal/httperr"
)

// RequireRoles gates a route to a fixed role set.
func RequireRoles(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Authorize(Principal(c), names); err != nil {
			httperr.WriteError(c, err, "An error occurred while authorizing")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireKnownRole gates a route to any role in the catalog. The set is
// resolved per request so a catalog refresh takes effect without rewiring
// routes.
func RequireKnownRole(catalog *authz.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		names, err := catalog.Names()
		if err != nil {
			logrus.WithError(err).Error("role catalog unavailable")
			httperr.Internal(c, "An error occurred while authorizing", err)
			c.Abort()
			return
		}
		if err := authz.Authorize(Principal(c), names); err != nil {
			httperr.WriteError(c, err, "An error occurred while authorizing")
			c.Abort()
			return
		}
		c.Next()
	}
}
