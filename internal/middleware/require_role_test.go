package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagehub/garage-api/internal/authz"
)

type fixedRoleLister struct {
	names []string
}

func (f *fixedRoleLister) ListRoleNames(context.Context) ([]string, error) {
	return f.names, nil
}

func withPrincipal(p authz.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

func roleRouter(p authz.Principal, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", withPrincipal(p), guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func probe(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/probe", nil))
	return w
}

func TestRequireRoles(t *testing.T) {
	t.Run("allowed role", func(t *testing.T) {
		r := roleRouter(
			authz.Principal{UserID: 1, RoleName: authz.RoleAdmin},
			RequireRoles(authz.RoleAdmin, authz.RoleTechnician),
		)
		assert.Equal(t, http.StatusOK, probe(r).Code)
	})

	t.Run("role outside the set", func(t *testing.T) {
		r := roleRouter(
			authz.Principal{UserID: 1, RoleName: authz.RoleCustomer},
			RequireRoles(authz.RoleAdmin),
		)
		assert.Equal(t, http.StatusForbidden, probe(r).Code)
	})

	t.Run("no role assigned", func(t *testing.T) {
		r := roleRouter(
			authz.Principal{UserID: 1},
			RequireRoles(authz.RoleAdmin, authz.RoleTechnician, authz.RoleCustomer),
		)
		w := probe(r)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "No role assigned")
	})
}

func TestRequireKnownRole(t *testing.T) {
	t.Run("any catalog role passes", func(t *testing.T) {
		catalog := authz.NewCatalog(&fixedRoleLister{names: []string{
			authz.RoleAdmin, authz.RoleTechnician, authz.RoleCustomer,
		}})
		require.NoError(t, catalog.Load(context.Background()))

		for _, role := range []string{authz.RoleAdmin, authz.RoleTechnician, authz.RoleCustomer} {
			r := roleRouter(authz.Principal{UserID: 1, RoleName: role}, RequireKnownRole(catalog))
			assert.Equal(t, http.StatusOK, probe(r).Code, role)
		}
	})

	t.Run("unknown role denied", func(t *testing.T) {
		catalog := authz.NewCatalog(&fixedRoleLister{names: []string{authz.RoleAdmin}})
		require.NoError(t, catalog.Load(context.Background()))

		r := roleRouter(authz.Principal{UserID: 1, RoleName: "Intern"}, RequireKnownRole(catalog))
		assert.Equal(t, http.StatusForbidden, probe(r).Code)
	})

	t.Run("catalog not loaded is an internal error", func(t *testing.T) {
		catalog := authz.NewCatalog(&fixedRoleLister{names: []string{authz.RoleAdmin}})

		r := roleRouter(authz.Principal{UserID: 1, RoleName: authz.RoleAdmin}, RequireKnownRole(catalog))
		assert.Equal(t, http.StatusInternalServerError, probe(r).Code)
	})

	t.Run("newly seeded role takes effect after refresh", func(t *testing.T) {
		lister := &fixedRoleLister{names: []string{authz.RoleAdmin}}
		catalog := authz.NewCatalog(lister)
		require.NoError(t, catalog.Load(context.Background()))

		r := roleRouter(authz.Principal{UserID: 1, RoleName: "Inspector"}, RequireKnownRole(catalog))
		assert.Equal(t, http.StatusForbidden, probe(r).Code)

		lister.names = []string{authz.RoleAdmin, "Inspector"}
		require.NoError(t, catalog.Refresh(context.Background()))
		assert.Equal(t, http.StatusOK, probe(r).Code)
	})
}
