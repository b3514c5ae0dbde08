package authz

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/garagehub/garage-api/internal/httperr"
)

func garagePtr(id uint) *uint {
	return &id
}

func TestTenantID(t *testing.T) {
	t.Run("bound principal", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleAdmin, GarageID: garagePtr(7)}
		id, err := TenantID(p, "create services")
		assert.NoError(t, err)
		assert.Equal(t, uint(7), id)
	})

	t.Run("no garage is forbidden", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleAdmin}
		_, err := TenantID(p, "create services")
		assert.True(t, httperr.IsStatus(err, http.StatusForbidden))
	})
}

func TestCheckAdminTenant(t *testing.T) {
	t.Run("admin on own garage", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleAdmin, GarageID: garagePtr(1)}
		assert.NoError(t, CheckAdminTenant(p, 1, "denied"))
	})

	t.Run("admin on another garage", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleAdmin, GarageID: garagePtr(1)}
		err := CheckAdminTenant(p, 2, "denied")
		assert.True(t, httperr.IsStatus(err, http.StatusForbidden))
	})

	t.Run("admin without garage", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleAdmin}
		err := CheckAdminTenant(p, 2, "denied")
		assert.True(t, httperr.IsStatus(err, http.StatusForbidden))
	})

	t.Run("customer bypasses the check", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleCustomer}
		assert.NoError(t, CheckAdminTenant(p, 2, "denied"))
	})

	t.Run("technician bypasses the check", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleTechnician, GarageID: garagePtr(9)}
		assert.NoError(t, CheckAdminTenant(p, 2, "denied"))
	})
}

func TestCheckSameTenant(t *testing.T) {
	t.Run("same garage", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleTechnician, GarageID: garagePtr(3)}
		assert.NoError(t, CheckSameTenant(p, 3, "denied"))
	})

	t.Run("different garage regardless of role", func(t *testing.T) {
		for _, role := range []string{RoleAdmin, RoleTechnician, RoleCustomer} {
			p := Principal{UserID: 1, RoleName: role, GarageID: garagePtr(3)}
			err := CheckSameTenant(p, 4, "denied")
			assert.True(t, httperr.IsStatus(err, http.StatusForbidden), role)
		}
	})

	t.Run("no garage", func(t *testing.T) {
		p := Principal{UserID: 1, RoleName: RoleTechnician}
		err := CheckSameTenant(p, 3, "denied")
		assert.True(t, httperr.IsStatus(err, http.StatusForbidden))
	})
}
