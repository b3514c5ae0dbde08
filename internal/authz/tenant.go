package authz

import (
	"fmt"

	"github.com/garagehub/garage-api/internal/httperr"
)

// Tenant scoping rules. Garages and services are administered by Admins, so
// only Admin principals are checked against the resource's garage. Spareparts
// are shared between Admin and Technician and the ownership check applies to
// every accessor.

// TenantID returns the principal's garage id, or a forbidden error for
// principals not bound to any garage.
func TenantID(p Principal, action string) (uint, error) {
	if !p.HasTenant() {
		return 0, httperr.ErrForbidden(
			fmt.Sprintf("Access denied: You must be assigned to a garage to %s", action))
	}
	return *p.GarageID, nil
}

// CheckAdminTenant denies an Admin principal operating on a resource owned
// by another garage. Non-admin roles pass through untouched.
func CheckAdminTenant(p Principal, resourceGarageID uint, message string) error {
	if p.RoleName != RoleAdmin {
		return nil
	}
	if !p.HasTenant() || *p.GarageID != resourceGarageID {
		return httperr.ErrForbidden(message)
	}
	return nil
}

// CheckSameTenant denies any principal whose garage differs from the
// resource's, regardless of role.
func CheckSameTenant(p Principal, resourceGarageID uint, message string) error {
	if !p.HasTenant() || *p.GarageID != resourceGarageID {
		return httperr.ErrForbidden(message)
	}
	return nil
}
