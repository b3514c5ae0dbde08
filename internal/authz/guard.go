package authz

import "github.com/garagehub/garage-api/internal/httperr"

// Authorize allows the principal when its role is in the required set.
// A principal with no role at all is denied with a distinct message: the
// request was authenticated, the account just has nothing assigned.
func Authorize(p Principal, required []string) error {
	if !p.HasRole() {
		return httperr.ErrForbidden("Access denied: No role assigned to user")
	}
	for _, name := range required {
		if p.RoleName == name {
			return nil
		}
	}
	return httperr.ErrForbidden("Access denied: Insufficient permissions for this action")
}
