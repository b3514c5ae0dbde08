package authz

// Well-known role names, matching the seeded role set.
const (
	RoleAdmin      = "Admin"
	RoleTechnician = "Technician"
	RoleCustomer   = "Customer"
)

// Principal is the request-scoped identity: who is calling, as which role,
// and for which garage. Role and garage come from the store on every
// request, never from token claims.
type Principal struct {
	UserID   uint
	RoleName string
	GarageID *uint
}

func (p Principal) HasRole() bool {
	return p.RoleName != ""
}

func (p Principal) HasTenant() bool {
	return p.GarageID != nil
}
