// Package entity contains the core business objects of the project.
package entity

// Principal is the authenticated actor behind a request, as resolved from its access token.
type Principal struct {
	UserID         int64
	Username       string
	Role           Role
	WorkingGroupID *int64 // Active tenant; nil when the user has no membership yet.
	GroupName      string
}

// TenantID returns the active tenant and whether one is set.
func (p Principal) TenantID() (int64, bool) {
	if p.WorkingGroupID == nil {
		return 0, false
	}

	return *p.WorkingGroupID, true
}

// InTenant reports whether the principal's active tenant is tenantID.
func (p Principal) InTenant(tenantID int64) bool {
	id, ok := p.TenantID()

	return ok && id == tenantID
}

// IsAdminOf reports whether the principal is an admin acting inside tenantID.
func (p Principal) IsAdminOf(tenantID int64) bool {
	return p.Role == RoleAdmin && p.InTenant(tenantID)
}
