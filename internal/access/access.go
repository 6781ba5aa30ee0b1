// Package access holds the static role capability tables consulted for every
// request's authorization decision.
package access

import "backend/internal/model"

// Resource (controller) names
const (
	ResourceAuth      = "auth"
	ResourceUsers     = "users"
	ResourceMaterials = "materials"
	ResourceSuppliers = "suppliers"
	ResourceSupplies  = "supplies"
	ResourceSpend     = "spend"
	ResourceEquipment = "equipment"
	ResourceReports   = "reports"
	ResourceHealth    = "health"
	ResourceSystem    = "system"
)

// IsAllowed reports whether the user (nil for anonymous) may use the
// resource. Auth, health and system are open to everyone; reports are open
// to every authenticated role; everything else is role-specific.
func IsAllowed(resource string, user *model.User) bool {
	switch resource {
	case ResourceAuth, ResourceHealth, ResourceSystem:
		return true
	case ResourceReports:
		return user != nil && (user.IsAdmin() || user.IsAccounter() || user.IsDirector())
	case ResourceUsers:
		return user != nil && user.IsAdmin()
	case ResourceMaterials, ResourceSpend, ResourceSupplies:
		return user != nil && user.IsAccounter()
	case ResourceSuppliers, ResourceEquipment:
		return user != nil && user.IsDirector()
	default:
		return false
	}
}

// AllowedControllers returns the resources a role may call, echoed to the
// client on login/state so it can build navigation without another request.
func AllowedControllers(role string) []string {
	switch role {
	case model.RoleAdmin:
		return []string{ResourceAuth, ResourceReports, ResourceUsers}
	case model.RoleAccounter:
		return []string{ResourceAuth, ResourceReports, ResourceMaterials, ResourceSpend, ResourceSupplies}
	case model.RoleDirector:
		return []string{ResourceAuth, ResourceReports, ResourceSuppliers, ResourceEquipment}
	default:
		return []string{ResourceAuth}
	}
}

// AllowedViews returns the dashboard view keys a role may open
func AllowedViews(role string) []string {
	switch role {
	case model.RoleAdmin:
		return []string{"Reports", "Users"}
	case model.RoleAccounter:
		return []string{"Reports", "Materials", "Spends", "Supplies"}
	case model.RoleDirector:
		return []string{"Reports", "Suppliers", "Equipment"}
	default:
		return []string{"Login"}
	}
}
