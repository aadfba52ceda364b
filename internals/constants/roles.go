package constants

import "fmt"

const (
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Role error message templates
const (
	ErrOnlyManagersCanAccess = "❌ Only managers, admins, or the owner may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admins or the owner may access %s."
	ErrOnlyOwnersCanAccess   = "❌ Only the owner may access %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleStaff,
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	ManagerAndAbove = []string{
		RoleManager,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
