package session

import "strings"

// Role is a user role claim. Roles form a closed enum; every comparison in
// the client goes through ParseRole so that claim-casing drift across
// backend versions cannot change authorization behavior.
type Role string

const (
	// RoleManager can see the staff and plans screens.
	RoleManager Role = "Manager"
	// RoleDetailer can only record worksheets. The backend has emitted this
	// role both as "Detailer" and as "Employee"; both map here.
	RoleDetailer Role = "Detailer"
)

// ParseRole maps a raw role claim to the closed enum, case-insensitively.
// Unknown values return false.
func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "manager":
		return RoleManager, true
	case "detailer", "employee":
		return RoleDetailer, true
	default:
		return "", false
	}
}

// IsManager reports whether raw names the manager role.
func IsManager(raw string) bool {
	role, ok := ParseRole(raw)
	return ok && role == RoleManager
}
