package auth

import (
	"strings"

	"printcare/internal/models"
)

// prefixRoles is the single source of truth for path-level role
// requirements. A path that matches no prefix only needs a valid session.
var prefixRoles = []struct {
	prefix  string
	allowed []models.Role
}{
	{"/dashboard/admin", []models.Role{models.RoleAdmin}},
	{"/dashboard/mis", []models.Role{models.RoleAdmin, models.RoleManager}},
}

// HasPermission reports whether role may access path. Longest-prefix rules
// are listed first, so /dashboard/admin is checked before /dashboard.
func HasPermission(role models.Role, path string) bool {
	for _, rule := range prefixRoles {
		if !strings.HasPrefix(path, rule.prefix) {
			continue
		}
		for _, r := range rule.allowed {
			if role == r {
				return true
			}
		}
		return false
	}
	return true
}
