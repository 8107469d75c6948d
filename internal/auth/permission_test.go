package auth

import (
	"testing"

	"printcare/internal/models"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		role models.Role
		path string
		want bool
	}{
		{models.RoleAdmin, "/dashboard/admin", true},
		{models.RoleAdmin, "/dashboard/admin/users", true},
		{models.RoleManager, "/dashboard/admin/users", false},
		{models.RoleEmployee, "/dashboard/admin", false},
		{models.RoleClient, "/dashboard/admin", false},

		{models.RoleAdmin, "/dashboard/mis", true},
		{models.RoleManager, "/dashboard/mis/reports", true},
		{models.RoleEmployee, "/dashboard/mis", false},
		{models.RoleClient, "/dashboard/mis", false},

		{models.RoleEmployee, "/dashboard", true},
		{models.RoleClient, "/dashboard", true},
		{models.RoleManager, "/dashboard/tickets", true},

		// unknown role never passes a restricted prefix
		{models.Role("SUPERUSER"), "/dashboard/admin", false},
		{models.Role(""), "/dashboard/mis", false},
	}

	for _, tc := range tests {
		if got := HasPermission(tc.role, tc.path); got != tc.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", tc.role, tc.path, got, tc.want)
		}
	}
}
