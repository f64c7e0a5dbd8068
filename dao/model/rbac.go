package model

// Permission is a named capability checked before mutating operations.
type Permission string

const (
	// PermUpdateOwnProjects allows reviewing applications and editing needs
	// on projects the principal owns.
	PermUpdateOwnProjects Permission = "project:update:own"
	// PermUpdateAnyProject allows staff to review applications on any
	// dashboard project regardless of ownership.
	PermUpdateAnyProject Permission = "project:update:any"
	// PermManageUsers allows role administration.
	PermManageUsers Permission = "user:manage"
)

var rolePermissions = map[Role][]Permission{
	RoleGuest: {},
	RoleUser:  {PermUpdateOwnProjects},
	RoleAdmin: {PermUpdateOwnProjects, PermUpdateAnyProject, PermManageUsers},
}

// HasPermission resolves whether a role holds a named permission.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}
