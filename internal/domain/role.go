package domain

// RoleTag enumerates the console actor categories.
type RoleTag string

const (
	RoleChurchAdmin RoleTag = "church-admin"
	RoleMember      RoleTag = "member"
	RoleSuperAdmin  RoleTag = "super-admin"
)

// DefaultChurchName is shown for roles scoped to a single congregation.
const DefaultChurchName = "Grace Community Church"

// UserRole identifies the simulated actor of a console session.
type UserRole struct {
	Tag        RoleTag `json:"role"`
	Name       string  `json:"name"`
	ChurchName string  `json:"churchName,omitempty"`
}

// ChurchAdminRole returns the fixed church administrator identity.
func ChurchAdminRole() *UserRole {
	return &UserRole{Tag: RoleChurchAdmin, Name: "John Admin", ChurchName: DefaultChurchName}
}

// MemberRole returns the fixed member identity.
func MemberRole() *UserRole {
	return &UserRole{Tag: RoleMember, Name: "Jane Member", ChurchName: DefaultChurchName}
}

// SuperAdminRole returns the fixed platform administrator identity.
func SuperAdminRole() *UserRole {
	return &UserRole{Tag: RoleSuperAdmin, Name: "Super Admin"}
}

// SameRole reports whether two optional roles are equal.
func SameRole(a, b *UserRole) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
