package entity

import "slices"

// Role is a marketplace user role carried in access tokens.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

var roles = []Role{RoleBuyer, RoleSeller, RoleAdmin}

func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return slices.Contains(roles, r)
}
