package domain

import "fmt"

type Role string

const (
	RoleReadonly Role = "readonly"
	RoleEditor   Role = "editor"
	RoleAdmin    Role = "admin"
)

var _roleRanks = map[Role]int{
	RoleReadonly: 1,
	RoleEditor:   2,
	RoleAdmin:    3,
}

func Roles() []Role {
	return []Role{RoleReadonly, RoleEditor, RoleAdmin}
}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role '%s'", value)
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := _roleRanks[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// IsEditor is true for every role allowed to write records, admins included.
func (r Role) IsEditor() bool {
	return r == RoleEditor || r == RoleAdmin
}

// Allows reports whether r grants at least the privileges of required.
func (r Role) Allows(required Role) bool {
	return r.IsValid() && _roleRanks[r] >= _roleRanks[required]
}
