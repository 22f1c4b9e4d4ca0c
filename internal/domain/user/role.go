package user

// Role determines what a user may do with tasks.
type Role string

const (
	RoleOwner Role = "owner"
	RoleMaid  Role = "maid"
)

// IsValid returns true if the role is one of the defined constants.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleMaid:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}
