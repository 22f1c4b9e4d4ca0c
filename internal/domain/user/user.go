// Package user defines the User entity and its role and language value types.
package user

// User is an account that either owns the household (and its tasks) or
// works as a maid on assigned tasks.
//
// PasswordHash holds a bcrypt hash. It must never leave the service: DTOs
// omit it and the log redactor masks the "password" field name.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         Role
	Language     Language
	AvatarURL    *string
}

// IsOwner reports whether the user has the owner role.
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsMaid reports whether the user has the maid role.
func (u *User) IsMaid() bool {
	return u.Role == RoleMaid
}

// Clone returns a deep copy so callers cannot alias stored state.
func (u User) Clone() User {
	if u.AvatarURL != nil {
		v := *u.AvatarURL
		u.AvatarURL = &v
	}
	return u
}
