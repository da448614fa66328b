package user

// Resource is the name used for users in errors and logs.
const Resource = "User"

// User represents a user entity in the system.
type User struct {
	ID       int64  // ID is assigned by the store, unique and increasing
	Name     string // Name is the full name of the user
	Username string // Username is the handle shown next to the name
	Email    string // Email is the contact address of the user
}

// Patch is a partial update of a User. Nil fields are left untouched.
type Patch struct {
	Name     *string
	Username *string
	Email    *string
}

// Apply returns u with every non-nil field of p written over it.
func (p Patch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
