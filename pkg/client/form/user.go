package form

import "user-post-service/pkg/client"

// User is the create/edit user form.
type User struct {
	Name     string `form:"name" validate:"notblank"`
	Username string `form:"username" validate:"notblank"`
	Email    string `form:"email" validate:"notblank,simple_email"`

	editing bool
}

var userMessages = map[string]map[string]string{
	"name":     {"notblank": "Name is required"},
	"username": {"notblank": "Username is required"},
	"email": {
		"notblank":     "Email is required",
		"simple_email": "Please enter a valid email address",
	},
}

// NewUser returns an empty form, or one prefilled from u for editing.
func NewUser(u *client.User) *User {
	if u == nil {
		return &User{}
	}
	return &User{Name: u.Name, Username: u.Username, Email: u.Email, editing: true}
}

// Editing reports whether the form edits an existing user.
func (f *User) Editing() bool { return f.editing }

// Validate returns nil when the form can be submitted.
func (f *User) Validate() Errors {
	return check(f, userMessages)
}

// CreateData is the body submitted for a new user.
func (f *User) CreateData() client.CreateUserData {
	return client.CreateUserData{Name: f.Name, Username: f.Username, Email: f.Email}
}

// UpdateData submits all three fields.
func (f *User) UpdateData() client.UpdateUserData {
	name, username, email := f.Name, f.Username, f.Email
	return client.UpdateUserData{Name: &name, Username: &username, Email: &email}
}

// ValidateField checks one field in isolation, for inline feedback.
func (f *User) ValidateField(field, value string) error {
	probe := *f
	switch field {
	case "name":
		probe.Name = value
	case "username":
		probe.Username = value
	case "email":
		probe.Email = value
	}
	if msg, ok := probe.Validate()[field]; ok {
		return fieldError(msg)
	}
	return nil
}
