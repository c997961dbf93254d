package model

// Role is derived from the login email
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User is the acting user of a session
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session pairs a user with its opaque token. Token presence is the only
// authentication signal; it is never validated.
type Session struct {
	User  User
	Token string
}
