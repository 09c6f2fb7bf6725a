package model

import "time"

// Role is the closed set of account roles. Behavior that varies by actor
// role dispatches on this type rather than raw strings.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// HomeRoute returns the client route a user of this role lands on.
// Used by the route guard when an authenticated user hits a surface
// their role is not allowed to see.
func (r Role) HomeRoute() string {
	switch r {
	case RoleTeacher:
		return "/teacher-panel"
	case RoleAdmin:
		return "/admin"
	default:
		return "/dashboard"
	}
}

// User represents a registered account.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns the wire shape of the user, never including the
// password hash. This is the `user` object of the auth endpoints.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// SignupRequest is the payload for POST /api/user/signup.
// All field violations are validated together and reported at once.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     Role   `json:"role" binding:"omitempty,oneof=student teacher admin"`
}

// LoginRequest is the payload for POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}
