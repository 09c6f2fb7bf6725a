package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleHomeRoute(t *testing.T) {
	assert.Equal(t, "/dashboard", RoleStudent.HomeRoute())
	assert.Equal(t, "/teacher-panel", RoleTeacher.HomeRoute())
	assert.Equal(t, "/admin", RoleAdmin.HomeRoute())

	// Unknown roles fall back to the student landing page.
	assert.Equal(t, "/dashboard", Role("superuser").HomeRoute())
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("root").Valid())
}

func TestUserPublicOmitsPasswordHash(t *testing.T) {
	u := User{ID: 3, Name: "Ada", Email: "ada@example.com", PasswordHash: "secret", Role: RoleStudent}

	pub := u.Public()
	assert.Equal(t, 3, pub["id"])
	assert.Equal(t, "Ada", pub["name"])
	assert.Equal(t, "ada@example.com", pub["email"])
	assert.Equal(t, RoleStudent, pub["role"])
	assert.NotContains(t, pub, "password_hash")
	assert.NotContains(t, pub, "password")
}
