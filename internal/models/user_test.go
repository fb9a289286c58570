package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes the email domain", func(t *testing.T) {
		user, err := NewUser("  Test@GMAIL.COM ", "test123456", "Test Name")
		require.NoError(t, err)
		assert.Equal(t, "Test@gmail.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
	})

	t.Run("hashes the password", func(t *testing.T) {
		user, err := NewUser("test@gmail.com", "test123456", "")
		require.NoError(t, err)
		assert.NotEqual(t, "test123456", user.Password)
		assert.True(t, user.CheckPassword("test123456"))
		assert.False(t, user.CheckPassword("wrong"))
	})

	t.Run("rejects an empty email", func(t *testing.T) {
		user, err := NewUser("   ", "test123456", "")
		assert.ErrorIs(t, err, ErrEmailRequired)
		assert.Nil(t, user)
	})
}

func TestNormalizeEmail(t *testing.T) {
	testCases := map[string]string{
		"a@B.com":     "a@b.com",
		"Mixed@Case":  "Mixed@case",
		"no-at-sign":  "no-at-sign",
		"a@b@EXAMPLE": "a@b@example",
	}
	for in, expected := range testCases {
		assert.Equal(t, expected, NormalizeEmail(in), in)
	}
}

func TestUserRole(t *testing.T) {
	user := &User{}
	assert.Equal(t, RoleUser, user.Role())
	user.IsStaff = true
	assert.Equal(t, RoleAdmin, user.Role())
}

func TestSetPassword(t *testing.T) {
	user, err := NewUser("test@gmail.com", "original1", "")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("changed22"))
	assert.True(t, user.CheckPassword("changed22"))
	assert.False(t, user.CheckPassword("original1"))
}
