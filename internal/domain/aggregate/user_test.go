package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T) *User {
	t.Helper()

	user, err := NewUserWithPasswordAndRole(
		"Sita Thapa", "  Sita@Example.COM ", "9800000000", "Pokhara", "s3cret-password", RoleProvider)
	require.NoError(t, err)
	return user
}

func TestNewUserNormalizesEmailAndHashesPassword(t *testing.T) {
	user := newTestUser(t)

	assert.Equal(t, "sita@example.com", user.Email())
	assert.Equal(t, RoleProvider, user.Role())
	assert.True(t, user.IsActive())

	require.NoError(t, user.VerifyPassword("s3cret-password"))
	assert.Error(t, user.VerifyPassword("wrong-password"))
}

func TestNewUserRejectsShortPassword(t *testing.T) {
	_, err := NewUserWithPasswordAndRole("Sita", "sita@example.com", "", "", "short", RoleCustomer)
	assert.Error(t, err)
}

func TestNewUserRejectsUnknownRole(t *testing.T) {
	_, err := NewUserWithPasswordAndRole("Sita", "sita@example.com", "", "", "s3cret-password", UserRole("Superuser"))
	assert.Error(t, err)
}

func TestChangePasswordRequiresOldPassword(t *testing.T) {
	user := newTestUser(t)

	err := user.ChangePassword("wrong-password", "another-password")
	assert.Error(t, err)

	require.NoError(t, user.ChangePassword("s3cret-password", "another-password"))
	require.NoError(t, user.VerifyPassword("another-password"))
	assert.Error(t, user.VerifyPassword("s3cret-password"))
}

func TestDeactivatedUserCannotLogIn(t *testing.T) {
	user := newTestUser(t)

	require.NoError(t, user.RecordLogin())
	require.NoError(t, user.Deactivate())
	assert.False(t, user.IsActive())

	assert.Error(t, user.RecordLogin())
}

func TestNewUserFromHistoryRestoresState(t *testing.T) {
	user := newTestUser(t)
	require.NoError(t, user.UpdateProfile("Sita T.", "9811111111", "Lakeside"))

	restored, err := NewUserFromHistory(user.GetUncommittedEvents())
	require.NoError(t, err)

	assert.Equal(t, user.GetID(), restored.GetID())
	assert.Equal(t, "Sita T.", restored.Name())
	assert.Equal(t, "9811111111", restored.Phone())
	require.NoError(t, restored.VerifyPassword("s3cret-password"))
}
