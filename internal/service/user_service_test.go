package service

import (
	"testing"

	"github.com/wcib/ipoportal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := &models.User{
		FullName: "Joy Wanjiru",
		Email:    "joy@example.com",
		Role:     models.RoleClient,
	}
	require.NoError(t, svc.Register(user, "s3cret-pass"))

	assert.False(t, user.ID.IsZero())
	assert.Equal(t, models.UserStatusPending, user.Status)
	assert.Equal(t, models.KYCNotStarted, user.KYCStatus)
	assert.Zero(t, user.Balance)
	assert.Equal(t, "self-registration", user.CreatedBy)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	require.NoError(t, svc.Register(&models.User{Email: "joy@example.com"}, "pass-one"))
	err := svc.Register(&models.User{Email: "joy@example.com"}, "pass-two")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	registered := &models.User{Email: "joy@example.com"}
	require.NoError(t, svc.Register(registered, "s3cret-pass"))

	user, err := svc.Authenticate("joy@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, user.LastLogin)
}

func TestAuthenticateFailures(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)
	require.NoError(t, svc.Register(&models.User{Email: "joy@example.com"}, "s3cret-pass"))

	_, err := svc.Authenticate("joy@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetUserStatus(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo)

	user := &models.User{Email: "joy@example.com"}
	require.NoError(t, svc.Register(user, "s3cret-pass"))

	require.NoError(t, svc.SetUserStatus(user.ID.Hex(), models.UserStatusSuspended))
	stored, err := userRepo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusSuspended, stored.Status)
}
