package services

import (
	"testing"

	"watchparty_backend/internal/email"
	"watchparty_backend/internal/models"
	"watchparty_backend/internal/repositories"
	"watchparty_backend/internal/services/dto"
	"watchparty_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() AuthService {
	return NewAuthService(
		repositories.NewUserRepository(),
		repositories.NewMemberRepository(),
		email.NoopProvider{},
	)
}

func registerRequest(emailAddr string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:     emailAddr,
		Password:  "correct-horse",
		FirstName: "Casey",
		LastName:  "Tester",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService()

	registered, err := svc.Register(db, registerRequest("casey@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "Casey Tester", registered.Member.FullName)

	// The stored hash is never the raw password.
	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "casey@example.com").Error)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	loggedIn, err := svc.Login(db, &dto.LoginRequest{Email: "casey@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.AccessToken)
	assert.Equal(t, registered.Member.ID, loggedIn.Member.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService()

	_, err := svc.Register(db, registerRequest("casey@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(db, registerRequest("casey@example.com"))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	// The failed register must not leave a dangling member row.
	var memberCount int64
	require.NoError(t, db.Model(&models.Member{}).Count(&memberCount).Error)
	assert.EqualValues(t, 1, memberCount)
}

func TestLoginWrongCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService()

	_, err := svc.Register(db, registerRequest("casey@example.com"))
	require.NoError(t, err)

	for _, req := range []*dto.LoginRequest{
		{Email: "casey@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "correct-horse"},
	} {
		_, err := svc.Login(db, req)
		require.Error(t, err)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.HTTPCode, "wrong password and unknown email look the same")
	}
}

func TestRegisterWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService()

	req := registerRequest("casey@example.com")
	req.Password = "short"
	_, err := svc.Register(db, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}
