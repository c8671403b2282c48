package usecase

import (
	"testing"

	"kirana-connect/internal/data/repository"
	"kirana-connect/internal/dto/request"
	"kirana-connect/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Asha Sharma",
		Email:    email,
		Password: "super-secret",
		Role:     "customer",
	}
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(t.Context(), registerReq("asha@example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)

	// The token round-trips through the verifier used by the middleware
	claims, err := utils.ParseToken(resp.Token, env.config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims.Role)

	userID, err := uuid.Parse(claims.Subject)
	require.NoError(t, err)

	me, err := env.auth.Identify(t.Context(), userID)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, me.ID)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	req := registerReq("asha@example.com")
	req.Password = "short"

	_, err := env.auth.Register(t.Context(), req)
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(t.Context(), registerReq("Asha@Example.com"))
	require.NoError(t, err)

	_, err = env.auth.Register(t.Context(), registerReq("asha@example.com"))
	require.ErrorIs(t, err, repository.ErrEmailExists)
}

func TestLoginAfterRegister(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(t.Context(), registerReq("asha@example.com"))
	require.NoError(t, err)

	resp, err := env.auth.Login(t.Context(), &request.LoginRequest{
		Email:    "ASHA@example.com", // lookup is case-insensitive
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Register(t.Context(), registerReq("asha@example.com"))
	require.NoError(t, err)

	_, unknownErr := env.auth.Login(t.Context(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "super-secret",
	})
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongErr := env.auth.Login(t.Context(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	// Same message either way, no account enumeration
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestIdentifyUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Identify(t.Context(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
