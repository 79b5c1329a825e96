package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agrilink/internal/config"
	"github.com/spec-kit/agrilink/internal/domain"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    4, // MinCost, keeps hashing fast in tests
	}}
}

func TestSignupCreatesFarmer(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	user, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Nimal",
		LastName:  "Perera",
		Email:     "nimal@example.com",
		Password:  "harvest-2026",
		District:  "Kandy",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleFarmer, user.Role)
	assert.True(t, user.Active)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "harvest-2026", user.PasswordHash)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	input := SignupInput{FirstName: "Nimal", Email: "nimal@example.com", Password: "harvest-2026"}
	_, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), input)
	require.Error(t, err)
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", de.Code)
	assert.Equal(t, "email already registered", de.Message)
}

func TestLoginIssuesToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	_, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Nimal", Email: "nimal@example.com", Password: "harvest-2026",
	})
	require.NoError(t, err)

	user, token, expiresAt, err := svc.Login(context.Background(), "nimal@example.com", "harvest-2026")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.SubjectID)
	assert.Equal(t, domain.RoleFarmer, claims.Role)
}

// Unknown email, wrong password and a deactivated account must be
// indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	_, err := svc.Signup(context.Background(), SignupInput{
		FirstName: "Nimal", Email: "nimal@example.com", Password: "harvest-2026",
	})
	require.NoError(t, err)

	inactive, err := users.GetByEmail(context.Background(), "nimal@example.com")
	require.NoError(t, err)
	deactivated := *inactive
	deactivated.ID = ""
	deactivated.Email = "gone@example.com"
	deactivated.Active = false
	users.add(deactivated)

	cases := []struct{ email, password string }{
		{"unknown@example.com", "harvest-2026"},
		{"nimal@example.com", "wrong-password"},
		{"gone@example.com", "harvest-2026"},
	}
	for _, tc := range cases {
		_, _, _, err := svc.Login(context.Background(), tc.email, tc.password)
		require.Error(t, err, "email %s", tc.email)
		de := apperrors.ToDomainError(err)
		assert.Equal(t, "UNAUTHORIZED", de.Code)
		assert.Equal(t, "Invalid credentials", de.Message)
	}
}
