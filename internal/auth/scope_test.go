package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agrilink/internal/domain"
)

func TestScopeForFarmerAlwaysPinned(t *testing.T) {
	p := &Principal{SubjectID: "farmer-1", Role: domain.RoleFarmer}

	// AssignedOnly is an officer-only modifier and must not widen a farmer's view.
	for _, opts := range []ScopeOptions{{}, {AssignedOnly: true}} {
		scope, err := ScopeFor(p, opts)
		require.NoError(t, err)
		require.NotNil(t, scope.FarmerID)
		assert.Equal(t, "farmer-1", *scope.FarmerID)
		assert.Nil(t, scope.OfficerID)
	}
}

func TestScopeForOfficerUnrestricted(t *testing.T) {
	p := &Principal{SubjectID: "officer-1", Role: domain.RoleOfficer}

	scope, err := ScopeFor(p, ScopeOptions{})
	require.NoError(t, err)
	assert.Nil(t, scope.FarmerID)
	assert.Nil(t, scope.OfficerID)
}

func TestScopeForOfficerAssignedOnly(t *testing.T) {
	p := &Principal{SubjectID: "officer-1", Role: domain.RoleOfficer}

	scope, err := ScopeFor(p, ScopeOptions{AssignedOnly: true})
	require.NoError(t, err)
	require.NotNil(t, scope.OfficerID)
	assert.Equal(t, "officer-1", *scope.OfficerID)
	assert.Nil(t, scope.FarmerID)
}

func TestScopeForRejectsUnknownRole(t *testing.T) {
	_, err := ScopeFor(&Principal{SubjectID: "x", Role: domain.Role("admin")}, ScopeOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = ScopeFor(nil, ScopeOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestCanMutateOwned(t *testing.T) {
	farmer := &Principal{SubjectID: "farmer-1", Role: domain.RoleFarmer}
	officer := &Principal{SubjectID: "officer-1", Role: domain.RoleOfficer}

	assert.True(t, CanMutateOwned(farmer, "farmer-1"))
	assert.False(t, CanMutateOwned(farmer, "farmer-2"))
	assert.True(t, CanMutateOwned(officer, "farmer-2"))
	assert.False(t, CanMutateOwned(nil, "farmer-1"))
}
