package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agrilink/internal/domain"
)

func TestListOfficersOnlyActive(t *testing.T) {
	users := newFakeUserRepo()
	seedOfficer(users, "officer-1")
	users.add(domain.User{ID: "officer-2", Role: domain.RoleOfficer, Active: false, Email: "o2@gov.example"})
	users.add(domain.User{ID: "farmer-1", Role: domain.RoleFarmer, Active: true, Email: "f1@example.com"})
	svc := NewDirectoryService(users)

	items, total, err := svc.ListOfficers(context.Background(), DirectoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "officer-1", items[0].ID)
}

func TestListFarmersIncludesInactive(t *testing.T) {
	users := newFakeUserRepo()
	seedOfficer(users, "officer-1")
	users.add(domain.User{ID: "farmer-1", Role: domain.RoleFarmer, Active: true, Email: "f1@example.com"})
	users.add(domain.User{ID: "farmer-2", Role: domain.RoleFarmer, Active: false, Email: "f2@example.com"})
	svc := NewDirectoryService(users)

	_, total, err := svc.ListFarmers(context.Background(), DirectoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
