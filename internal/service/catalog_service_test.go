package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

func TestCatalogPublicListIsActiveOnly(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), CatalogInput{Name: "Soil testing", IsActive: true})
	require.NoError(t, err)
	hidden, err := svc.Create(context.Background(), CatalogInput{Name: "Legacy subsidy", IsActive: false})
	require.NoError(t, err)

	items, total, err := svc.List(context.Background(), CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Soil testing", items[0].Name)

	_, total, err = svc.List(context.Background(), CatalogQuery{IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	_ = hidden
}

func TestCatalogDeactivateHidesEntry(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	created, err := svc.Create(context.Background(), CatalogInput{Name: "Soil testing", IsActive: true})
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	_, total, err := svc.List(context.Background(), CatalogQuery{})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestCatalogUpdateTrimsFields(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewCatalogService(repo, nil, zap.NewNop())

	created, err := svc.Create(context.Background(), CatalogInput{Name: "Soil testing", IsActive: true})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, CatalogInput{
		Name:     "  Soil and water testing  ",
		Category: " advisory ",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Soil and water testing", updated.Name)
	assert.Equal(t, "advisory", updated.Category)
}

func TestCatalogGetUnknownID(t *testing.T) {
	svc := NewCatalogService(newFakeServiceRepo(), nil, zap.NewNop())

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
