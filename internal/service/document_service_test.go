package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

func TestUploadOwnershipByRole(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	owned, err := svc.Upload(context.Background(), farmerPrincipal("farmer-1"), DocumentInput{
		Title: "Land deed", FileName: "deed.pdf", StorageKey: "docs/deed.pdf",
	})
	require.NoError(t, err)
	require.NotNil(t, owned.OwnerFarmerID)
	assert.Equal(t, "farmer-1", *owned.OwnerFarmerID)

	public, err := svc.Upload(context.Background(), officerPrincipal("officer-1"), DocumentInput{
		Title: "Paddy cultivation guide", FileName: "guide.pdf", StorageKey: "docs/guide.pdf",
	})
	require.NoError(t, err)
	assert.Nil(t, public.OwnerFarmerID)
	assert.Equal(t, "officer-1", public.UploadedByID)
}

func TestListShowsOwnPlusPublic(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	_, err := svc.Upload(context.Background(), farmerPrincipal("farmer-a"), DocumentInput{
		Title: "Deed A", FileName: "a.pdf", StorageKey: "docs/a.pdf",
	})
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), farmerPrincipal("farmer-b"), DocumentInput{
		Title: "Deed B", FileName: "b.pdf", StorageKey: "docs/b.pdf",
	})
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), officerPrincipal("officer-1"), DocumentInput{
		Title: "Advisory", FileName: "adv.pdf", StorageKey: "docs/adv.pdf",
	})
	require.NoError(t, err)

	items, total, err := svc.List(context.Background(), farmerPrincipal("farmer-a"), DocumentQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, doc := range items {
		if doc.OwnerFarmerID != nil {
			assert.Equal(t, "farmer-a", *doc.OwnerFarmerID)
		}
	}

	_, total, err = svc.List(context.Background(), officerPrincipal("officer-1"), DocumentQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestGetBlocksOtherFarmersOwnedDocs(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	owned, err := svc.Upload(context.Background(), farmerPrincipal("farmer-a"), DocumentInput{
		Title: "Deed", FileName: "deed.pdf", StorageKey: "docs/deed.pdf",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), farmerPrincipal("farmer-b"), owned.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	public, err := svc.Upload(context.Background(), officerPrincipal("officer-1"), DocumentInput{
		Title: "Advisory", FileName: "adv.pdf", StorageKey: "docs/adv.pdf",
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), farmerPrincipal("farmer-b"), public.ID)
	require.NoError(t, err)
	assert.Equal(t, public.ID, got.ID)
}

func TestDeleteByUploaderOrOfficer(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	doc, err := svc.Upload(context.Background(), farmerPrincipal("farmer-a"), DocumentInput{
		Title: "Deed", FileName: "deed.pdf", StorageKey: "docs/deed.pdf",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), farmerPrincipal("farmer-b"), doc.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.Delete(context.Background(), officerPrincipal("officer-1"), doc.ID))

	_, err = svc.Get(context.Background(), farmerPrincipal("farmer-a"), doc.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
