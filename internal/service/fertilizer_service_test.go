package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/agrilink/internal/domain"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

func TestFertilizerRequestStartsPending(t *testing.T) {
	repo := newFakeFertilizerRepo()
	svc := NewFertilizerService(repo, nil)

	dist, err := svc.Request(context.Background(), farmerPrincipal("farmer-1"), DistributionInput{
		FertilizerType: " Urea ",
		QuantityKg:     50,
		LandSizeAcres:  2.5,
		CropType:       "rice",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DistributionStatusPending, dist.Status)
	assert.Equal(t, "Urea", dist.FertilizerType)
	assert.Nil(t, dist.AssignedOfficerID)
	assert.Regexp(t, `^FD-[0-9A-F]{8}$`, dist.ReferenceNo)
}

func TestFertilizerStatusFlow(t *testing.T) {
	repo := newFakeFertilizerRepo()
	svc := NewFertilizerService(repo, nil)

	dist, err := svc.Request(context.Background(), farmerPrincipal("farmer-1"), DistributionInput{
		FertilizerType: "Urea", QuantityKg: 50,
	})
	require.NoError(t, err)

	// PENDING cannot jump straight to DISTRIBUTED
	_, err = svc.UpdateStatus(context.Background(), officerPrincipal("officer-1"), dist.ID, domain.DistributionStatusDistributed, "")
	assertValidationFailed(t, err, "invalid status transition")

	approved, err := svc.UpdateStatus(context.Background(), officerPrincipal("officer-1"), dist.ID, domain.DistributionStatusApproved, "stock available")
	require.NoError(t, err)
	assert.Equal(t, domain.DistributionStatusApproved, approved.Status)
	require.NotNil(t, approved.AssignedOfficerID)
	assert.Equal(t, "officer-1", *approved.AssignedOfficerID)
	assert.Equal(t, "stock available", approved.ReviewNotes)

	done, err := svc.UpdateStatus(context.Background(), officerPrincipal("officer-1"), dist.ID, domain.DistributionStatusDistributed, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DistributionStatusDistributed, done.Status)

	_, err = svc.UpdateStatus(context.Background(), officerPrincipal("officer-1"), dist.ID, domain.DistributionStatusApproved, "")
	assertValidationFailed(t, err, "invalid status transition")
}

func TestFertilizerGetBlocksOtherFarmers(t *testing.T) {
	repo := newFakeFertilizerRepo()
	svc := NewFertilizerService(repo, nil)

	dist, err := svc.Request(context.Background(), farmerPrincipal("farmer-1"), DistributionInput{
		FertilizerType: "Urea", QuantityKg: 50,
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), farmerPrincipal("farmer-2"), dist.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)

	got, err := svc.Get(context.Background(), officerPrincipal("officer-1"), dist.ID)
	require.NoError(t, err)
	assert.Equal(t, dist.ID, got.ID)
}

func TestFertilizerListScoping(t *testing.T) {
	repo := newFakeFertilizerRepo()
	svc := NewFertilizerService(repo, nil)

	for _, farmer := range []string{"farmer-a", "farmer-b"} {
		_, err := svc.Request(context.Background(), farmerPrincipal(farmer), DistributionInput{
			FertilizerType: "Urea", QuantityKg: 25,
		})
		require.NoError(t, err)
	}

	_, total, err := svc.List(context.Background(), farmerPrincipal("farmer-a"), DistributionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, total, err = svc.List(context.Background(), officerPrincipal("officer-1"), DistributionQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
