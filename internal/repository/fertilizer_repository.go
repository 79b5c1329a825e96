package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// DistributionFilter captures scope and allow-listed search parameters for
// fertilizer distribution requests.
type DistributionFilter struct {
	FarmerID          *string
	AssignedOfficerID *string
	Statuses          []domain.DistributionStatus
	FertilizerType    *string
	Page              Page
}

// FertilizerRepository encapsulates distribution request persistence.
type FertilizerRepository interface {
	Create(ctx context.Context, dist *domain.FertilizerDistribution) error
	Update(ctx context.Context, dist *domain.FertilizerDistribution) error
	GetByID(ctx context.Context, id string) (*domain.FertilizerDistribution, error)
	List(ctx context.Context, filter DistributionFilter) ([]domain.FertilizerDistribution, int, error)
}

type fertilizerRepository struct {
	pool *pgxpool.Pool
}

// NewFertilizerRepository instantiates the repository.
func NewFertilizerRepository(pool *pgxpool.Pool) FertilizerRepository {
	return &fertilizerRepository{pool: pool}
}

const distributionColumns = `id, reference_no, farmer_id, assigned_officer_id, fertilizer_type, quantity_kg, land_size_acres, crop_type, status, review_notes, created_at, updated_at`

func (r *fertilizerRepository) Create(ctx context.Context, dist *domain.FertilizerDistribution) error {
	const query = `
        INSERT INTO fertilizer_distributions (reference_no, farmer_id, assigned_officer_id, fertilizer_type, quantity_kg, land_size_acres, crop_type, status, review_notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		dist.ReferenceNo,
		dist.FarmerID,
		dist.AssignedOfficerID,
		dist.FertilizerType,
		dist.QuantityKg,
		dist.LandSizeAcres,
		dist.CropType,
		dist.Status,
		dist.ReviewNotes,
	).Scan(&dist.ID, &dist.CreatedAt, &dist.UpdatedAt)
}

func (r *fertilizerRepository) Update(ctx context.Context, dist *domain.FertilizerDistribution) error {
	const query = `
        UPDATE fertilizer_distributions SET assigned_officer_id=$1, fertilizer_type=$2,
            quantity_kg=$3, land_size_acres=$4, crop_type=$5, status=$6, review_notes=$7, updated_at=NOW()
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		dist.AssignedOfficerID,
		dist.FertilizerType,
		dist.QuantityKg,
		dist.LandSizeAcres,
		dist.CropType,
		dist.Status,
		dist.ReviewNotes,
		dist.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *fertilizerRepository) GetByID(ctx context.Context, id string) (*domain.FertilizerDistribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM fertilizer_distributions WHERE id=$1`
	var dist domain.FertilizerDistribution
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&dist.ID,
		&dist.ReferenceNo,
		&dist.FarmerID,
		&dist.AssignedOfficerID,
		&dist.FertilizerType,
		&dist.QuantityKg,
		&dist.LandSizeAcres,
		&dist.CropType,
		&dist.Status,
		&dist.ReviewNotes,
		&dist.CreatedAt,
		&dist.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dist, nil
}

func (r *fertilizerRepository) List(ctx context.Context, filter DistributionFilter) ([]domain.FertilizerDistribution, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.FarmerID != nil {
		args = append(args, *filter.FarmerID)
		clauses = append(clauses, fmt.Sprintf("farmer_id=$%d", len(args)))
	}
	if filter.AssignedOfficerID != nil {
		args = append(args, *filter.AssignedOfficerID)
		clauses = append(clauses, fmt.Sprintf("assigned_officer_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.FertilizerType != nil && strings.TrimSpace(*filter.FertilizerType) != "" {
		args = append(args, strings.TrimSpace(*filter.FertilizerType))
		clauses = append(clauses, fmt.Sprintf("fertilizer_type=$%d", len(args)))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fertilizer_distributions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM fertilizer_distributions WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		distributionColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.FertilizerDistribution
	for rows.Next() {
		var dist domain.FertilizerDistribution
		if err := rows.Scan(
			&dist.ID,
			&dist.ReferenceNo,
			&dist.FarmerID,
			&dist.AssignedOfficerID,
			&dist.FertilizerType,
			&dist.QuantityKg,
			&dist.LandSizeAcres,
			&dist.CropType,
			&dist.Status,
			&dist.ReviewNotes,
			&dist.CreatedAt,
			&dist.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, dist)
	}
	return result, total, rows.Err()
}
