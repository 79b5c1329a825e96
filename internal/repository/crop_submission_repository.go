package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// SubmissionFilter captures scope and allow-listed search parameters for
// crop submissions.
type SubmissionFilter struct {
	FarmerID          *string
	AssignedOfficerID *string
	Statuses          []domain.SubmissionStatus
	CropType          *string
	Search            *string
	Page              Page
}

// CropSubmissionRepository encapsulates submission persistence.
type CropSubmissionRepository interface {
	Create(ctx context.Context, sub *domain.CropSubmission) error
	Update(ctx context.Context, sub *domain.CropSubmission) error
	GetByID(ctx context.Context, id string) (*domain.CropSubmission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]domain.CropSubmission, int, error)
}

type cropSubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewCropSubmissionRepository instantiates the repository.
func NewCropSubmissionRepository(pool *pgxpool.Pool) CropSubmissionRepository {
	return &cropSubmissionRepository{pool: pool}
}

const submissionColumns = `id, reference_no, farmer_id, assigned_officer_id, crop_type, variety, quantity, unit, harvest_date, status, review_notes, created_at, updated_at`

func (r *cropSubmissionRepository) Create(ctx context.Context, sub *domain.CropSubmission) error {
	const query = `
        INSERT INTO crop_submissions (reference_no, farmer_id, assigned_officer_id, crop_type, variety, quantity, unit, harvest_date, status, review_notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		sub.ReferenceNo,
		sub.FarmerID,
		sub.AssignedOfficerID,
		sub.CropType,
		sub.Variety,
		sub.Quantity,
		sub.Unit,
		sub.HarvestDate,
		sub.Status,
		sub.ReviewNotes,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *cropSubmissionRepository) Update(ctx context.Context, sub *domain.CropSubmission) error {
	const query = `
        UPDATE crop_submissions SET assigned_officer_id=$1, crop_type=$2, variety=$3,
            quantity=$4, unit=$5, harvest_date=$6, status=$7, review_notes=$8, updated_at=NOW()
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		sub.AssignedOfficerID,
		sub.CropType,
		sub.Variety,
		sub.Quantity,
		sub.Unit,
		sub.HarvestDate,
		sub.Status,
		sub.ReviewNotes,
		sub.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cropSubmissionRepository) GetByID(ctx context.Context, id string) (*domain.CropSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM crop_submissions WHERE id=$1`
	var sub domain.CropSubmission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID,
		&sub.ReferenceNo,
		&sub.FarmerID,
		&sub.AssignedOfficerID,
		&sub.CropType,
		&sub.Variety,
		&sub.Quantity,
		&sub.Unit,
		&sub.HarvestDate,
		&sub.Status,
		&sub.ReviewNotes,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *cropSubmissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]domain.CropSubmission, int, error) {
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
	if filter.CropType != nil && strings.TrimSpace(*filter.CropType) != "" {
		args = append(args, strings.TrimSpace(*filter.CropType))
		clauses = append(clauses, fmt.Sprintf("crop_type=$%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(crop_type) LIKE %s OR LOWER(variety) LIKE %s OR LOWER(reference_no) LIKE %s)",
			placeholder, placeholder, placeholder))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM crop_submissions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM crop_submissions WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		submissionColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.CropSubmission
	for rows.Next() {
		var sub domain.CropSubmission
		if err := rows.Scan(
			&sub.ID,
			&sub.ReferenceNo,
			&sub.FarmerID,
			&sub.AssignedOfficerID,
			&sub.CropType,
			&sub.Variety,
			&sub.Quantity,
			&sub.Unit,
			&sub.HarvestDate,
			&sub.Status,
			&sub.ReviewNotes,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, sub)
	}
	return result, total, rows.Err()
}
