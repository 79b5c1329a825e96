package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// AppointmentFilter captures scope and allow-listed search parameters.
// FarmerID and OfficerID carry the identity scope computed by the
// authorization layer; the rest come from route query parameters.
type AppointmentFilter struct {
	FarmerID  *string
	OfficerID *string
	Statuses  []domain.AppointmentStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      Page
}

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	Update(ctx context.Context, appt *domain.Appointment) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, int, error)
	CountActiveSlot(ctx context.Context, officerID string, date time.Time, slot string) (int, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates the repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, reference_no, farmer_id, officer_id, service_id, date, time_slot, status, notes, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (reference_no, farmer_id, officer_id, service_id, date, time_slot, status, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		appt.ReferenceNo,
		appt.FarmerID,
		appt.OfficerID,
		appt.ServiceID,
		appt.Date,
		appt.TimeSlot,
		appt.Status,
		appt.Notes,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

func (r *appointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        UPDATE appointments SET officer_id=$1, service_id=$2, date=$3, time_slot=$4,
            status=$5, notes=$6, updated_at=NOW()
        WHERE id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		appt.OfficerID,
		appt.ServiceID,
		appt.Date,
		appt.TimeSlot,
		appt.Status,
		appt.Notes,
		appt.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`
	var appt domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.ReferenceNo,
		&appt.FarmerID,
		&appt.OfficerID,
		&appt.ServiceID,
		&appt.Date,
		&appt.TimeSlot,
		&appt.Status,
		&appt.Notes,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.FarmerID != nil {
		args = append(args, *filter.FarmerID)
		clauses = append(clauses, fmt.Sprintf("farmer_id=$%d", len(args)))
	}
	if filter.OfficerID != nil {
		args = append(args, *filter.OfficerID)
		clauses = append(clauses, fmt.Sprintf("officer_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		appointmentColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		if err := rows.Scan(
			&appt.ID,
			&appt.ReferenceNo,
			&appt.FarmerID,
			&appt.OfficerID,
			&appt.ServiceID,
			&appt.Date,
			&appt.TimeSlot,
			&appt.Status,
			&appt.Notes,
			&appt.CreatedAt,
			&appt.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, appt)
	}
	return result, total, rows.Err()
}

// CountActiveSlot counts non-cancelled appointments for an officer slot. The
// partial unique index on (officer_id, date, time_slot) is the hard
// guarantee; this pre-check exists for the descriptive error message.
func (r *appointmentRepository) CountActiveSlot(ctx context.Context, officerID string, date time.Time, slot string) (int, error) {
	const query = `
        SELECT COUNT(*) FROM appointments
        WHERE officer_id=$1 AND date=$2 AND time_slot=$3 AND status <> 'CANCELLED'`
	var count int
	if err := r.pool.QueryRow(ctx, query, officerID, date, slot).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
