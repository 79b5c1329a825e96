package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// ServiceFilter selects catalog entries. ActiveOnly is forced on for the
// public listing; officers may list inactive entries too.
type ServiceFilter struct {
	ActiveOnly bool
	Category   *string
	Search     *string
	Page       Page
}

// ServiceRepository encapsulates the services catalog.
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.ServiceOffering) error
	Update(ctx context.Context, svc *domain.ServiceOffering) error
	GetByID(ctx context.Context, id string) (*domain.ServiceOffering, error)
	List(ctx context.Context, filter ServiceFilter) ([]domain.ServiceOffering, int, error)
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository instantiates the repository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

const serviceColumns = `id, name, description, category, is_active, created_at, updated_at`

func (r *serviceRepository) Create(ctx context.Context, svc *domain.ServiceOffering) error {
	const query = `
        INSERT INTO services (name, description, category, is_active)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		svc.Name,
		svc.Description,
		svc.Category,
		svc.IsActive,
	).Scan(&svc.ID, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *serviceRepository) Update(ctx context.Context, svc *domain.ServiceOffering) error {
	const query = `
        UPDATE services SET name=$1, description=$2, category=$3, is_active=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		svc.Name,
		svc.Description,
		svc.Category,
		svc.IsActive,
		svc.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.ServiceOffering, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id=$1`
	var svc domain.ServiceOffering
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Category,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) List(ctx context.Context, filter ServiceFilter) ([]domain.ServiceOffering, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ActiveOnly {
		clauses = append(clauses, "is_active=TRUE")
	}
	if filter.Category != nil && strings.TrimSpace(*filter.Category) != "" {
		args = append(args, strings.TrimSpace(*filter.Category))
		clauses = append(clauses, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(name) LIKE %s OR LOWER(description) LIKE %s)", placeholder, placeholder))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM services WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		serviceColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.ServiceOffering
	for rows.Next() {
		var svc domain.ServiceOffering
		if err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.Category,
			&svc.IsActive,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, svc)
	}
	return result, total, rows.Err()
}
