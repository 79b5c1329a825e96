package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agrilink/internal/domain"
)

// DocumentFilter selects documents. When OwnerFarmerID is set the listing
// returns that farmer's documents plus public advisory entries.
type DocumentFilter struct {
	OwnerFarmerID *string
	Category      *string
	Search        *string
	Page          Page
}

// DocumentRepository encapsulates document metadata persistence.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context, filter DocumentFilter) ([]domain.Document, int, error)
}

type documentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository instantiates the repository.
func NewDocumentRepository(pool *pgxpool.Pool) DocumentRepository {
	return &documentRepository{pool: pool}
}

const documentColumns = `id, owner_farmer_id, uploaded_by_id, title, category, file_name, mime_type, size_bytes, storage_key, created_at`

func (r *documentRepository) Create(ctx context.Context, doc *domain.Document) error {
	const query = `
        INSERT INTO documents (owner_farmer_id, uploaded_by_id, title, category, file_name, mime_type, size_bytes, storage_key)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		doc.OwnerFarmerID,
		doc.UploadedByID,
		doc.Title,
		doc.Category,
		doc.FileName,
		doc.MimeType,
		doc.SizeBytes,
		doc.StorageKey,
	).Scan(&doc.ID, &doc.CreatedAt)
}

func (r *documentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *documentRepository) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id=$1`
	var doc domain.Document
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.OwnerFarmerID,
		&doc.UploadedByID,
		&doc.Title,
		&doc.Category,
		&doc.FileName,
		&doc.MimeType,
		&doc.SizeBytes,
		&doc.StorageKey,
		&doc.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context, filter DocumentFilter) ([]domain.Document, int, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.OwnerFarmerID != nil {
		args = append(args, *filter.OwnerFarmerID)
		clauses = append(clauses, fmt.Sprintf("(owner_farmer_id=$%d OR owner_farmer_id IS NULL)", len(args)))
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
			"(LOWER(title) LIKE %s OR LOWER(file_name) LIKE %s)", placeholder, placeholder))
	}

	where := strings.Join(clauses, " AND ")

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := ClampPage(filter.Page.Number, filter.Page.Limit)
	query := fmt.Sprintf(`SELECT %s FROM documents WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		documentColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(
			&doc.ID,
			&doc.OwnerFarmerID,
			&doc.UploadedByID,
			&doc.Title,
			&doc.Category,
			&doc.FileName,
			&doc.MimeType,
			&doc.SizeBytes,
			&doc.StorageKey,
			&doc.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, doc)
	}
	return result, total, rows.Err()
}
