package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/repository"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// DocumentService coordinates document metadata workflows. The bytes
// themselves live behind the storage key; only metadata passes through here.
type DocumentService struct {
	documents repository.DocumentRepository
}

// NewDocumentService constructs the service.
func NewDocumentService(documents repository.DocumentRepository) *DocumentService {
	return &DocumentService{documents: documents}
}

// DocumentInput describes an upload payload.
type DocumentInput struct {
	Title      string
	Category   string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
}

// DocumentQuery carries allow-listed listing parameters.
type DocumentQuery struct {
	Category *string
	Search   *string
	Page     repository.Page
}

// Upload records document metadata. Farmer uploads are owned by the farmer;
// officer uploads are public advisory documents.
func (s *DocumentService) Upload(ctx context.Context, p *auth.Principal, input DocumentInput) (*domain.Document, error) {
	doc := &domain.Document{
		UploadedByID: p.SubjectID,
		Title:        strings.TrimSpace(input.Title),
		Category:     strings.TrimSpace(input.Category),
		FileName:     input.FileName,
		MimeType:     input.MimeType,
		SizeBytes:    input.SizeBytes,
		StorageKey:   input.StorageKey,
	}
	if p.Role == domain.RoleFarmer {
		owner := p.SubjectID
		doc.OwnerFarmerID = &owner
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, apperrors.MapError(err)
	}
	return doc, nil
}

// List returns documents visible to the identity: a farmer sees their own
// plus public advisory entries, an officer sees everything.
func (s *DocumentService) List(ctx context.Context, p *auth.Principal, query DocumentQuery) ([]domain.Document, int, error) {
	scope, err := auth.ScopeFor(p, auth.ScopeOptions{})
	if err != nil {
		return nil, 0, apperrors.NewInternalError(err)
	}
	filter := repository.DocumentFilter{
		OwnerFarmerID: scope.FarmerID,
		Category:      query.Category,
		Search:        query.Search,
		Page:          query.Page,
	}
	items, total, err := s.documents.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a document the identity may see.
func (s *DocumentService) Get(ctx context.Context, p *auth.Principal, id string) (*domain.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("document", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if p.Role == domain.RoleFarmer && doc.OwnerFarmerID != nil && *doc.OwnerFarmerID != p.SubjectID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return doc, nil
}

// Delete removes a document. The uploader or any officer may delete.
func (s *DocumentService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("document", nil)
		}
		return apperrors.MapError(err)
	}
	if p.Role != domain.RoleOfficer && doc.UploadedByID != p.SubjectID {
		return apperrors.NewForbidden("access denied")
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
