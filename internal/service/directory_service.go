package service

import (
	"context"

	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/repository"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// DirectoryService exposes role-filtered views of the account base: the
// officer directory for everyone, the farmer listing for officers.
type DirectoryService struct {
	users repository.UserRepository
}

// NewDirectoryService constructs the service.
func NewDirectoryService(users repository.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// DirectoryQuery carries allow-listed listing parameters.
type DirectoryQuery struct {
	District *string
	Search   *string
	Page     repository.Page
}

// ListOfficers returns the active officer directory.
func (s *DirectoryService) ListOfficers(ctx context.Context, query DirectoryQuery) ([]domain.User, int, error) {
	role := domain.RoleOfficer
	active := true
	items, total, err := s.users.List(ctx, repository.UserFilter{
		Role:     &role,
		Active:   &active,
		District: query.District,
		Search:   query.Search,
		Page:     query.Page,
	})
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// ListFarmers returns registered farmers. The route restricts this to
// officer identities.
func (s *DirectoryService) ListFarmers(ctx context.Context, query DirectoryQuery) ([]domain.User, int, error) {
	role := domain.RoleFarmer
	items, total, err := s.users.List(ctx, repository.UserFilter{
		Role:     &role,
		District: query.District,
		Search:   query.Search,
		Page:     query.Page,
	})
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}
