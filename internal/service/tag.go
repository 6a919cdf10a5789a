package service

import (
	"context"
	"log/slog"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// TagServiceOptions groups dependencies for TagService.
type TagServiceOptions struct {
	Repo   core.TagRepository
	Logger *slog.Logger
}

// TagService manages the user's tag vocabulary.
type TagService struct {
	repo   core.TagRepository
	logger *slog.Logger
}

// NewTagService constructs a new TagService.
func NewTagService(opts TagServiceOptions) *TagService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TagService{
		repo:   opts.Repo,
		logger: logger.With("component", "tag_service"),
	}
}

// Create validates and persists a new tag. A duplicate name for the same user
// surfaces as a Conflict error.
func (s *TagService) Create(ctx context.Context, userID string, req *model.CreateTagRequest) (*model.Tag, error) {
	if req == nil {
		return nil, apperrors.Validation("create tag request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tag, err := s.repo.Create(ctx, userID, req)
	if err != nil {
		if !apperrors.IsConflict(err) {
			s.logger.ErrorContext(ctx, "create tag failed", "user_id", userID, "err", err)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "tag created", "user_id", userID, "id", tag.ID, "name", tag.Name)
	return tag, nil
}

// List returns the user's tags sorted by name.
func (s *TagService) List(ctx context.Context, userID string) ([]*model.Tag, error) {
	tags, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list tags failed", "user_id", userID, "err", err)
		return nil, err
	}
	return tags, nil
}
