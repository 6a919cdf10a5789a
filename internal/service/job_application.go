// Package service contains the application services that compose validation,
// ordering, and audit-trail recording on top of the repository ports.
package service

import (
	"context"
	"log/slog"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// JobApplicationServiceOptions groups dependencies for JobApplicationService.
type JobApplicationServiceOptions struct {
	Repo    core.JobApplicationRepository
	Tags    core.TagRepository
	History core.StatusHistoryRepository
	Logger  *slog.Logger
}

// JobApplicationService orchestrates job application use cases. Typed errors
// from the layers below pass through unchanged; this layer only adds logging
// context and the pre-checks that need more than one repository.
type JobApplicationService struct {
	repo    core.JobApplicationRepository
	tags    core.TagRepository
	history core.StatusHistoryRepository
	logger  *slog.Logger
}

// NewJobApplicationService constructs a new JobApplicationService.
func NewJobApplicationService(opts JobApplicationServiceOptions) *JobApplicationService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &JobApplicationService{
		repo:    opts.Repo,
		tags:    opts.Tags,
		history: opts.History,
		logger:  logger.With("component", "job_application_service"),
	}
}

// ListActive returns all non-deleted applications for the user, newest first.
func (s *JobApplicationService) ListActive(ctx context.Context, userID string) ([]*model.JobApplication, error) {
	apps, err := s.repo.ListActive(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list active failed", "user_id", userID, "err", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "listed job applications", "user_id", userID, "count", len(apps))
	return apps, nil
}

// GetByID returns a single non-deleted application owned by the user, with
// all relations attached.
func (s *JobApplicationService) GetByID(ctx context.Context, userID, id string) (*model.JobApplication, error) {
	app, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "get by id failed", "user_id", userID, "id", id, "err", err)
		}
		return nil, err
	}
	return app, nil
}

// ListByStatus returns the user's applications in one status column, ascending
// by order. An empty column is a valid empty list.
func (s *JobApplicationService) ListByStatus(
	ctx context.Context,
	userID string,
	status model.ApplicationStatus,
) ([]*model.JobApplication, error) {
	normalized, ok := model.ParseApplicationStatus(string(status))
	if !ok {
		return nil, apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
	}

	apps, err := s.repo.ListByStatus(ctx, userID, normalized)
	if err != nil {
		s.logger.ErrorContext(ctx, "list by status failed", "user_id", userID, "status", normalized, "err", err)
		return nil, err
	}
	return apps, nil
}

// Create validates the request, verifies every referenced tag belongs to the
// user, and persists the application with its computed order.
func (s *JobApplicationService) Create(
	ctx context.Context,
	userID string,
	req *model.CreateJobApplicationRequest,
) (*model.JobApplication, error) {
	if req == nil {
		return nil, apperrors.Validation("create job application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Friendly pre-check; the create transaction re-verifies ownership so a
	// tag deleted in between still cannot slip through.
	if len(req.TagIDs) > 0 {
		owned, err := s.tags.CountOwned(ctx, userID, req.TagIDs)
		if err != nil {
			s.logger.ErrorContext(ctx, "tag ownership check failed", "user_id", userID, "err", err)
			return nil, err
		}
		if owned != len(req.TagIDs) {
			return nil, apperrors.ValidationField("tag_ids", "some tag ids do not exist or don't belong to you")
		}
	}

	app, err := s.repo.Create(ctx, core.CreateJobApplicationParams{UserID: userID, Request: req})
	if err != nil {
		s.logger.ErrorContext(ctx, "create failed", "user_id", userID, "err", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "job application created",
		"user_id", userID,
		"id", app.ID,
		"status", app.Status,
		"order", app.Order,
	)
	return app, nil
}

// Reorder atomically reassigns order values within one status column.
func (s *JobApplicationService) Reorder(
	ctx context.Context,
	userID string,
	req *model.ReorderRequest,
) ([]*model.JobApplication, error) {
	if req == nil {
		return nil, apperrors.Validation("reorder request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	apps, err := s.repo.Reorder(ctx, core.ReorderParams{
		UserID: userID,
		Status: req.Status,
		Orders: req.Orders,
	})
	if err != nil {
		if !apperrors.IsValidation(err) {
			s.logger.ErrorContext(ctx, "reorder failed", "user_id", userID, "status", req.Status, "err", err)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "job applications reordered",
		"user_id", userID,
		"status", req.Status,
		"count", len(apps),
	)
	return apps, nil
}

// ChangeStatus moves an application to another pipeline column, assigning it
// the next order there and appending a history entry. Moving to the current
// status returns the application unchanged and records nothing.
func (s *JobApplicationService) ChangeStatus(
	ctx context.Context,
	userID, id string,
	req *model.ChangeStatusRequest,
) (*model.JobApplication, error) {
	if req == nil {
		return nil, apperrors.Validation("change status request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.repo.ChangeStatus(ctx, core.ChangeStatusParams{
		UserID:    userID,
		ID:        id,
		NewStatus: req.Status,
	})
	if err != nil {
		if !apperrors.IsNotFound(err) && !apperrors.IsValidation(err) {
			s.logger.ErrorContext(ctx, "change status failed", "user_id", userID, "id", id, "err", err)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "job application status changed",
		"user_id", userID,
		"id", id,
		"status", app.Status,
		"order", app.Order,
	)
	return app, nil
}

// ListHistory returns the status transition audit trail for one application in
// chronological order. The ownership check runs first so foreign ids come back
// as NotFound, not as someone else's history.
func (s *JobApplicationService) ListHistory(ctx context.Context, userID, id string) ([]model.StatusHistoryEntry, error) {
	if _, err := s.repo.GetByID(ctx, userID, id); err != nil {
		return nil, err
	}

	entries, err := s.history.ListByJobApplication(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "list history failed", "user_id", userID, "id", id, "err", err)
		return nil, err
	}
	return entries, nil
}

// SoftDelete marks an application deleted. Already-deleted and foreign ids
// surface as NotFound; sibling orders are not renumbered.
func (s *JobApplicationService) SoftDelete(ctx context.Context, userID, id string) (*model.JobApplication, error) {
	app, err := s.repo.SoftDelete(ctx, userID, id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			s.logger.ErrorContext(ctx, "soft delete failed", "user_id", userID, "id", id, "err", err)
		}
		return nil, err
	}
	s.logger.InfoContext(ctx, "job application soft-deleted", "user_id", userID, "id", id)
	return app, nil
}
