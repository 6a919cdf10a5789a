// Package core contains the repository interface definitions (ports) between
// the service layer and the data layer. Services depend on these interfaces,
// not on concrete repositories.
package core

import (
	"context"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
)

// CreateJobApplicationParams groups parameters for JobApplicationRepository.Create.
type CreateJobApplicationParams struct {
	UserID  string
	Request *model.CreateJobApplicationRequest
}

// ReorderParams groups parameters for JobApplicationRepository.Reorder.
type ReorderParams struct {
	UserID string
	Status model.ApplicationStatus
	Orders []model.OrderPair
}

// ChangeStatusParams groups parameters for JobApplicationRepository.ChangeStatus.
type ChangeStatusParams struct {
	UserID    string
	ID        string
	NewStatus model.ApplicationStatus
}

// JobApplicationRepository defines the interface for job application data
// operations. All writes that touch the per-(user, status) ordering invariant
// run in single transactions inside the implementation.
type JobApplicationRepository interface {
	// Create inserts a new job application, assigning order = max(live orders
	// in the (user, status) partition) + 1, or 0 for an empty partition. The
	// max read and the insert share one transaction.
	Create(ctx context.Context, params CreateJobApplicationParams) (*model.JobApplication, error)
	// GetByID returns a non-deleted job application owned by userID, with
	// tags, skills, reminders, and status history loaded.
	GetByID(ctx context.Context, userID, id string) (*model.JobApplication, error)
	// ListActive returns all non-deleted applications for the user, newest
	// first, with tags and skills loaded.
	ListActive(ctx context.Context, userID string) ([]*model.JobApplication, error)
	// ListByStatus returns non-deleted applications for the user and status,
	// ascending by order, with relations loaded. An empty column yields an
	// empty slice, not an error.
	ListByStatus(ctx context.Context, userID string, status model.ApplicationStatus) ([]*model.JobApplication, error)
	// Reorder atomically reassigns order values within one (user, status)
	// partition using two-phase negative staging. Either every row moves or
	// none do. Returned records carry relations, in requested order.
	Reorder(ctx context.Context, params ReorderParams) ([]*model.JobApplication, error)
	// ChangeStatus moves an application to a new status column, assigning it
	// the next order in the destination partition and appending a status
	// history entry in the same transaction.
	ChangeStatus(ctx context.Context, params ChangeStatusParams) (*model.JobApplication, error)
	// SoftDelete marks an application deleted. Deleting a missing or
	// already-deleted application returns a NotFound error; sibling orders are
	// not renumbered.
	SoftDelete(ctx context.Context, userID, id string) (*model.JobApplication, error)
}

// StatusHistoryRepository defines the interface for the append-only status
// transition audit trail.
type StatusHistoryRepository interface {
	// ListByJobApplication returns entries for an application in chronological
	// order.
	ListByJobApplication(ctx context.Context, jobApplicationID string) ([]model.StatusHistoryEntry, error)
}

// TagRepository defines the interface for tag data operations.
type TagRepository interface {
	Create(ctx context.Context, userID string, req *model.CreateTagRequest) (*model.Tag, error)
	// CountOwned returns how many of the given tag ids exist and belong to
	// userID. Used to reject unknown or foreign tag ids before a create.
	CountOwned(ctx context.Context, userID string, tagIDs []string) (int, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Tag, error)
}

// UserRepository resolves verified identities to owner rows.
type UserRepository interface {
	// UpsertByIdentity creates or refreshes the users row for a verified
	// identity and returns it.
	UpsertByIdentity(ctx context.Context, identity auth.Identity) (*model.User, error)
}
