package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

const (
	maxTitleLen   = 255
	maxCompanyLen = 255
)

// JobApplication represents one tracked application. Order is the zero-based
// position of the application within its (user, status) column; live rows in a
// column never share an order value.
type JobApplication struct {
	ID          string            `json:"id"                     db:"id"`
	UserID      string            `json:"user_id"                db:"user_id"`
	Title       string            `json:"title"                  db:"title"`
	Company     string            `json:"company"                db:"company"`
	Location    *string           `json:"location,omitempty"     db:"location"`
	Description *string           `json:"description,omitempty"  db:"description"`
	Status      ApplicationStatus `json:"status"                 db:"status"`
	SourceName  *string           `json:"source_name,omitempty"  db:"source_name"`
	SourceURL   *string           `json:"source_url,omitempty"   db:"source_url"`
	ResumeURL   *string           `json:"resume_url,omitempty"   db:"resume_url"`
	Order       int               `json:"order"                  db:"order"`
	CreatedAt   time.Time         `json:"created_at"             db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"             db:"updated_at"`
	DeletedAt   *time.Time        `json:"deleted_at,omitempty"   db:"deleted_at"`

	// Relations, loaded per operation. Not database columns.
	Tags           []Tag               `json:"tags,omitempty"           db:"-"`
	RequiredSkills []RequiredSkill     `json:"required_skills,omitempty" db:"-"`
	Reminders      []Reminder          `json:"reminders,omitempty"      db:"-"`
	StatusHistory  []StatusHistoryEntry `json:"status_history,omitempty" db:"-"`
}

// CreateJobApplicationRequest represents parameters to create a JobApplication.
type CreateJobApplicationRequest struct {
	Title       string            `json:"title"`
	Company     string            `json:"company"`
	Location    *string           `json:"location,omitempty"`
	Description *string           `json:"description,omitempty"`
	Status      ApplicationStatus `json:"status,omitempty"`
	SourceName  *string           `json:"source_name,omitempty"`
	SourceURL   *string           `json:"source_url,omitempty"`
	ResumeURL   *string           `json:"resume_url,omitempty"`
	TagIDs      []string          `json:"tag_ids,omitempty"`
}

// Validate normalizes and validates the request. Status defaults to WISHLIST
// when empty. Tag ids must be unique, valid UUIDs.
func (r *CreateJobApplicationRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return apperrors.ValidationField("title", "title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxTitleLen {
		return apperrors.ValidationField("title", "title cannot exceed 255 characters")
	}
	r.Company = strings.TrimSpace(r.Company)
	if r.Company == "" {
		return apperrors.ValidationField("company", "company is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Company) > maxCompanyLen {
		return apperrors.ValidationField("company", "company cannot exceed 255 characters")
	}

	if r.Status == "" {
		r.Status = StatusWishlist
	} else {
		status, ok := ParseApplicationStatus(string(r.Status))
		if !ok {
			return apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
		}
		r.Status = status
	}

	if r.ResumeURL != nil && strings.TrimSpace(*r.ResumeURL) != "" {
		if err := validateURLField("resume_url", *r.ResumeURL); err != nil {
			return err
		}
	}

	seen := make(map[string]struct{}, len(r.TagIDs))
	for _, id := range r.TagIDs {
		if _, err := uuid.Parse(id); err != nil {
			return apperrors.ValidationField("tag_ids", "tag ids must be valid UUIDs")
		}
		if _, dup := seen[id]; dup {
			return apperrors.ValidationField("tag_ids", "tag ids must be unique")
		}
		seen[id] = struct{}{}
	}
	return nil
}

// OrderPair assigns an explicit order value to a job application id.
type OrderPair struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// ReorderRequest represents a bulk reorder of one (user, status) column.
type ReorderRequest struct {
	Status ApplicationStatus `json:"status"`
	Orders []OrderPair       `json:"orders"`
}

// Validate checks the reorder preconditions that can be decided without the
// store: valid status, at least one pair, valid UUIDs, no duplicate ids, no
// duplicate order values, no negative order values. Ownership and cardinality
// checks happen inside the reorder transaction.
func (r *ReorderRequest) Validate() error {
	status, ok := ParseApplicationStatus(string(r.Status))
	if !ok {
		return apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
	}
	r.Status = status

	if len(r.Orders) == 0 {
		return apperrors.ValidationField("orders", "at least one job application is required")
	}

	seenIDs := make(map[string]struct{}, len(r.Orders))
	seenOrders := make(map[int]struct{}, len(r.Orders))
	for _, pair := range r.Orders {
		if _, err := uuid.Parse(pair.ID); err != nil {
			return apperrors.ValidationField("orders", "job application ids must be valid UUIDs")
		}
		if _, dup := seenIDs[pair.ID]; dup {
			return apperrors.ValidationField("orders", "job application ids must be unique")
		}
		seenIDs[pair.ID] = struct{}{}

		if pair.Order < 0 {
			return apperrors.ValidationField("orders", "order values must be non-negative")
		}
		if _, dup := seenOrders[pair.Order]; dup {
			return apperrors.ValidationField("orders", "order values must be unique")
		}
		seenOrders[pair.Order] = struct{}{}
	}
	return nil
}

// IDs returns the job application ids in request order.
func (r *ReorderRequest) IDs() []string {
	ids := make([]string, len(r.Orders))
	for i, pair := range r.Orders {
		ids[i] = pair.ID
	}
	return ids
}

// ChangeStatusRequest moves a job application to another pipeline column.
type ChangeStatusRequest struct {
	Status ApplicationStatus `json:"status"`
}

// Validate normalizes and validates the destination status.
func (r *ChangeStatusRequest) Validate() error {
	status, ok := ParseApplicationStatus(string(r.Status))
	if !ok {
		return apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
	}
	r.Status = status
	return nil
}

// validateURLField validates that a value parses as an absolute http(s) URL.
func validateURLField(field, value string) error {
	u, err := url.Parse(strings.TrimSpace(value))
	if err != nil {
		return apperrors.ValidationField(field, field+" must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.ValidationField(field, field+" must use http or https scheme")
	}
	if u.Host == "" {
		return apperrors.ValidationField(field, field+" must have a valid host")
	}
	return nil
}
