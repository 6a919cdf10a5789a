package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

const maxTagNameLen = 100

// Tag is a user-owned label attachable to job applications.
type Tag struct {
	ID        string    `json:"id"              db:"id"`
	UserID    string    `json:"user_id"         db:"user_id"`
	Name      string    `json:"name"            db:"name"`
	Color     *string   `json:"color,omitempty" db:"color"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// CreateTagRequest represents parameters to create a Tag.
type CreateTagRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// Validate normalizes and validates the request.
func (r *CreateTagRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperrors.ValidationField("name", "name is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Name) > maxTagNameLen {
		return apperrors.ValidationField("name", "name cannot exceed 100 characters")
	}
	return nil
}
