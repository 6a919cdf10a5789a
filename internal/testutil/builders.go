// Package testutil provides testing utilities and helpers for the jobtrackr API.
package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
)

// JobApplicationRequestBuilder provides a fluent interface for building
// CreateJobApplicationRequest objects for testing.
type JobApplicationRequestBuilder struct {
	req *model.CreateJobApplicationRequest
}

// NewJobApplicationRequest creates a builder with sensible defaults.
func NewJobApplicationRequest() *JobApplicationRequestBuilder {
	return &JobApplicationRequestBuilder{
		req: &model.CreateJobApplicationRequest{
			Title:   "Backend Engineer",
			Company: "Acme Corp",
			Status:  model.StatusWishlist,
		},
	}
}

// WithTitle sets the title.
func (b *JobApplicationRequestBuilder) WithTitle(title string) *JobApplicationRequestBuilder {
	b.req.Title = title
	return b
}

// WithCompany sets the company.
func (b *JobApplicationRequestBuilder) WithCompany(company string) *JobApplicationRequestBuilder {
	b.req.Company = company
	return b
}

// WithStatus sets the pipeline status.
func (b *JobApplicationRequestBuilder) WithStatus(status model.ApplicationStatus) *JobApplicationRequestBuilder {
	b.req.Status = status
	return b
}

// WithTagIDs sets the tag ids to attach.
func (b *JobApplicationRequestBuilder) WithTagIDs(ids ...string) *JobApplicationRequestBuilder {
	b.req.TagIDs = ids
	return b
}

// WithResumeURL sets the resume URL.
func (b *JobApplicationRequestBuilder) WithResumeURL(u string) *JobApplicationRequestBuilder {
	b.req.ResumeURL = &u
	return b
}

// Build returns the constructed request.
func (b *JobApplicationRequestBuilder) Build() *model.CreateJobApplicationRequest {
	return b.req
}

// CreateTestUser inserts a users row and returns its id. Integration tests
// need an owner for every job application and tag.
func CreateTestUser(t TestingTB, db *sql.DB) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id := uuid.NewString()
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (id, external_uid, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())`,
		id, "test-"+id, id+"@example.com", "Test User")
	if err != nil {
		t.Fatal("Failed to insert test user:", err)
	}
	return id
}
