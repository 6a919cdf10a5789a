// Package mocks provides mock implementations for testing the jobtrackr services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobApplicationRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(app, nil)
package mocks

// Generate mock for JobApplicationRepository interface from internal/core package.
// This creates MockJobApplicationRepository with methods for all JobApplicationRepository interface methods:
// Create, GetByID, ListActive, ListByStatus, Reorder, ChangeStatus, SoftDelete
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_application_repository_mock.go github.com/jobtrackr/jobtrackr-api/internal/core JobApplicationRepository

// Generate mock for StatusHistoryRepository interface from internal/core package.
// This creates MockStatusHistoryRepository with methods for all StatusHistoryRepository interface methods:
// ListByJobApplication
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=status_history_repository_mock.go github.com/jobtrackr/jobtrackr-api/internal/core StatusHistoryRepository

// Generate mock for TagRepository interface from internal/core package.
// This creates MockTagRepository with methods for all TagRepository interface methods:
// Create, CountOwned, ListByUser
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=tag_repository_mock.go github.com/jobtrackr/jobtrackr-api/internal/core TagRepository

// Generate mock for UserRepository interface from internal/core package.
// This creates MockUserRepository with methods for all UserRepository interface methods:
// UpsertByIdentity
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/jobtrackr/jobtrackr-api/internal/core UserRepository
