package model

import "strings"

// ApplicationStatus is a pipeline column for a job application.
type ApplicationStatus string

const (
	StatusWishlist     ApplicationStatus = "WISHLIST"
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusAccepted     ApplicationStatus = "ACCEPTED"
	StatusRejected     ApplicationStatus = "REJECTED"
	StatusDropped      ApplicationStatus = "DROPPED"
)

// Valid reports whether the status is a supported pipeline column.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusWishlist, StatusApplied, StatusInterviewing, StatusAccepted, StatusRejected, StatusDropped:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus normalizes a status string (case-insensitive) and
// reports whether it is supported.
func ParseApplicationStatus(value string) (ApplicationStatus, bool) {
	status := ApplicationStatus(strings.ToUpper(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// AllStatuses returns every supported pipeline column, in pipeline order.
func AllStatuses() []ApplicationStatus {
	return []ApplicationStatus{
		StatusWishlist,
		StatusApplied,
		StatusInterviewing,
		StatusAccepted,
		StatusRejected,
		StatusDropped,
	}
}
