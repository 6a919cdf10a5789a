package model

import "time"

// StatusHistoryEntry is an immutable audit record of a status transition.
// Entries are append-only; nothing in the system updates or deletes them.
type StatusHistoryEntry struct {
	ID               string            `json:"id"                 db:"id"`
	JobApplicationID string            `json:"job_application_id" db:"job_application_id"`
	OldStatus        ApplicationStatus `json:"old_status"         db:"old_status"`
	NewStatus        ApplicationStatus `json:"new_status"         db:"new_status"`
	ChangedAt        time.Time         `json:"changed_at"         db:"changed_at"`
}
