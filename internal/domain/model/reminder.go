package model

import "time"

// Reminder is a follow-up reminder attached to a job application.
type Reminder struct {
	ID               string    `json:"id"                 db:"id"`
	JobApplicationID string    `json:"job_application_id" db:"job_application_id"`
	Name             string    `json:"name"               db:"name"`
	ReminderDate     time.Time `json:"reminder_date"      db:"reminder_date"`
	RemindAt         time.Time `json:"remind_at"          db:"remind_at"`
	CreatedAt        time.Time `json:"created_at"         db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"         db:"updated_at"`
}
