package model

import "time"

// User is the owner of job applications and tags. Rows are upserted from the
// verified identity on first authenticated request; this service never
// authenticates credentials itself.
type User struct {
	ID          string    `json:"id"             db:"id"`
	ExternalUID string    `json:"external_uid"   db:"external_uid"`
	Email       string    `json:"email"          db:"email"`
	Name        *string   `json:"name,omitempty" db:"name"`
	CreatedAt   time.Time `json:"created_at"     db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"     db:"updated_at"`
}
