package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// StatusHistoryRepo provides read access to the append-only status transition
// audit trail. Entries are written by JobApplicationRepo.ChangeStatus inside
// the status-update transaction; nothing updates or deletes them.
type StatusHistoryRepo struct {
	DB *sql.DB
}

// NewStatusHistoryRepo creates a new StatusHistoryRepo.
func NewStatusHistoryRepo(db *sql.DB) *StatusHistoryRepo {
	return &StatusHistoryRepo{DB: db}
}

// ListByJobApplication returns entries for an application in chronological order.
func (r *StatusHistoryRepo) ListByJobApplication(
	ctx context.Context,
	jobApplicationID string,
) ([]model.StatusHistoryEntry, error) {
	var entries []model.StatusHistoryEntry
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, job_application_id, old_status, new_status, changed_at
			FROM job_application_status_history
			WHERE job_application_id = $1
			ORDER BY changed_at ASC`,
			jobApplicationID,
		)
		if err != nil {
			return err
		}
		entries, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.StatusHistoryEntry])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return entries, nil
}
