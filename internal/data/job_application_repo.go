package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// JobApplicationRepo provides database operations for job applications,
// including the per-(user, status) ordering invariant. All errors are mapped
// into the application error taxonomy.
type JobApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewJobApplicationRepo creates a new JobApplicationRepo with real time provider.
func NewJobApplicationRepo(db *sql.DB) *JobApplicationRepo {
	return &JobApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewJobApplicationRepoWithTimeProvider creates a repo with a custom time
// provider (useful for tests).
func NewJobApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *JobApplicationRepo {
	return &JobApplicationRepo{DB: db, timeProvider: tp}
}

// SQL query constants for static queries.
const (
	jobApplicationColumns = `id, user_id, title, company, location, description, status,
		source_name, source_url, resume_url, "order", created_at, updated_at, deleted_at`

	// nextOrderQuery computes the next order value in a live (user, status)
	// partition: max + 1, or 0 when empty. Soft-deleted rows are excluded;
	// the partial unique index keeps the live domain collision-free.
	nextOrderQuery = `
		SELECT COALESCE(MAX("order") + 1, 0)
		FROM job_applications
		WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL`

	jobApplicationGetQuery = `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

	jobApplicationListActiveQuery = `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	jobApplicationListByStatusQuery = `
		SELECT ` + jobApplicationColumns + `
		FROM job_applications
		WHERE user_id = $1 AND status = $2 AND deleted_at IS NULL
		ORDER BY "order" ASC`
)

// Create inserts a new job application with order = max(live partition) + 1,
// or 0 for an empty partition. The max read, the insert, and the tag
// attachment share one transaction so concurrent creates cannot assign the
// same order without one of them failing on the ordering index.
func (r *JobApplicationRepo) Create(
	ctx context.Context,
	params core.CreateJobApplicationParams,
) (*model.JobApplication, error) {
	req := params.Request
	if req == nil {
		return nil, apperrors.Validation("create job application request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		var nextOrder int
		if err := tx.QueryRow(ctx, nextOrderQuery, params.UserID, req.Status).Scan(&nextOrder); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			INSERT INTO job_applications (
				user_id, title, company, location, description, status,
				source_name, source_url, resume_url, "order", created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			RETURNING `+jobApplicationColumns,
			params.UserID,
			req.Title,
			req.Company,
			req.Location,
			req.Description,
			req.Status,
			req.SourceName,
			req.SourceURL,
			req.ResumeURL,
			nextOrder,
			now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}

		return r.attachTags(ctx, tx, attachTagsParams{
			jobApplicationID: out.ID,
			userID:           params.UserID,
			tagIDs:           req.TagIDs,
		})
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if loadErr := r.loadRelations(ctx, []*model.JobApplication{&out}, relationTagsSkills); loadErr != nil {
		return nil, loadErr
	}
	return &out, nil
}

// attachTagsParams groups parameters for attachTags.
type attachTagsParams struct {
	jobApplicationID string
	userID           string
	tagIDs           []string
}

// attachTags links existing tags to a job application inside the caller's
// transaction. The ownership join makes unknown or foreign tag ids insert
// nothing, which is detected by comparing affected rows to the request.
func (r *JobApplicationRepo) attachTags(ctx context.Context, tx pgx.Tx, params attachTagsParams) error {
	if len(params.tagIDs) == 0 {
		return nil
	}
	ct, err := tx.Exec(ctx, `
		INSERT INTO job_application_tags (job_application_id, tag_id)
		SELECT $1, t.id
		FROM tags t
		WHERE t.id = ANY($2) AND t.user_id = $3`,
		params.jobApplicationID, params.tagIDs, params.userID,
	)
	if err != nil {
		return err
	}
	if int(ct.RowsAffected()) != len(params.tagIDs) {
		return apperrors.ValidationField("tag_ids", "some tag ids do not exist or don't belong to you")
	}
	return nil
}

// GetByID retrieves a non-deleted job application owned by userID, with tags,
// skills, reminders, and status history loaded.
func (r *JobApplicationRepo) GetByID(ctx context.Context, userID, id string) (*model.JobApplication, error) {
	var out model.JobApplication
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobApplicationGetQuery, id, userID)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if loadErr := r.loadRelations(ctx, []*model.JobApplication{&out}, relationAll); loadErr != nil {
		return nil, loadErr
	}
	return &out, nil
}

// ListActive returns all non-deleted applications for the user, newest first,
// with tags and skills loaded.
func (r *JobApplicationRepo) ListActive(ctx context.Context, userID string) ([]*model.JobApplication, error) {
	apps, err := r.list(ctx, jobApplicationListActiveQuery, userID)
	if err != nil {
		return nil, err
	}
	if loadErr := r.loadRelations(ctx, apps, relationTagsSkills); loadErr != nil {
		return nil, loadErr
	}
	return apps, nil
}

// ListByStatus returns non-deleted applications for the user and status in
// ascending order, with all relations loaded. An empty column is a valid empty
// result.
func (r *JobApplicationRepo) ListByStatus(
	ctx context.Context,
	userID string,
	status model.ApplicationStatus,
) ([]*model.JobApplication, error) {
	apps, err := r.list(ctx, jobApplicationListByStatusQuery, userID, status)
	if err != nil {
		return nil, err
	}
	if loadErr := r.loadRelations(ctx, apps, relationAll); loadErr != nil {
		return nil, loadErr
	}
	return apps, nil
}

// ChangeStatus moves an application to another status column. The destination
// order assignment, the status update, and the history append share one
// transaction. Moving to the current status is a no-op and records nothing.
func (r *JobApplicationRepo) ChangeStatus(
	ctx context.Context,
	params core.ChangeStatusParams,
) (*model.JobApplication, error) {
	if !params.NewStatus.Valid() {
		return nil, apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
	}

	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT `+jobApplicationColumns+`
			FROM job_applications
			WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
			FOR UPDATE`,
			params.ID, params.UserID,
		)
		if err != nil {
			return err
		}
		current, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}

		if current.Status == params.NewStatus {
			out = current
			return nil
		}

		var nextOrder int
		if err := tx.QueryRow(ctx, nextOrderQuery, params.UserID, params.NewStatus).Scan(&nextOrder); err != nil {
			return err
		}

		updated, err := tx.Query(ctx, `
			UPDATE job_applications
			SET status = $1, "order" = $2, updated_at = $3
			WHERE id = $4
			RETURNING `+jobApplicationColumns,
			params.NewStatus, nextOrder, now, params.ID,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(updated, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO job_application_status_history (job_application_id, old_status, new_status, changed_at)
			VALUES ($1, $2, $3, $4)`,
			params.ID, current.Status, params.NewStatus, now,
		)
		return err
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if loadErr := r.loadRelations(ctx, []*model.JobApplication{&out}, relationAll); loadErr != nil {
		return nil, loadErr
	}
	return &out, nil
}

// SoftDelete marks an application deleted. Missing, foreign, and
// already-deleted ids all surface as NotFound; deleted_at is never written
// twice. Sibling orders keep their gaps.
func (r *JobApplicationRepo) SoftDelete(ctx context.Context, userID, id string) (*model.JobApplication, error) {
	now := r.timeProvider.Now().UTC()
	var out model.JobApplication
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE job_applications
			SET deleted_at = $1, updated_at = $1
			WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
			RETURNING `+jobApplicationColumns,
			now, id, userID,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// list runs a query returning job application rows.
func (r *JobApplicationRepo) list(ctx context.Context, query string, args ...any) ([]*model.JobApplication, error) {
	var rowsOut []model.JobApplication
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobApplication])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.JobApplication, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
