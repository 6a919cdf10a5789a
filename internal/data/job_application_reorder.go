package data

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// Reorder atomically reassigns the order values of one (user, status)
// partition.
//
// The ordering index on (user_id, status, "order") means a direct multi-row
// swap would transiently collide. The update is therefore staged in two
// phases: every affected row first receives a distinct negative order
// (position index negated, offset by one), then its final requested value.
// Negative values cannot collide with the non-negative live domain or with
// any requested target. Both phases run in a single transaction, so readers
// never observe the staged state and a crash cannot strand it.
//
// The matching rows are locked up front; if any requested id is missing,
// soft-deleted, foreign, or in a different status, the whole operation is
// rejected before anything is written.
func (r *JobApplicationRepo) Reorder(
	ctx context.Context,
	params core.ReorderParams,
) ([]*model.JobApplication, error) {
	if !params.Status.Valid() {
		return nil, apperrors.ValidationField("status", "status must be one of: WISHLIST, APPLIED, INTERVIEWING, ACCEPTED, REJECTED, DROPPED")
	}
	if len(params.Orders) == 0 {
		return nil, apperrors.ValidationField("orders", "at least one job application is required")
	}

	ids := make([]string, len(params.Orders))
	seenIDs := make(map[string]struct{}, len(params.Orders))
	seenOrders := make(map[int]struct{}, len(params.Orders))
	for i, pair := range params.Orders {
		if _, dup := seenIDs[pair.ID]; dup {
			return nil, apperrors.ValidationField("orders", "job application ids must be unique")
		}
		seenIDs[pair.ID] = struct{}{}
		if pair.Order < 0 {
			return nil, apperrors.ValidationField("orders", "order values must be non-negative")
		}
		if _, dup := seenOrders[pair.Order]; dup {
			return nil, apperrors.ValidationField("orders", "order values must be unique")
		}
		seenOrders[pair.Order] = struct{}{}
		ids[i] = pair.ID
	}

	now := r.timeProvider.Now().UTC()
	updated := make([]*model.JobApplication, 0, len(params.Orders))
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		// Lock and verify cardinality: every id must resolve to a live row
		// owned by the user in the requested status.
		var matched int
		if err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM (
				SELECT id FROM job_applications
				WHERE id = ANY($1) AND user_id = $2 AND status = $3 AND deleted_at IS NULL
				FOR UPDATE
			) locked`,
			ids, params.UserID, params.Status,
		).Scan(&matched); err != nil {
			return err
		}
		if matched != len(ids) {
			return apperrors.ValidationField("orders",
				"some job application ids do not exist, don't belong to you, or don't match the status")
		}

		// Phase 1: stage through distinct negative orders.
		batch := &pgx.Batch{}
		for i, id := range ids {
			batch.Queue(`UPDATE job_applications SET "order" = $1 WHERE id = $2`, -(i + 1), id)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}

		// Phase 2: assign final orders.
		final := &pgx.Batch{}
		for _, pair := range params.Orders {
			final.Queue(`UPDATE job_applications SET "order" = $1, updated_at = $2 WHERE id = $3`,
				pair.Order, now, pair.ID)
		}
		if err := tx.SendBatch(ctx, final).Close(); err != nil {
			return err
		}

		// Read back the updated rows inside the transaction, in requested order.
		rows, err := tx.Query(ctx, `
			SELECT `+jobApplicationColumns+`
			FROM job_applications
			WHERE id = ANY($1)`,
			ids,
		)
		if err != nil {
			return err
		}
		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.JobApplication])
		if err != nil {
			return err
		}
		byID := make(map[string]*model.JobApplication, len(collected))
		for i := range collected {
			byID[collected[i].ID] = &collected[i]
		}
		for _, id := range ids {
			app, ok := byID[id]
			if !ok {
				return apperrors.Internalf("reordered job application %s disappeared mid-transaction", id)
			}
			updated = append(updated, app)
		}
		return nil
	}})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	if loadErr := r.loadRelations(ctx, updated, relationAll); loadErr != nil {
		return nil, loadErr
	}
	return updated, nil
}
