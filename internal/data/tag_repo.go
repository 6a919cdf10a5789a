package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// TagRepo provides database operations for tags.
type TagRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewTagRepo creates a new TagRepo with real time provider.
func NewTagRepo(db *sql.DB) *TagRepo {
	return &TagRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// Create inserts a new tag for the user. Duplicate names per user surface as
// Conflict via the unique constraint.
func (r *TagRepo) Create(ctx context.Context, userID string, req *model.CreateTagRequest) (*model.Tag, error) {
	if req == nil {
		return nil, apperrors.Validation("create tag request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Tag
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO tags (user_id, name, color, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			RETURNING id, user_id, name, color, created_at, updated_at`,
			userID, req.Name, req.Color, now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Tag])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// CountOwned returns how many of the given tag ids exist and belong to userID.
func (r *TagRepo) CountOwned(ctx context.Context, userID string, tagIDs []string) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	var count int
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM tags WHERE id = ANY($1) AND user_id = $2`,
			tagIDs, userID,
		).Scan(&count)
	})
	if err != nil {
		return 0, apperrors.MapDBError(err)
	}
	return count, nil
}

// ListByUser returns the user's tags ordered by name.
func (r *TagRepo) ListByUser(ctx context.Context, userID string) ([]*model.Tag, error) {
	var rowsOut []model.Tag
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT id, user_id, name, color, created_at, updated_at
			FROM tags
			WHERE user_id = $1
			ORDER BY name ASC`,
			userID,
		)
		if err != nil {
			return err
		}
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Tag])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Tag, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
