package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/jobtrackr/jobtrackr-api/internal/data/pgxutil"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// UserRepo resolves verified identities to owner rows.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// UpsertByIdentity creates or refreshes the users row for a verified identity
// keyed by its external subject identifier.
func (r *UserRepo) UpsertByIdentity(ctx context.Context, identity auth.Identity) (*model.User, error) {
	if identity.ExternalUID == "" {
		return nil, apperrors.Validation("identity external uid is required")
	}

	var name *string
	if identity.Name != "" {
		name = &identity.Name
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (external_uid, email, name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (external_uid)
			DO UPDATE SET email = EXCLUDED.email, name = COALESCE(EXCLUDED.name, users.name), updated_at = $4
			RETURNING id, external_uid, email, name, created_at, updated_at`,
			identity.ExternalUID, identity.Email, name, now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
