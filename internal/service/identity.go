package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jobtrackr/jobtrackr-api/internal/core"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// TokenVerifier verifies a raw bearer token and returns the identity it
// asserts. Implemented by the OIDC adapter.
type TokenVerifier interface {
	VerifyBearer(ctx context.Context, rawToken string) (auth.Identity, error)
}

// UserCache is the optional token→user cache in front of verification and the
// users upsert. A cache miss is (nil, nil); failures are also treated as
// misses so a flaky cache never blocks requests.
type UserCache interface {
	Get(ctx context.Context, rawToken string) (*model.User, error)
	Set(ctx context.Context, rawToken string, user *model.User) error
}

// IdentityServiceOptions groups dependencies for IdentityService.
type IdentityServiceOptions struct {
	Verifier TokenVerifier
	Users    core.UserRepository
	Cache    UserCache // optional
	Logger   *slog.Logger
}

// IdentityService resolves bearer tokens to user rows: verify the token,
// upsert the users row for its subject, cache the result.
type IdentityService struct {
	verifier TokenVerifier
	users    core.UserRepository
	cache    UserCache
	logger   *slog.Logger
}

// NewIdentityService constructs a new IdentityService.
func NewIdentityService(opts IdentityServiceOptions) *IdentityService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentityService{
		verifier: opts.Verifier,
		users:    opts.Users,
		cache:    opts.Cache,
		logger:   logger.With("component", "identity_service"),
	}
}

// Authenticate verifies the bearer token and returns the matching user,
// creating the users row on first sight of the subject.
func (s *IdentityService) Authenticate(ctx context.Context, rawToken string) (*model.User, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, apperrors.Unauthorized("bearer token is required")
	}

	if s.cache != nil {
		user, err := s.cache.Get(ctx, rawToken)
		if err != nil {
			s.logger.WarnContext(ctx, "identity cache read failed", "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	identity, err := s.verifier.VerifyBearer(ctx, rawToken)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "bearer token verification failed")
	}
	if identity.ExternalUID == "" {
		return nil, apperrors.Internal("token verified but carries no subject")
	}

	user, err := s.users.UpsertByIdentity(ctx, identity)
	if err != nil {
		s.logger.ErrorContext(ctx, "identity upsert failed", "external_uid", identity.ExternalUID, "err", err)
		return nil, err
	}

	if s.cache != nil {
		if cacheErr := s.cache.Set(ctx, rawToken, user); cacheErr != nil {
			s.logger.WarnContext(ctx, "identity cache write failed", "err", cacheErr)
		}
	}

	return user, nil
}
