package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
	"github.com/jobtrackr/jobtrackr-api/internal/mocks"
)

// stubVerifier is a hand-written test double for TokenVerifier.
type stubVerifier struct {
	identity auth.Identity
	err      error
	calls    int
}

func (s *stubVerifier) VerifyBearer(_ context.Context, _ string) (auth.Identity, error) {
	s.calls++
	return s.identity, s.err
}

// memoryUserCache is an in-memory UserCache double.
type memoryUserCache struct {
	entries map[string]*model.User
	getErr  error
}

func newMemoryUserCache() *memoryUserCache {
	return &memoryUserCache{entries: make(map[string]*model.User)}
}

func (c *memoryUserCache) Get(_ context.Context, token string) (*model.User, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[token], nil
}

func (c *memoryUserCache) Set(_ context.Context, token string, user *model.User) error {
	c.entries[token] = user
	return nil
}

func TestIdentityService_Authenticate_VerifiesAndUpserts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	identity := auth.Identity{ExternalUID: "sub-1", Email: "dev@example.com"}
	verifier := &stubVerifier{identity: identity}
	users := mocks.NewMockUserRepository(ctrl)
	user := &model.User{ID: "u-1", ExternalUID: "sub-1", Email: "dev@example.com"}
	users.EXPECT().UpsertByIdentity(ctx, identity).Return(user, nil)

	svc := NewIdentityService(IdentityServiceOptions{Verifier: verifier, Users: users})

	got, err := svc.Authenticate(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, 1, verifier.calls)
}

func TestIdentityService_Authenticate_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewIdentityService(IdentityServiceOptions{
		Verifier: &stubVerifier{},
		Users:    mocks.NewMockUserRepository(ctrl),
	})

	_, err := svc.Authenticate(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestIdentityService_Authenticate_VerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := &stubVerifier{err: errors.New("token expired")}
	svc := NewIdentityService(IdentityServiceOptions{
		Verifier: verifier,
		Users:    mocks.NewMockUserRepository(ctrl),
	})

	_, err := svc.Authenticate(context.Background(), "stale-token")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestIdentityService_Authenticate_CacheHitSkipsVerifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := newMemoryUserCache()
	user := &model.User{ID: "u-1", ExternalUID: "sub-1"}
	cache.entries["token-abc"] = user

	verifier := &stubVerifier{}
	svc := NewIdentityService(IdentityServiceOptions{
		Verifier: verifier,
		Users:    mocks.NewMockUserRepository(ctrl),
		Cache:    cache,
	})

	got, err := svc.Authenticate(context.Background(), "token-abc")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Zero(t, verifier.calls)
}

func TestIdentityService_Authenticate_CacheFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cache := newMemoryUserCache()
	cache.getErr = errors.New("redis down")

	identity := auth.Identity{ExternalUID: "sub-1", Email: "dev@example.com"}
	users := mocks.NewMockUserRepository(ctrl)
	user := &model.User{ID: "u-1", ExternalUID: "sub-1"}
	users.EXPECT().UpsertByIdentity(ctx, identity).Return(user, nil)

	svc := NewIdentityService(IdentityServiceOptions{
		Verifier: &stubVerifier{identity: identity},
		Users:    users,
		Cache:    cache,
	})

	got, err := svc.Authenticate(ctx, "token-abc")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestIdentityService_Authenticate_MissingSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewIdentityService(IdentityServiceOptions{
		Verifier: &stubVerifier{identity: auth.Identity{Email: "dev@example.com"}},
		Users:    mocks.NewMockUserRepository(ctrl),
	})

	_, err := svc.Authenticate(context.Background(), "token-abc")
	require.Error(t, err)
	assert.True(t, apperrors.IsInternal(err))
}
