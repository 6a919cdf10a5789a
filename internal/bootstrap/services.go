package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrackr/jobtrackr-api/config"
	"github.com/jobtrackr/jobtrackr-api/internal/adapters/devauth"
	"github.com/jobtrackr/jobtrackr-api/internal/adapters/oidc"
	redisadapter "github.com/jobtrackr/jobtrackr-api/internal/adapters/redis"
	"github.com/jobtrackr/jobtrackr-api/internal/data"
	"github.com/jobtrackr/jobtrackr-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Apps     *service.JobApplicationService
	Tags     *service.TagService
	Identity *service.IdentityService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient *redis.Client // nil when the identity cache is disabled
	Logger      *slog.Logger
}

// BuildServices builds repositories and services from shared dependencies.
func BuildServices(ctx context.Context, deps ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appRepo := data.NewJobApplicationRepo(deps.DB)
	historyRepo := data.NewStatusHistoryRepo(deps.DB)
	tagRepo := data.NewTagRepo(deps.DB)
	userRepo := data.NewUserRepo(deps.DB)

	verifier, err := buildVerifier(ctx, deps.Config.Auth)
	if err != nil {
		return ServiceContainer{}, err
	}

	var cache service.UserCache
	if deps.RedisClient != nil {
		cache = redisadapter.NewUserCacheWithTTL(deps.RedisClient, deps.Config.Redis.IdentityTTL)
	}

	return ServiceContainer{
		Apps: service.NewJobApplicationService(service.JobApplicationServiceOptions{
			Repo:    appRepo,
			Tags:    tagRepo,
			History: historyRepo,
			Logger:  logger,
		}),
		Tags: service.NewTagService(service.TagServiceOptions{
			Repo:   tagRepo,
			Logger: logger,
		}),
		Identity: service.NewIdentityService(service.IdentityServiceOptions{
			Verifier: verifier,
			Users:    userRepo,
			Cache:    cache,
			Logger:   logger,
		}),
	}, nil
}

// buildVerifier selects the token verifier for the configured auth mode.
func buildVerifier(ctx context.Context, cfg config.AuthConfig) (service.TokenVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeDev:
		return devauth.NewVerifier(devauth.Config{
			ExternalUID: cfg.DevAuth.ExternalUID,
			Email:       cfg.DevAuth.Email,
			Name:        cfg.DevAuth.Name,
		})
	case config.AuthModeOIDC:
		return oidc.NewVerifier(ctx, oidc.VerifierConfig{
			IssuerURL: cfg.OIDC.IssuerURL,
			ClientID:  cfg.OIDC.ClientID,
		})
	default:
		return nil, fmt.Errorf("unknown auth mode: %q", cfg.Mode)
	}
}
