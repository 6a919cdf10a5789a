package devauth

// Package devauth provides a simple, config-driven token verifier for local
// development. Any non-empty bearer token resolves to the configured identity.

import (
	"context"
	"errors"
	"strings"

	domainauth "github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
)

// Config controls the dev verifier identity.
type Config struct {
	ExternalUID string
	Email       string
	Name        string
}

// Verifier implements the token verifier port for local development.
// It never talks to a provider; do not enable it outside dev.
type Verifier struct {
	identity domainauth.Identity
}

// NewVerifier constructs a dev verifier from Config.
func NewVerifier(cfg Config) (*Verifier, error) {
	if cfg.ExternalUID == "" {
		return nil, errors.New("dev auth: ExternalUID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	return &Verifier{
		identity: domainauth.Identity{
			ExternalUID: cfg.ExternalUID,
			Email:       cfg.Email,
			Name:        cfg.Name,
		},
	}, nil
}

// VerifyBearer accepts any non-empty token and returns the fixed identity.
func (v *Verifier) VerifyBearer(_ context.Context, rawToken string) (domainauth.Identity, error) {
	if strings.TrimSpace(rawToken) == "" {
		return domainauth.Identity{}, errors.New("empty token")
	}
	return v.identity, nil
}
