package oidc

// Package oidc verifies API bearer tokens against an OIDC provider. The
// tracker never authenticates credentials itself; it trusts the subject
// claim of a token the provider's keys verify.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/jobtrackr/jobtrackr-api/internal/domain/auth"
)

// VerifierConfig holds configuration for the token verifier.
type VerifierConfig struct {
	// IssuerURL is the OIDC issuer, with or without the
	// /.well-known/openid-configuration suffix.
	IssuerURL string
	// ClientID is the audience expected in verified tokens.
	ClientID string
	// HTTPClient is optional and defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// Verifier validates bearer tokens using a go-oidc IDTokenVerifier backed by
// the provider's published JWKS.
type Verifier struct {
	verifier *gooidc.IDTokenVerifier
}

// NewVerifier discovers the issuer and constructs a Verifier. Discovery runs
// once at startup; key rotation is handled by go-oidc's remote key set.
func NewVerifier(ctx context.Context, config VerifierConfig) (*Verifier, error) {
	if config.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

	issuer := strings.TrimSuffix(config.IssuerURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	provider, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	return &Verifier{
		verifier: provider.Verifier(&gooidc.Config{ClientID: config.ClientID}),
	}, nil
}

// claims are the token claims the tracker cares about.
type claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// VerifyBearer checks the token signature, issuer, audience, and expiry, and
// returns the identity it asserts.
func (v *Verifier) VerifyBearer(ctx context.Context, rawToken string) (domainauth.Identity, error) {
	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("verify token: %w", err)
	}

	var c claims
	if claimsErr := token.Claims(&c); claimsErr != nil {
		return domainauth.Identity{}, fmt.Errorf("decode claims: %w", claimsErr)
	}
	if c.Subject == "" {
		c.Subject = token.Subject
	}

	return domainauth.Identity{
		ExternalUID: c.Subject,
		Email:       c.Email,
		Name:        c.Name,
	}, nil
}
