package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOIDC verifies bearer tokens against an OIDC provider.
	AuthModeOIDC AuthMode = "oidc"
	// AuthModeDev uses a fixed development identity (for development only).
	AuthModeDev AuthMode = "dev"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oidc", "dev":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oidc, dev)", v)
	}
}

// OIDCConfig contains OIDC token verification configuration.
type OIDCConfig struct {
	// IssuerURL is the OIDC issuer used for discovery.
	IssuerURL string `env:"ISSUER_URL"`
	// ClientID is the audience expected in verified tokens.
	ClientID string `env:"CLIENT_ID" envDefault:"jobtrackr"`
}

// DevAuthConfig controls the fixed development identity.
// Used when AUTH_MODE=dev for development and testing.
type DevAuthConfig struct {
	ExternalUID string `env:"EXTERNAL_UID" envDefault:"dev-user"`
	Email       string `env:"EMAIL"        envDefault:"dev@example.com"`
	Name        string `env:"NAME"         envDefault:"Dev User"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which token verifier to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oidc"`

	// OIDC configuration (used when Mode=oidc).
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// DevAuth configuration (used when Mode=dev).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Validate checks mode-specific requirements.
func (a AuthConfig) Validate() error {
	if a.Mode == AuthModeOIDC && a.OIDC.IssuerURL == "" {
		return fmt.Errorf("OIDC_ISSUER_URL is required when AUTH_MODE=oidc")
	}
	return nil
}
