package devauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifier_RequiresIdentityFields(t *testing.T) {
	_, err := NewVerifier(Config{Email: "dev@example.com"})
	require.Error(t, err)

	_, err = NewVerifier(Config{ExternalUID: "dev-user"})
	require.Error(t, err)

	v, err := NewVerifier(Config{ExternalUID: "dev-user", Email: "dev@example.com", Name: "Dev"})
	require.NoError(t, err)
	require.NotNil(t, v)
}

func TestVerifyBearer_FixedIdentity(t *testing.T) {
	v, err := NewVerifier(Config{ExternalUID: "dev-user", Email: "dev@example.com"})
	require.NoError(t, err)

	identity, err := v.VerifyBearer(context.Background(), "any-token")
	require.NoError(t, err)
	assert.Equal(t, "dev-user", identity.ExternalUID)
	assert.Equal(t, "dev@example.com", identity.Email)

	_, err = v.VerifyBearer(context.Background(), "   ")
	require.Error(t, err)
}
