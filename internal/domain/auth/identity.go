// Package auth holds the identity types shared between the token verifier
// adapter and the HTTP layer. Credential verification itself is external; the
// core trusts the identifier the verifier returns.
package auth

// Identity is the verified caller of a request.
type Identity struct {
	// ExternalUID is the stable subject identifier issued by the identity
	// provider. It maps 1:1 to a users row.
	ExternalUID string `json:"external_uid"`
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
}
