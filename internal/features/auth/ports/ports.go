package ports

import (
	"context"

	"pos-shipment-tracking/internal/features/auth/domain"
)

// Authorizer defines the primary port for request authorization.
type Authorizer interface {
	// Authorize resolves a presented consumer key to a credential with write
	// access, or returns domain.ErrUnauthorized.
	Authorize(ctx context.Context, consumerKey string) (*domain.Credential, error)
}

// CredentialStore defines the secondary port for credential lookup.
type CredentialStore interface {
	// Lookup returns the credential stored under the given key hash, or
	// (nil, nil) when the hash is unknown.
	Lookup(ctx context.Context, keyHash string) (*domain.Credential, error)
}
