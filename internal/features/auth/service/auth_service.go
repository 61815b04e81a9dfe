package service

import (
	"context"
	"fmt"

	"pos-shipment-tracking/internal/features/auth/domain"
	"pos-shipment-tracking/internal/features/auth/ports"
)

// AuthService resolves presented consumer keys against the credential store.
type AuthService struct {
	store ports.CredentialStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store ports.CredentialStore) *AuthService {
	return &AuthService{
		store: store,
	}
}

// Authorize validates a consumer key and returns its credential when it
// grants write access. Unknown keys and read-only keys without an
// order-management capability are both rejected as unauthorized.
func (s *AuthService) Authorize(ctx context.Context, consumerKey string) (*domain.Credential, error) {
	if consumerKey == "" {
		return nil, domain.ErrUnauthorized
	}

	cred, err := s.store.Lookup(ctx, domain.HashKey(consumerKey))
	if err != nil {
		return nil, fmt.Errorf("credential lookup failed: %w", err)
	}
	if cred == nil || !cred.CanWrite() {
		return nil, domain.ErrUnauthorized
	}

	return cred, nil
}
