package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pos-shipment-tracking/internal/core/cache"
	"pos-shipment-tracking/internal/features/auth/domain"
)

const credentialKeyPrefix = "wc_api_key:"

// RedisCredentialStore implements ports.CredentialStore on top of the cache
// adapter. Credentials are stored as JSON under the hash of their consumer
// key, mirroring the hashed-key lookup of the host platform's key table.
type RedisCredentialStore struct {
	cache cache.Cache
}

// NewRedisCredentialStore creates a new RedisCredentialStore.
func NewRedisCredentialStore(c cache.Cache) *RedisCredentialStore {
	return &RedisCredentialStore{
		cache: c,
	}
}

// Lookup retrieves the credential stored under the given key hash.
// An unknown hash yields (nil, nil).
func (r *RedisCredentialStore) Lookup(ctx context.Context, keyHash string) (*domain.Credential, error) {
	data, err := r.cache.Get(ctx, credentialKeyPrefix+keyHash)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential from store: %w", err)
	}

	var cred domain.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
	}
	return &cred, nil
}

// Save stores a credential under the hash of its consumer key. Used when
// provisioning keys for the POS integration.
func (r *RedisCredentialStore) Save(ctx context.Context, consumerKey string, cred *domain.Credential) error {
	data, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	if err := r.cache.Set(ctx, credentialKeyPrefix+domain.HashKey(consumerKey), data, 0); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}
