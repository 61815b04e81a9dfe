package adapters

import (
	"context"
	"testing"

	"pos-shipment-tracking/internal/core/cache"
	"pos-shipment-tracking/internal/features/auth/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *RedisCredentialStore {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisCredentialStore(adapter)
}

func TestRedisCredentialStore_SaveAndLookup(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	cred := &domain.Credential{
		KeyID:       1,
		UserID:      42,
		Permissions: domain.PermissionReadWrite,
	}

	err := store.Save(ctx, "ck_live_0123456789", cred)
	require.NoError(t, err)

	found, err := store.Lookup(ctx, domain.HashKey("ck_live_0123456789"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, cred, found)
}

func TestRedisCredentialStore_LookupUnknownKey(t *testing.T) {
	store := setupStore(t)

	found, err := store.Lookup(context.Background(), domain.HashKey("ck_never_saved"))

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRedisCredentialStore_LookupIsByHash(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	err := store.Save(ctx, "ck_live_0123456789", &domain.Credential{KeyID: 1, Permissions: domain.PermissionWrite})
	require.NoError(t, err)

	// The raw key is not a valid lookup key; only its hash resolves.
	found, err := store.Lookup(ctx, "ck_live_0123456789")
	require.NoError(t, err)
	assert.Nil(t, found)
}
