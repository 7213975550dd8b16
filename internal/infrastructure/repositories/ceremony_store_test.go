package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdestafadilah/pesan-pms/domain"
)

func newCeremonyStoreForTest(t *testing.T) (domain.CeremonyStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCeremonyStore(client, 5*time.Minute), mr
}

func TestCeremonyStore_PutGet(t *testing.T) {
	store, _ := newCeremonyStoreForTest(t)
	ctx := context.Background()

	ceremony := &domain.PasskeyCeremony{
		ID:        "ceremony_1",
		Kind:      domain.CeremonyRegistration,
		UserID:    "user_1",
		DataJSON:  `{"challenge":"abc"}`,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, store.Put(ctx, ceremony))

	got, err := store.Get(ctx, "ceremony_1")
	require.NoError(t, err)
	assert.Equal(t, domain.CeremonyRegistration, got.Kind)
	assert.Equal(t, "user_1", got.UserID)
	assert.Equal(t, ceremony.DataJSON, got.DataJSON)
}

func TestCeremonyStore_GetUnknown(t *testing.T) {
	store, _ := newCeremonyStoreForTest(t)

	_, err := store.Get(context.Background(), "ceremony_missing")
	assert.True(t, errors.Is(err, domain.ErrCeremonyNotFound), "got %v", err)
}

func TestCeremonyStore_GetExpired(t *testing.T) {
	store, _ := newCeremonyStoreForTest(t)
	ctx := context.Background()

	// Already past its own expiry even though the Redis key survives.
	require.NoError(t, store.Put(ctx, &domain.PasskeyCeremony{
		ID:        "ceremony_stale",
		Kind:      domain.CeremonyLogin,
		DataJSON:  `{}`,
		ExpiresAt: time.Now().Add(-time.Second),
	}))

	_, err := store.Get(ctx, "ceremony_stale")
	assert.True(t, errors.Is(err, domain.ErrCeremonyExpired), "got %v", err)

	// The stale entry is gone after the failed read.
	_, err = store.Get(ctx, "ceremony_stale")
	assert.True(t, errors.Is(err, domain.ErrCeremonyNotFound), "got %v", err)
}

func TestCeremonyStore_KeyTTL(t *testing.T) {
	store, mr := newCeremonyStoreForTest(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.PasskeyCeremony{
		ID:        "ceremony_ttl",
		Kind:      domain.CeremonyLogin,
		DataJSON:  `{}`,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}))

	mr.FastForward(6 * time.Minute)

	_, err := store.Get(ctx, "ceremony_ttl")
	assert.True(t, errors.Is(err, domain.ErrCeremonyNotFound), "got %v", err)
}

func TestCeremonyStore_Delete(t *testing.T) {
	store, _ := newCeremonyStoreForTest(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &domain.PasskeyCeremony{
		ID:        "ceremony_once",
		Kind:      domain.CeremonyRegistration,
		DataJSON:  `{}`,
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}))
	require.NoError(t, store.Delete(ctx, "ceremony_once"))

	_, err := store.Get(ctx, "ceremony_once")
	assert.True(t, errors.Is(err, domain.ErrCeremonyNotFound), "got %v", err)
}
