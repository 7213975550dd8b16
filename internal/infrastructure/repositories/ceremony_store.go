package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mdestafadilah/pesan-pms/domain"
)

// CeremonyStoreImpl implements domain.CeremonyStore using Redis. Keys
// expire on their own, so an abandoned ceremony never needs cleanup.
type CeremonyStoreImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCeremonyStore creates a new WebAuthn ceremony store
func NewCeremonyStore(client *redis.Client, ttl time.Duration) domain.CeremonyStore {
	return &CeremonyStoreImpl{
		client: client,
		prefix: "webauthn:ceremony:",
		ttl:    ttl,
	}
}

// Put implements domain.CeremonyStore
func (s *CeremonyStoreImpl) Put(ctx context.Context, ceremony *domain.PasskeyCeremony) error {
	key := s.prefix + ceremony.ID
	data, err := json.Marshal(ceremony)
	if err != nil {
		return fmt.Errorf("failed to marshal ceremony: %w", err)
	}
	return s.client.Set(ctx, key, data, s.ttl).Err()
}

// Get implements domain.CeremonyStore
func (s *CeremonyStoreImpl) Get(ctx context.Context, id string) (*domain.PasskeyCeremony, error) {
	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrCeremonyNotFound
		}
		return nil, err
	}

	var ceremony domain.PasskeyCeremony
	if err := json.Unmarshal([]byte(data), &ceremony); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ceremony: %w", err)
	}

	if ceremony.ExpiresAt.Before(time.Now()) {
		s.client.Del(ctx, key)
		return nil, domain.ErrCeremonyExpired
	}

	return &ceremony, nil
}

// Delete implements domain.CeremonyStore
func (s *CeremonyStoreImpl) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}
