package dialogue

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"neobook/models"

	"github.com/go-redis/redis/v8"
)

const slotContextPrefix = "slots:ctx:"

// SlotStore keeps one SlotSet per session.
type SlotStore interface {
	Get(ctx context.Context, sessionID string) (*models.SlotSet, error)
	Set(ctx context.Context, sessionID string, slots *models.SlotSet) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSlotStore stores slot state as JSON blobs with a TTL, so abandoned
// booking attempts expire on their own.
type RedisSlotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSlotStore(client *redis.Client, ttl time.Duration) *RedisSlotStore {
	return &RedisSlotStore{client: client, ttl: ttl}
}

func (s *RedisSlotStore) Get(ctx context.Context, sessionID string) (*models.SlotSet, error) {
	key := slotContextPrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.SlotSet{}, nil
	}
	if err != nil {
		return nil, err
	}
	var slots models.SlotSet
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, err
	}
	return &slots, nil
}

func (s *RedisSlotStore) Set(ctx context.Context, sessionID string, slots *models.SlotSet) error {
	key := slotContextPrefix + sessionID
	b, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisSlotStore) Clear(ctx context.Context, sessionID string) error {
	key := slotContextPrefix + sessionID
	return s.client.Del(ctx, key).Err()
}

// InMemorySlotStore is a SlotStore for tests and single-process deployments.
type InMemorySlotStore struct {
	mu    sync.Mutex
	slots map[string]models.SlotSet
}

func NewInMemorySlotStore() *InMemorySlotStore {
	return &InMemorySlotStore{slots: make(map[string]models.SlotSet)}
}

func (s *InMemorySlotStore) Get(ctx context.Context, sessionID string) (*models.SlotSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := s.slots[sessionID]
	return &slots, nil
}

func (s *InMemorySlotStore) Set(ctx context.Context, sessionID string, slots *models.SlotSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = *slots
	return nil
}

func (s *InMemorySlotStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, sessionID)
	return nil
}
