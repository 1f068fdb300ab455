package sessions

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultExpiry matches the 24 hour lifetime of the session cookie.
const DefaultExpiry = 24 * time.Hour

// Identity is the authenticated user attached to a session. The JSON layout
// is the "usuario" object returned by /api/login and /api/auth-check.
type Identity struct {
	IDUsuario int64   `json:"id_usuario"`
	Usuario   string  `json:"usuario"`
	Rol       string  `json:"rol"`
	IDPersona *int64  `json:"id_persona"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
}

// Store maps opaque session tokens to identities. Get returns (nil, nil) for
// unknown or expired tokens; Destroy on a missing token is not an error.
type Store interface {
	Get(ctx context.Context, token string) (*Identity, error)
	Set(ctx context.Context, token string, identity *Identity, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}

// RedisStore keeps sessions in Redis so they survive restarts and are shared
// across instances.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Identity, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var identity Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &identity, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, identity *Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// MemoryStore is a mutex-guarded in-process store. It backs tests and local
// development without Redis.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*Identity, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, nil
	}

	identity := entry.identity
	return &identity, nil
}

func (s *MemoryStore) Set(ctx context.Context, token string, identity *Identity, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{identity: *identity, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
