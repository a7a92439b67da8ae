package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const resetCodePrefix = "auth:reset-code:"

// ResetCodeStore keeps short-lived password reset codes keyed by email.
type ResetCodeStore interface {
	// Store saves the code for the email, replacing any previous one.
	Store(email, code string, ttl time.Duration) error

	// Consume checks the code and deletes it on match. A code can be used once.
	Consume(email, code string) (bool, error)
}

// MemoryResetCodeStore is the default store backed by an in-process map.
type MemoryResetCodeStore struct {
	mutex sync.RWMutex
	codes map[string]storedCode
}

type storedCode struct {
	code      string
	expiresAt time.Time
}

func NewMemoryResetCodeStore() *MemoryResetCodeStore {
	return &MemoryResetCodeStore{
		codes: make(map[string]storedCode),
	}
}

func (s *MemoryResetCodeStore) Store(email, code string, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.codes[email] = storedCode{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryResetCodeStore) Consume(email, code string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored, exists := s.codes[email]
	if !exists {
		return false, nil
	}
	if time.Now().After(stored.expiresAt) {
		delete(s.codes, email)
		return false, nil
	}
	if stored.code != code {
		return false, nil
	}

	delete(s.codes, email)
	return true, nil
}

// CleanupExpired drops expired codes and returns how many were removed.
func (s *MemoryResetCodeStore) CleanupExpired() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	now := time.Now()
	for email, stored := range s.codes {
		if now.After(stored.expiresAt) {
			delete(s.codes, email)
			removed++
		}
	}
	return removed
}

// RedisResetCodeStore keeps codes in Redis with a TTL, so resets survive
// process restarts and work across replicas.
type RedisResetCodeStore struct {
	client *redis.Client
}

func NewRedisResetCodeStore(addr, password string, db int) (*RedisResetCodeStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisResetCodeStore{client: client}, nil
}

func (s *RedisResetCodeStore) Store(email, code string, ttl time.Duration) error {
	return s.client.Set(context.Background(), resetCodePrefix+email, code, ttl).Err()
}

// consumeScript atomically compares the stored code and deletes it on match.
var consumeScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if not val then
  return 0
end
if val ~= ARGV[1] then
  return 0
end
redis.call("DEL", KEYS[1])
return 1
`)

func (s *RedisResetCodeStore) Consume(email, code string) (bool, error) {
	result, err := consumeScript.Run(context.Background(), s.client,
		[]string{resetCodePrefix + email}, code).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

// Close releases the Redis connection pool.
func (s *RedisResetCodeStore) Close() error {
	return s.client.Close()
}
