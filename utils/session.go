package utils

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"labourmandi/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// SessionPrefix namespaces session keys in Redis.
const SessionPrefix = "session:"

// SessionStore maps opaque bearer tokens to user ids. Sessions are kept in
// Redis so they survive process restarts and remain valid across replicas;
// they carry no expiry, matching the sign-out-only session policy.
type SessionStore interface {
	Create(ctx context.Context, userID string) (string, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// RedisSessionStore is the production SessionStore.
type RedisSessionStore struct {
	Client *redis.Client
}

var sessionClient *redis.Client

// InitSessionStore connects the dedicated Redis client for sessions.
func InitSessionStore() {
	sessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := sessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionStore returns the Redis-backed session store.
func GetSessionStore() *RedisSessionStore {
	if sessionClient == nil {
		InitSessionStore()
	}
	return &RedisSessionStore{Client: sessionClient}
}

func (s *RedisSessionStore) Create(ctx context.Context, userID string) (string, error) {
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	if err := s.Client.Set(ctx, SessionPrefix+token, userID, 0).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to a user id. An unknown token returns an empty id
// with no error, mirroring the not-found convention of the storage layer.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.Client.Get(ctx, SessionPrefix+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, SessionPrefix+token).Err()
}
