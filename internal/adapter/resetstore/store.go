// Package resetstore keeps single-use password reset tokens in Redis.
package resetstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const keyPrefix = "mudhakir:reset:"

// Store maps reset token hashes to student IDs with an expiry.
type Store struct {
	client *redis.Client
}

// New creates a Store on an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(tokenHash string) string { return keyPrefix + tokenHash }

// Save stores tokenHash for studentID until ttl elapses.
func (s *Store) Save(ctx context.Context, tokenHash string, studentID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(tokenHash), studentID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("resetstore: save: %w", err)
	}
	return nil
}

// Consume returns the student of tokenHash and deletes the token atomically.
// Unknown, expired or already used tokens yield domain.ErrNotFound.
func (s *Store) Consume(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	value, err := s.client.GetDel(ctx, key(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, fmt.Errorf("resetstore: token: %w", domain.ErrNotFound)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resetstore: consume: %w", err)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resetstore: stored value %q: %w", value, err)
	}
	return id, nil
}

// Ping checks the connection; used by the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Connect opens a client and verifies it with a ping bounded by dialTimeout.
func Connect(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
