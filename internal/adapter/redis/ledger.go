// Package redis stores the notification ledger in Redis.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Ledger remembers which (post, user) notifications were sent. Entries
// expire after ttl so the keyspace stays bounded.
type Ledger struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewClient parses url and returns a connected client.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// NewLedger creates a Ledger on client.
func NewLedger(client *redis.Client, ttl time.Duration) *Ledger {
	return &Ledger{client: client, prefix: "notify:sent:", ttl: ttl}
}

func (l *Ledger) key(postID, userID uuid.UUID) string {
	return l.prefix + postID.String() + ":" + userID.String()
}

// Claim marks the notification as sent and reports whether this call made
// the mark. A false result means another run already claimed it.
func (l *Ledger) Claim(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key(postID, userID), time.Now().UTC().Format(time.RFC3339), l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim notification: %w", err)
	}
	return ok, nil
}

// Release removes a claim so a failed delivery is retried on the next run.
func (l *Ledger) Release(ctx context.Context, postID, userID uuid.UUID) error {
	if err := l.client.Del(ctx, l.key(postID, userID)).Err(); err != nil {
		return fmt.Errorf("release notification: %w", err)
	}
	return nil
}
