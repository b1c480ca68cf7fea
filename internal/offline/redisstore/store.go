// Package redisstore keeps offline cache buckets in Redis so several instances share them.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"sports-hub-service/internal/offline"
)

// DefaultPrefix namespaces every key the store writes.
const DefaultPrefix = "offline"

// Store tracks bucket names in a set and each bucket's entries in a hash.
type Store struct {
	client redis.Cmdable
	prefix string
}

// New wraps an existing client. A blank prefix uses DefaultPrefix.
func New(client redis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Connect parses a redis:// URL, pings the server, and returns a client.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

func (s *Store) bucketsKey() string {
	return fmt.Sprintf("%s:buckets", s.prefix)
}

func (s *Store) bucketKey(name string) string {
	return fmt.Sprintf("%s:bucket:%s", s.prefix, name)
}

func (s *Store) Open(ctx context.Context, name string) (offline.Bucket, error) {
	if err := s.client.SAdd(ctx, s.bucketsKey(), name).Err(); err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", name, err)
	}
	return &bucket{client: s.client, key: s.bucketKey(name)}, nil
}

func (s *Store) Names(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.bucketsKey()).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) Delete(ctx context.Context, name string) (bool, error) {
	pipe := s.client.TxPipeline()
	removed := pipe.SRem(ctx, s.bucketsKey(), name)
	pipe.Del(ctx, s.bucketKey(name))
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return removed.Val() > 0, nil
}

type bucket struct {
	client redis.Cmdable
	key    string
}

func (b *bucket) Match(ctx context.Context, key string) (offline.StoredResponse, error) {
	raw, err := b.client.HGet(ctx, b.key, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return offline.StoredResponse{}, offline.ErrNoMatch
	}
	if err != nil {
		return offline.StoredResponse{}, err
	}
	var resp offline.StoredResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return offline.StoredResponse{}, fmt.Errorf("unmarshaling cached response: %w", err)
	}
	return resp, nil
}

func (b *bucket) Put(ctx context.Context, key string, resp offline.StoredResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshaling cached response: %w", err)
	}
	return b.client.HSet(ctx, b.key, key, data).Err()
}

func (b *bucket) Keys(ctx context.Context) ([]string, error) {
	keys, err := b.client.HKeys(ctx, b.key).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
