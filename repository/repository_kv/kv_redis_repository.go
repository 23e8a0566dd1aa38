package repository_kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Super-Badmen-Viper/NineSongProject/domain"
	"github.com/redis/go-redis/v9"
)

const redisScanCount = 256

var redisGlobEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

type redisKVRepository struct {
	client redis.UniversalClient
}

func NewRedisKVRepository(client redis.UniversalClient) domain.KVStore {
	return &redisKVRepository{client: client}
}

func (r *redisKVRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return value, nil
}

func (r *redisKVRepository) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}
	return nil
}

func (r *redisKVRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// List 使用 SCAN 遍历，SCAN 可能重复返回同一个键，这里去重
func (r *redisKVRepository) List(ctx context.Context, prefix string) ([]string, error) {
	match := redisGlobEscaper.Replace(prefix) + "*"
	iter := r.client.Scan(ctx, 0, match, redisScanCount).Iterator()

	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for iter.Next(ctx) {
		key := iter.Val()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
	}
	return keys, nil
}
