package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore expose le même contrat que FileStore au-dessus de Redis : les
// collections restent des blobs JSON entiers sous une clé string, sans TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connexion Redis %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) key(k string) string {
	return "shop:" + k
}

func (r *RedisStore) Read(key string) (string, bool, error) {
	data, err := r.client.Get(context.Background(), r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return data, true, nil
}

func (r *RedisStore) Write(key, value string) error {
	return r.client.Set(context.Background(), r.key(key), value, 0).Err()
}

func (r *RedisStore) Remove(key string) error {
	return r.client.Del(context.Background(), r.key(key)).Err()
}
