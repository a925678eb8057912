package vehicle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pixgate/internal/domain/entities"
	"pixgate/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pixgate:vehicle:"

// RedisStore shares the vehicle cache between instances. Size is bounded by
// TTL instead of FIFO eviction.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IVehicleStore = (*RedisStore)(nil)

func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, plate string) (entities.VehicleInfo, bool, error) {
	val, err := s.client.Get(ctx, redisKey(plate)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.VehicleInfo{}, false, nil
	}
	if err != nil {
		return entities.VehicleInfo{}, false, err
	}
	var info entities.VehicleInfo
	if err := json.Unmarshal(val, &info); err != nil {
		return entities.VehicleInfo{}, false, err
	}
	return info, true, nil
}

func (s *RedisStore) Set(ctx context.Context, plate string, info entities.VehicleInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(plate), data, s.ttl).Err()
}

func redisKey(plate string) string {
	return redisKeyPrefix + plate
}
