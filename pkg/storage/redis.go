package storage

import (
	"context"

	"github.com/salescampus/salescampus-backend/pkg/redis"
)

// Redis is a Device persisted in redis. Records live under the client's
// record namespace and never expire.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.client.RecordKey(key))
	if redis.IsNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrapErr(OpGet, key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, r.client.RecordKey(key), value, 0)
	return wrapErr(OpSet, key, err)
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.client.RecordKey(key))
	return wrapErr(OpDelete, key, err)
}
