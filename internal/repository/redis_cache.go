package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/util"

	"github.com/redis/go-redis/v9"
)

// RedisContentCache : кэш содержимого файлов в Redis
// TTL обеспечивает сам Redis, инвалидация по префиксу идёт через SCAN
type RedisContentCache struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewRedisContentCache(rdb *config.RedisClient, ttl time.Duration) *RedisContentCache {
	return &RedisContentCache{rdb, ttl}
}

func (r *RedisContentCache) Get(ctx context.Context, key string) (*model.FileContent, error) {
	val, err := r.client.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения содержимого из Redis", err)
	}

	var content model.FileContent
	if err := json.Unmarshal([]byte(val), &content); err != nil {
		return nil, util.LogError("ошибка десериализации содержимого из кэша", err)
	}
	return &content, nil
}

func (r *RedisContentCache) Set(ctx context.Context, key string, content *model.FileContent) error {
	data, err := json.Marshal(content)
	if err != nil {
		return util.LogError("ошибка сериализации содержимого файла", err)
	}

	cmd := r.client.Client.Set(ctx, key, data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *RedisContentCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Client.Del(ctx, key).Err(); err != nil {
		return util.LogError("ошибка удаления содержимого из Redis", err)
	}
	return nil
}

func (r *RedisContentCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := r.client.Client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return util.LogError("ошибка удаления ключа "+iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return util.LogError("ошибка обхода ключей Redis", err)
	}
	return nil
}
