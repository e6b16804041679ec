package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// HSet 设置哈希表字段
func HSet(ctx context.Context, key string, field string, value interface{}) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.HSet(ctx, key, field, value).Err()
}

// HDel 删除一个或多个哈希表字段
func HDel(ctx context.Context, key string, fields ...string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.HDel(ctx, key, fields...).Err()
}

// HGetAll 获取哈希表中的全部字段和值
func HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if Rdb == nil {
		return nil, nil
	}
	value, err := Rdb.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, key string) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Del(ctx, key).Err()
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
