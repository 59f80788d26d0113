package awards

import (
	"context"
	"errors"
	"fmt"
	"time"

	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// CacheService - результаты проверок: один hash на пользователя, поле - award и режим
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(addr string, user string, pwd string, ttl time.Duration) (serv *CacheService, err error) {
	if addr == "" {
		return nil, fmt.Errorf("env AWARDS_CACHE_URL is not set")
	}
	db := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    pwd,
		Username:    user,
		DB:          0,
		MaxRetries:  5,
		DialTimeout: 10 * time.Second,
	})
	err = db.Ping(context.Background()).Err()
	if err != nil {
		return nil, err
	}

	return &CacheService{db, ttl}, nil
}

func evaluationsKey(userID string) string {
	return "awards:eval:" + userID
}

func awardVersionKey(awardID uuid.UUID) string {
	return "awards:version:" + awardID.String()
}

func (c *CacheService) GetEvaluation(ctx context.Context, userID string, key string) ([]byte, error) {
	val, err := c.client.HGet(ctx, evaluationsKey(userID), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, models.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return val, nil
}

// TTL общий для всех проверок пользователя и продлевается при записи
func (c *CacheService) SetEvaluation(ctx context.Context, userID string, key string, data []byte) error {
	hkey := evaluationsKey(userID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hkey, key, data)
		pipe.Expire(ctx, hkey, c.ttl)
		return nil
	})
	return err
}

func (c *CacheService) InvalidateUser(ctx context.Context, userID string) error {
	return c.client.Del(ctx, evaluationsKey(userID)).Err()
}

// Версия награды, 0 - награда не менялась. Ключ без TTL: должен жить дольше записей кэша
func (c *CacheService) AwardVersion(ctx context.Context, awardID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, awardVersionKey(awardID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return v, nil
}

func (c *CacheService) BumpAwardVersion(ctx context.Context, awardID uuid.UUID) error {
	return c.client.Incr(ctx, awardVersionKey(awardID)).Err()
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
