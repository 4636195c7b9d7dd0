package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/slavinskiyboris/stellar-burgers/internal/redisx"
)

// CookieJar keeps short-lived access tokens in Redis, expiring together
// with the token itself.
type CookieJar struct {
	Redis *redis.Client
	// Fallback TTL for tokens without an exp claim.
	TTL time.Duration
	now func() time.Time
}

func NewCookieJar(rdb *redis.Client, ttl time.Duration) *CookieJar {
	return &CookieJar{Redis: rdb, TTL: ttl, now: time.Now}
}

func (j *CookieJar) Get(ctx context.Context, sid string) (string, error) {
	tok, err := j.Redis.Get(ctx, fmt.Sprintf(redisx.KeyAccessToken, sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return tok, err
}

// Set stores token; an already expired token is not stored at all.
func (j *CookieJar) Set(ctx context.Context, sid, token string) error {
	ttl := AccessTTL(token, j.now(), j.TTL)
	key := fmt.Sprintf(redisx.KeyAccessToken, sid)
	if ttl <= 0 {
		return j.Redis.Del(ctx, key).Err()
	}
	return j.Redis.Set(ctx, key, token, ttl).Err()
}

func (j *CookieJar) Delete(ctx context.Context, sid string) error {
	return j.Redis.Del(ctx, fmt.Sprintf(redisx.KeyAccessToken, sid)).Err()
}
