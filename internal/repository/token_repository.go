package repository

import (
	"context"
	"course_backend/internal/util"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenDenylist 已登出令牌的黑名单；未配置 redis 时所有方法为空操作
type TokenDenylist struct {
	Redis *redis.Client
}

func NewTokenDenylist(rdb *redis.Client) *TokenDenylist {
	return &TokenDenylist{Redis: rdb}
}

func revokedKey(jti string) string {
	return fmt.Sprintf("auth:revoked:%s", jti)
}

func (d *TokenDenylist) Enabled() bool {
	return d != nil && d.Redis != nil
}

// Revoke 令牌在 ttl 后本身就会过期，黑名单条目随之失效
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if !d.Enabled() || jti == "" || ttl <= 0 {
		return nil
	}
	if err := d.Redis.Set(ctx, revokedKey(jti), 1, ttl).Err(); err != nil {
		return util.Storage(err)
	}
	return nil
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if !d.Enabled() || jti == "" {
		return false, nil
	}
	n, err := d.Redis.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, util.Storage(err)
	}
	return n > 0, nil
}
