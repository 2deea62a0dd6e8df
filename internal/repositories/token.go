package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-webshop-client/internal/logger"
)

// TokenRedisRepository stores API access tokens per client session in Redis.
type TokenRedisRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewTokenRedisRepository creates a token store whose entries expire after expiration.
// A zero expiration keeps tokens until they are deleted.
func NewTokenRedisRepository(client *redis.Client, expiration time.Duration) *TokenRedisRepository {
	return &TokenRedisRepository{client: client, exp: expiration}
}

func tokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:access_token", sessionID)
}

// Get returns the token of sessionID, or "" when none is stored.
func (r *TokenRedisRepository) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, tokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read access token", "session_id", sessionID, "error", err)
		return "", err
	}
	return val, nil
}

// Set stores token for sessionID.
func (r *TokenRedisRepository) Set(ctx context.Context, sessionID, token string) error {
	err := r.client.Set(ctx, tokenKey(sessionID), token, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to store access token", "session_id", sessionID, "error", err)
	}
	return err
}

// Delete removes the token of sessionID.
func (r *TokenRedisRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, tokenKey(sessionID)).Err()
	if err != nil {
		logger.Log.Errorw("failed to delete access token", "session_id", sessionID, "error", err)
	}
	return err
}
