package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Gabriel-Dorassi/tvtec-portal/internal/models"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/config"
)

// Session hash keys, mirroring the four entries of the original persisted
// state.
const (
	redisKey      = "portal:session"
	fieldAuth     = "auth"
	fieldToken    = "token"
	fieldUsername = "username"
	fieldRole     = "role"
)

// NewRedisClient returns a configured Redis client, failing fast when the
// server is unreachable.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// RedisStore persists the session as a Redis hash, for deployments where the
// gateway runs more than one replica.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads the stored session. Absent fields stay zero-valued.
func (r *RedisStore) Load(ctx context.Context) (models.Session, error) {
	values, err := r.client.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		Authenticated: values[fieldAuth] == "true",
		Token:         values[fieldToken],
		Username:      values[fieldUsername],
		Role:          values[fieldRole],
	}, nil
}

// Save writes all four entries in one round trip.
func (r *RedisStore) Save(ctx context.Context, s models.Session) error {
	auth := "false"
	if s.Authenticated {
		auth = "true"
	}
	return r.client.HSet(ctx, redisKey,
		fieldAuth, auth,
		fieldToken, s.Token,
		fieldUsername, s.Username,
		fieldRole, s.Role,
	).Err()
}

// Clear deletes the session hash. Deleting an absent hash succeeds.
func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, redisKey).Err()
}
