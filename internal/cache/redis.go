package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"gatherly/internal/models"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Client caches user rows by id. Derived values (booked counts, revenue)
// are never cached; those are always recomputed from the database.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Client{client: rdb, ttl: cfg.TTL}, nil
}

func userKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// GetUser returns the cached user or (nil, nil) on a miss. A nil client
// always misses.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	if c == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, userKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(val), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SetUser(ctx context.Context, user *models.User) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userKey(user.ID), b, c.ttl).Err()
}

// InvalidateUser drops the cached row after a profile mutation.
func (c *Client) InvalidateUser(ctx context.Context, userID int64) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, userKey(userID)).Err()
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
