// Package storage persists profile-scoped settings (session identifier, signed-in user,
// favorites, checkout progress). Values are stored as JSON documents under string keys.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type Store interface {
	// Get decodes the value stored under key into value. found is false when the key is absent.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const ProfileKeyPrefix = "profile"

// ProfileKey namespaces a setting name under one browser profile.
func ProfileKey(profileID, name string) string {
	return fmt.Sprintf("%s:%s", Key(ProfileKeyPrefix, profileID), name)
}

// Connections holds the selected store and the client it runs on, so the rate limiter and
// health checks can share it.
type Connections struct {
	Store Store
	Redis *redis.Client
	DB    *sql.DB
}

// New opens the store selected by cfg.Storage.Driver.
func New(ctx context.Context, cfg *config.Config) (*Connections, error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		client, err := NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			return nil, err
		}

		return &Connections{Store: NewRedisStore(client, cfg.Storage.TTL), Redis: client}, nil

	case config.StoragePostgres:
		db, err := OpenPostgres(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}

		return &Connections{Store: NewPostgresStore(db, cfg.Storage.TTL), DB: db}, nil

	case config.StorageMemory, "":
		return &Connections{Store: NewMemoryStoreWithTTL(cfg.Storage.TTL, time.Now)}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func (c *Connections) Close() error {
	var errs []error

	if err := c.Store.Close(); err != nil {
		errs = append(errs, err)
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
