package kvstore

import (
	"context"
	"fmt"

	"github.com/famoussince/storefront/pkg/config"
	"github.com/famoussince/storefront/pkg/db"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/famoussince/storefront/pkg/migrate"
	"github.com/famoussince/storefront/pkg/redis"
)

// Open builds the store selected by cfg.Store.Driver, connecting and (for
// SQL drivers) migrating as configured.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (Store, error) {
	switch driver := cfg.Store.NormalizedDriver(); driver {
	case config.StoreDriverMemory:
		return NewMemory(), nil

	case config.StoreDriverRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap redis: %w", err)
		}
		return NewRedis(client), nil

	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		dbCfg := cfg.DB
		dbCfg.Driver = driver
		client, err := db.New(ctx, dbCfg, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrap database: %w", err)
		}
		if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
			_ = client.Close()
			return nil, err
		}
		return NewSQL(client), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}
