package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MikeMC777/orders-payments/internal/config"
	"github.com/MikeMC777/orders-payments/internal/order"
	"github.com/MikeMC777/orders-payments/internal/upstream"
)

// openRepo builds the order store named by cfg.Driver. The returned func
// releases it.
func openRepo(ctx context.Context, cfg config.Store, orders *upstream.OrderClient) (order.Repository, func(), error) {
	switch cfg.Driver {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres ping: %w", err)
		}
		repo := order.NewPGRepo(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		log.Printf("[store] postgres ready")
		return repo, pool.Close, nil

	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite %s: %w", cfg.DSN, err)
		}
		repo := order.NewGormRepo(db)
		if err := repo.AutoMigrate(); err != nil {
			return nil, nil, fmt.Errorf("sqlite migrate: %w", err)
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		log.Printf("[store] sqlite ready at %s", cfg.DSN)
		return repo, closeDB, nil

	case "upstream":
		log.Printf("[store] using the external Order API")
		return order.NewUpstreamRepo(orders), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown ORDER_STORE_DRIVER %q", cfg.Driver)
}
