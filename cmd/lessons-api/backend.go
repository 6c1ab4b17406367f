package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikeMC777/lessons-booking/internal/config"
	"github.com/MikeMC777/lessons-booking/internal/health"
	"github.com/MikeMC777/lessons-booking/internal/lesson"
	"github.com/MikeMC777/lessons-booking/internal/order"
	"github.com/MikeMC777/lessons-booking/internal/store"
)

// backend bundles the repositories of one store driver.
type backend struct {
	lessons lesson.Repository
	orders  order.Repository
	tx      store.TxRunner
	pinger  health.Pinger
	close   func()
}

func openBackend(ctx context.Context, cfg config.Config, logger *zap.Logger) (*backend, error) {
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case config.DriverMongo:
		return openMongo(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func openMongo(ctx context.Context, cfg config.Config, logger *zap.Logger) (*backend, error) {
	client, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.StoreTimeout)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	var tx store.TxRunner = store.NoTx{}
	if cfg.MongoTransactions {
		tx = store.MongoTx{Client: client}
	}
	logger.Info("connected to mongodb", zap.String("db", cfg.MongoDB), zap.Bool("transactions", cfg.MongoTransactions))

	return &backend{
		lessons: lesson.NewMongoRepo(db, cfg.StoreTimeout, logger),
		orders:  order.NewMongoRepo(db, cfg.StoreTimeout, logger),
		tx:      tx,
		pinger:  store.MongoPinger{Client: client},
		close:   func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

func openPostgres(ctx context.Context, cfg config.Config, logger *zap.Logger) (*backend, error) {
	pool, err := store.OpenPostgres(ctx, cfg.PostgresDSN, cfg.StoreTimeout)
	if err != nil {
		return nil, err
	}

	m, err := store.NewMigrator(pool)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer func() { _ = m.Close() }()
	if err := m.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if v, err := m.Version(ctx); err == nil {
		logger.Info("connected to postgres", zap.Int64("schema_version", v))
	}

	return &backend{
		lessons: lesson.NewPGRepo(pool, cfg.StoreTimeout),
		orders:  order.NewPGRepo(pool, cfg.StoreTimeout),
		tx:      store.PGTx{Pool: pool},
		pinger:  store.PGPinger{Pool: pool},
		close:   pool.Close,
	}, nil
}
