// @title       Lessons booking API
// @version     1.0
// @description Lessons catalog and orders that reserve them.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	_ "github.com/MikeMC777/lessons-booking/docs"
	"github.com/MikeMC777/lessons-booking/internal/config"
	"github.com/MikeMC777/lessons-booking/internal/health"
	"github.com/MikeMC777/lessons-booking/internal/lesson"
	"github.com/MikeMC777/lessons-booking/internal/logx"
	"github.com/MikeMC777/lessons-booking/internal/mq"
	"github.com/MikeMC777/lessons-booking/internal/order"
)

func init() {
	// prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logx.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer b.close()

	catalog, err := lesson.NewCatalog(b.lessons, logger)
	if err != nil {
		logger.Fatal("lesson catalog", zap.Error(err))
	}

	var pub order.Publisher
	if cfg.AMQPURL != "" {
		p, err := mq.NewPublisher(cfg.AMQPURL, cfg.OrderExchange)
		if err != nil {
			logger.Fatal("order events publisher", zap.Error(err))
		}
		defer p.Close()
		pub = p
	}

	ledger, err := order.NewLedger(b.orders, b.lessons, b.tx, pub, logger)
	if err != nil {
		logger.Fatal("order ledger", zap.Error(err))
	}

	if cfg.GRPCHealthAddr != "" {
		gs, err := serveHealth(ctx, cfg, b.pinger, logger)
		if err != nil {
			logger.Fatal("grpc health", zap.Error(err))
		}
		defer gs.GracefulStop()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(catalog, ledger, logger, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("lessons-api listening", zap.String("addr", cfg.HTTPAddr), zap.String("driver", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
}

func serveHealth(ctx context.Context, cfg config.Config, p health.Pinger, logger *zap.Logger) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", cfg.GRPCHealthAddr)
	if err != nil {
		return nil, err
	}
	gs := grpc.NewServer()
	rep := health.NewReporter(p, logger, cfg.StoreTimeout)
	rep.Register(gs)
	go rep.Watch(ctx, 15*time.Second)
	go func() {
		logger.Info("grpc health listening", zap.String("addr", cfg.GRPCHealthAddr))
		if err := gs.Serve(lis); err != nil {
			logger.Error("grpc health server", zap.Error(err))
		}
	}()
	return gs, nil
}
