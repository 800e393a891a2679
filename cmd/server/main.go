package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breadlab/internal/cart"
	"breadlab/internal/catalog"
	"breadlab/internal/checkout"
	"breadlab/internal/commons"
	"breadlab/internal/infrastructure/logger"
	"breadlab/internal/infrastructure/mysql"
	"breadlab/internal/infrastructure/redis"
	"breadlab/internal/pickup"
	"breadlab/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Stripe.SecretKey == "" {
		zapLogger.Fatal("STRIPE_SECRET_KEY is not set")
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer redisClient.Close()
	zapLogger.Info("redis connected")

	catalogCtrl := catalog.NewModule(db, zapLogger)
	cartCtrl, watchHub := cart.NewModule(redisClient, zapLogger)
	pickupCtrl := pickup.NewController(zapLogger)
	checkoutCtrl := checkout.NewModule(cfg.Stripe, zapLogger)

	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go watchHub.Run(hubCtx)

	router := server.NewRouter(catalogCtrl, cartCtrl, watchHub, pickupCtrl, checkoutCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
