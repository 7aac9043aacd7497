package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MaysJava/HappyShop/internal/catalogue"
	"github.com/MaysJava/HappyShop/internal/checkout"
	shophttp "github.com/MaysJava/HappyShop/internal/http"
	"github.com/MaysJava/HappyShop/internal/inventory"
	"github.com/MaysJava/HappyShop/internal/order"
	"github.com/MaysJava/HappyShop/pkg/circuitbreaker"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbPath := getEnv("HAPPYSHOP_DB_PATH", "happyshop.db")
	migrationsDir := getEnv("HAPPYSHOP_MIGRATIONS_DIR", "migrations")
	httpPort := getEnv("HAPPYSHOP_HTTP_PORT", "8080")
	redisAddr := getEnv("HAPPYSHOP_REDIS_ADDR", "localhost:6379")
	requestTimeout := 10 * time.Second

	repo, err := catalogue.NewSQLRepository(dbPath)
	if err != nil {
		logger.Fatal("failed to open catalogue database", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.RunMigrations(migrationsDir); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("catalogue database ready", zap.String("path", dbPath))

	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	cache := catalogue.NewRedisCache(redisClient)
	catalogueSvc := catalogue.NewService(repo, cache, logger)

	// Stock lives in the same database; the breaker fronts every reservation.
	store := circuitbreaker.NewStore(inventory.NewSQLStore(repo.DB()))
	ledger := order.NewMemoryLedger()
	checkoutSvc := checkout.NewService(store, ledger, logger)

	handler := shophttp.NewShopHandler(catalogueSvc, checkoutSvc, logger)
	router := shophttp.NewRouter(handler, requestTimeout)

	srv := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HappyShop listening", zap.String("port", httpPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("redis close error", zap.Error(err))
	}
	logger.Info("HappyShop stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
