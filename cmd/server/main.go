// HTTP API: проверка наград, получение уровней, каталог наград
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	api "github.com/glkeru/hamawards/internal/api"
	config "github.com/glkeru/hamawards/internal/config"
	db "github.com/glkeru/hamawards/internal/db"
	interf "github.com/glkeru/hamawards/internal/interfaces"
	services "github.com/glkeru/hamawards/internal/services"
	tracing "github.com/glkeru/hamawards/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func main() {
	// config
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// log
	logger, err := cfg.Logger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// tracing
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.OTELEndpoint, "awards", logger)
	if err != nil {
		logger.Fatal("tracer", zap.Error(err))
	}
	defer shutdownTracer()

	// awards database
	awardsDB, err := db.NewAwardsDB(cfg.Mongo, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("mongo", zap.Error(err))
	}
	defer awardsDB.Close(context.Background())

	// contacts and claims database
	dsn, err := cfg.PostgresDSN()
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	pg, err := db.NewPostgresDB(ctx, dsn, logger)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer pg.Close()
	if err = pg.EnsureSchema(ctx); err != nil {
		logger.Fatal("schema", zap.Error(err))
	}

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd, cfg.CacheTTL)
	if err != nil {
		logger.Warn("cache disabled", zap.Error(err))
	} else {
		defer redis.Close()
		cache = redis
	}

	// services
	serv := services.NewAwardService(awardsDB, pg, pg, cache, logger)
	catalogue := services.NewCatalogueService(awardsDB, cache, logger)

	// api handlers
	r := api.NewHandler(serv, catalogue, awardsDB, pg, logger)
	srv := &http.Server{
		Handler:      otelhttp.NewHandler(r, "awards"),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen", zap.Error(err))
			cancel()
		}
	}()
	logger.Info("awards API started", zap.Int("port", cfg.Port))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}
	timeout, tcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer tcancel()
	err = srv.Shutdown(timeout)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
