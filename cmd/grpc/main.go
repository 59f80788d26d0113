// gRPC API: проверка наград и наград по связи
package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	grpcapi "github.com/glkeru/hamawards/internal/api/grpc"
	config "github.com/glkeru/hamawards/internal/config"
	db "github.com/glkeru/hamawards/internal/db"
	interf "github.com/glkeru/hamawards/internal/interfaces"
	services "github.com/glkeru/hamawards/internal/services"
	tracing "github.com/glkeru/hamawards/observability/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
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
	shutdownTracer, err := tracing.InitTracer(ctx, cfg.OTELEndpoint, "awards-grpc", logger)
	if err != nil {
		logger.Fatal("tracer", zap.Error(err))
	}
	defer shutdownTracer()

	// databases
	awardsDB, err := db.NewAwardsDB(cfg.Mongo, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("mongo", zap.Error(err))
	}
	defer awardsDB.Close(context.Background())

	dsn, err := cfg.PostgresDSN()
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	pg, err := db.NewPostgresDB(ctx, dsn, logger)
	if err != nil {
		logger.Fatal("postgres", zap.Error(err))
	}
	defer pg.Close()

	// cache
	var cache interf.CacheStorage
	redis, err := db.NewCacheService(cfg.CacheURL, cfg.CacheUser, cfg.CachePwd, cfg.CacheTTL)
	if err != nil {
		logger.Warn("cache disabled", zap.Error(err))
	} else {
		defer redis.Close()
		cache = redis
	}

	serv := services.NewAwardService(awardsDB, pg, pg, cache, logger)

	// server
	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.GRPCPort))
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
	srv := grpc.NewServer()
	grpcapi.RegisterAwardsServer(srv, grpcapi.NewAwardsService(serv, logger))
	go func() {
		if err := srv.Serve(lis); err != nil {
			logger.Error("serve", zap.Error(err))
			cancel()
		}
	}()
	logger.Info("awards gRPC started", zap.Int("port", cfg.GRPCPort))

	// shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}
	srv.GracefulStop()
}
