// Job - обработка заявок на получение уровней наград
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	config "github.com/glkeru/hamawards/internal/config"
	db "github.com/glkeru/hamawards/internal/db"
	rabbit "github.com/glkeru/hamawards/internal/external/rabbitmq"
	interf "github.com/glkeru/hamawards/internal/interfaces"
	services "github.com/glkeru/hamawards/internal/services"
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

	// rabbitmq
	reader, err := rabbit.NewRabbitConsumer(cfg.RabbitURL, cfg.ClaimQueue, cfg.ConfirmQueue)
	if err != nil {
		logger.Fatal("rabbitmq", zap.Error(err))
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	// services
	serv := services.NewAwardService(awardsDB, pg, pg, cache, logger)

	// os signals
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	// workers
	rabbit.Work(ctx, reader.Msg, serv, reader, cfg.ClaimWorkers, logger)
}
