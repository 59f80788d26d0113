// Job - загрузка журналов
// Опрос Kafka -> разбор ADIF -> сохранение новых связей
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	adif "github.com/glkeru/hamawards/internal/adif"
	config "github.com/glkeru/hamawards/internal/config"
	cty "github.com/glkeru/hamawards/internal/cty"
	db "github.com/glkeru/hamawards/internal/db"
	kafka "github.com/glkeru/hamawards/internal/external/kafka"
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

	// kafka
	reader, err := kafka.GetNewReader(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroup)
	if err != nil {
		logger.Fatal("kafka", zap.Error(err))
	}
	defer reader.CloseReader()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// database
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

	// справочники
	var ctyDB *cty.DB
	if cfg.CTYPath != "" {
		ctyDB, err = cty.Load(cfg.CTYPath)
		if err != nil {
			logger.Fatal("cty", zap.Error(err))
		}
		logger.Info("cty loaded", zap.Int("entities", ctyDB.Len()))
	}
	plan, err := adif.LoadBandPlan(cfg.BandPlanPath)
	if err != nil {
		logger.Fatal("band plan", zap.Error(err))
	}

	// services
	importer := services.NewImportService(pg, cache, ctyDB, plan, logger)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	err = kafka.Consume(ctx, reader, importer, cfg.ImportWorkers, logger)
	if err != nil {
		logger.Error("consume", zap.Error(err))
	}
}
