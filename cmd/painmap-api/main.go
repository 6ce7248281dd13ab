package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spine-intake/common/database"
	"spine-intake/common/logger"
	commonmqtt "spine-intake/common/mqtt"
	commonredis "spine-intake/common/redis"
	"spine-intake/internal/config"
	"spine-intake/internal/domain"
	"spine-intake/internal/events"
	httpapi "spine-intake/internal/http"
	"spine-intake/internal/raster"
	"spine-intake/internal/repository"
	"spine-intake/internal/resolver"
	"spine-intake/internal/service"
	"spine-intake/internal/store"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "painmap-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis 在 redis 后端或启用事件 stream 时才需要
	var redisClient *redis.Client
	if cfg.FormStateBackend == config.BackendRedis || cfg.Events.RedisStream != "" {
		redisClient = commonredis.NewRedisClient(&cfg.Redis)
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		if err := commonredis.Ping(pingCtx, redisClient); err != nil {
			log.Warn("Redis ping failed, continuing", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		pingCancel()
	}

	var db *sql.DB
	var repo repository.FormStateRepository
	switch cfg.FormStateBackend {
	case config.BackendPostgres:
		d, err := database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		db = d
		pg := repository.NewPostgresFormStateRepo(db, log)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to prepare assessments table", zap.Error(err))
		}
		repo = pg
	case config.BackendRedis:
		repo = repository.NewRedisFormStateRepo(store.NewRedisKV(redisClient), cfg.SessionTTL, log)
	default:
		log.Warn("Using in-memory form state, marks are lost on restart")
		repo = repository.NewMemoryFormStateRepo()
	}
	log.Info("Form state backend ready", zap.String("backend", cfg.FormStateBackend))

	var publishers []events.Publisher
	if cfg.Events.RedisStream != "" {
		publishers = append(publishers, events.NewStreamPublisher(redisClient, cfg.Events.RedisStream))
	}
	var mqttClient *commonmqtt.Client
	if cfg.MQTT.Enabled {
		c, err := commonmqtt.NewClient(&cfg.MQTT.MQTTConfig)
		if err != nil {
			log.Warn("MQTT unavailable, events will not be published to broker", zap.Error(err))
		} else {
			mqttClient = c
			publishers = append(publishers, events.NewMQTTPublisher(c, cfg.MQTT.Topic))
		}
	}
	publisher := events.NewFanout(log, publishers...)

	var summary service.Summarizer
	if cfg.Summary.Enabled {
		summary = service.NewSummaryClient(cfg.Summary.BaseURL, cfg.Summary.APIKey, cfg.Summary.Model, log)
	}

	rasters := raster.NewRegistry()
	rasters.LoadFiles(map[domain.View]string{
		domain.ViewFront: cfg.PainMap.FrontImage,
		domain.ViewBack:  cfg.PainMap.BackImage,
	}, log)

	svc := service.NewPainMapService(
		repo,
		rasters,
		resolver.New(uint8(cfg.PainMap.AlphaThreshold), log),
		publisher,
		summary,
		service.Options{
			DisplayScale:  cfg.PainMap.DisplayScale,
			ReferenceSize: domain.NaturalSize{Width: cfg.PainMap.ReferenceWidth, Height: cfg.PainMap.ReferenceHeight},
			MarkerRadius:  cfg.PainMap.MarkerRadius,
		},
		log,
	)

	router := httpapi.NewRouter(log)
	router.RegisterPainMapRoutes(httpapi.NewPainMapHandler(svc, log))
	router.RegisterHealthRoutes(httpapi.NewHealthHandler(svc, db, redisClient, log))

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		cancel()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server exited", zap.Error(err))
		}
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if mqttClient != nil {
		mqttClient.Disconnect()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = database.Close(db)
	}
}
