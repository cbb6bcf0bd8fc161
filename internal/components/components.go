package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"geotrack/internal/api"
	"geotrack/internal/api/handlers/http/system"
	"geotrack/internal/cache"
	"geotrack/internal/config"
	"geotrack/internal/ingest"
	"geotrack/internal/service"
	"geotrack/internal/storage/postgres"
	"geotrack/internal/storage/redis"
	"geotrack/internal/stream"
	"geotrack/internal/workers"
	"geotrack/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Dispatcher *service.ActionDispatcher
	Sweeper    *workers.ExpiredSweeper
	Mqtt       *ingest.MQTTIngest // nil unless configured
	Kafka      *stream.KafkaPublisher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	// Location cache tiers: in-process first, Redis second, Postgres durable.
	memoryLayer := cache.NewMemoryLayer(cfg.Location.MemoryCapacity)
	redisLayer := redis.NewLocationLayer(redisClient, cfg.Location.TTL)
	entityBuckets := redis.NewGeoBuckets(redisClient, "entities", cfg.Location.GeohashPrecisions, cfg.Location.TTL)

	manager := cache.NewManager(
		[]cache.Layer{memoryLayer, redisLayer},
		storage.Locations(),
		entityBuckets,
		storage.Locations(),
		logger,
		cfg.Location.TTL,
		cfg.Location.LayerTimeout,
	)

	// Geofence hot state. Fence buckets never expire: definitions leave the
	// index only on delete.
	fenceCache := redis.NewGeofenceCache(redisClient, cfg.Geofence.CacheTTL, cfg.Geofence.EntityStatusTTL)
	fenceBuckets := redis.NewGeoBuckets(redisClient, "fences", cfg.Location.GeohashPrecisions, 0)
	actionQueue := redis.NewActionQueue(redisClient, cfg.Dispatcher.QueueKey, logger)

	var kafkaPub *stream.KafkaPublisher
	var eventStream service.EventStream
	if cfg.Kafka.Enabled {
		logger.Info("Initializing Kafka publisher", slog.String("topic", cfg.Kafka.EventTopic))
		kafkaPub = stream.NewKafkaPublisher(cfg.Kafka, logger)
		eventStream = kafkaPub
	}

	locationSvc := service.NewLocationTracker(manager, logger)
	geofenceSvc := service.NewGeofenceRegistry(storage.Geofences(), fenceCache, fenceBuckets, cfg.Geofence, logger)
	checkSvc := service.NewEvaluator(geofenceSvc, fenceCache, storage.Events(), actionQueue, eventStream, cfg.Geofence, logger)
	statsSvc := service.NewEventStats(storage.Events())

	srv := service.NewService(locationSvc, geofenceSvc, checkSvc, statsSvc)

	deps := map[string]system.Pinger{
		"postgres": func(ctx context.Context) error { return storage.Pool.Ping(ctx) },
		"redis":    func(ctx context.Context) error { return redisClient.Client.Ping(ctx).Err() },
	}

	httpServer := api.NewServer(cfg, logger, srv, deps)
	logger.Info("Initialized server")

	dispatcher := service.NewActionDispatcher(logger, cfg.Dispatcher, actionQueue)
	sweeper := workers.NewExpiredSweeper(
		storage.Locations().SweepExpired,
		cfg.Location.SweepInterval,
		30*24*time.Hour,
		logger,
	)

	var mqttIngest *ingest.MQTTIngest
	if cfg.Mqtt.Enabled {
		logger.Info("Initializing MQTT ingest", slog.String("broker", cfg.Mqtt.BrokerURL))
		mqttIngest = ingest.NewMQTTIngest(cfg.Mqtt, locationSvc, logger)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Dispatcher: dispatcher,
		Sweeper:    sweeper,
		Mqtt:       mqttIngest,
		Kafka:      kafkaPub,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}
	if c.Kafka != nil {
		if err := c.Kafka.Close(); err != nil {
			c.logger.Error("Kafka close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
