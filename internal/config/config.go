package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Postgres   PostgresConfig   `json:"postgres"`
	Redis      RedisConfig      `json:"redis"`
	APIKey     string           `json:"api_key,omitempty"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
	Location   LocationConfig   `json:"location"`
	Geofence   GeofenceConfig   `json:"geofence"`
	Dispatcher DispatcherConfig `json:"dispatcher"`
	Kafka      KafkaConfig      `json:"kafka"`
	Mqtt       MqttConfig       `json:"mqtt"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// RateLimitConfig carries per-surface request budgets: the public ingest
// routes take high-frequency position reports, the admin surface does not.
type RateLimitConfig struct {
	PublicRPS   int           `json:"public_rps"`
	PublicBurst int           `json:"public_burst"`
	AdminRPS    int           `json:"admin_rps"`
	AdminBurst  int           `json:"admin_burst"`
	VisitorTTL  time.Duration `json:"visitor_ttl"`
}

// LocationConfig tunes the multi-tier location cache.
type LocationConfig struct {
	TTL               time.Duration `json:"ttl"`
	MemoryCapacity    int           `json:"memory_capacity"`
	LayerTimeout      time.Duration `json:"layer_timeout"`
	GeohashPrecisions []int         `json:"geohash_precisions"`
	SweepInterval     time.Duration `json:"sweep_interval"`
}

type GeofenceConfig struct {
	MaxRadiusM      float64       `json:"max_radius_m"`
	CacheTTL        time.Duration `json:"cache_ttl"`
	MaxCandidates   int           `json:"max_candidates"`
	NearbyFactor    float64       `json:"nearby_factor"`
	EntityStatusTTL time.Duration `json:"entity_status_ttl"`
}

type DispatcherConfig struct {
	WebhookURL string `json:"webhook_url"`
	Disabled   bool   `json:"disabled"`
	QueueKey   string `json:"queue_key"`
}

type KafkaConfig struct {
	Brokers    []string `json:"brokers"`
	EventTopic string   `json:"event_topic"`
	Enabled    bool     `json:"enabled"`
}

type MqttConfig struct {
	BrokerURL string `json:"broker_url"`
	Topic     string `json:"topic"`
	ClientID  string `json:"client_id"`
	Enabled   bool   `json:"enabled"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "geotrack_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		RateLimit: RateLimitConfig{
			PublicRPS:   getEnvInt("RATE_LIMIT_PUBLIC_RPS", 10),
			PublicBurst: getEnvInt("RATE_LIMIT_PUBLIC_BURST", 20),
			AdminRPS:    getEnvInt("RATE_LIMIT_ADMIN_RPS", 2),
			AdminBurst:  getEnvInt("RATE_LIMIT_ADMIN_BURST", 5),
			VisitorTTL:  getEnvDuration("RATE_LIMIT_VISITOR_TTL", 10*time.Minute),
		},
		Location: LocationConfig{
			TTL:               getEnvDuration("LOCATION_TTL", 5*time.Minute),
			MemoryCapacity:    getEnvInt("LOCATION_MEMORY_CAPACITY", 10000),
			LayerTimeout:      getEnvDuration("LOCATION_LAYER_TIMEOUT", 2*time.Second),
			GeohashPrecisions: getEnvInts("LOCATION_GEOHASH_PRECISIONS", []int{3, 4, 5, 6, 7}),
			SweepInterval:     getEnvDuration("LOCATION_SWEEP_INTERVAL", 5*time.Minute),
		},
		Geofence: GeofenceConfig{
			MaxRadiusM:      getEnvFloat("GEOFENCE_MAX_RADIUS_M", 50000),
			CacheTTL:        getEnvDuration("GEOFENCE_CACHE_TTL", 5*time.Minute),
			MaxCandidates:   getEnvInt("GEOFENCE_MAX_CANDIDATES", 200),
			NearbyFactor:    getEnvFloat("GEOFENCE_NEARBY_FACTOR", 1.5),
			EntityStatusTTL: getEnvDuration("GEOFENCE_ENTITY_STATUS_TTL", 5*time.Minute),
		},
		Dispatcher: DispatcherConfig{
			WebhookURL: getEnv("ACTION_WEBHOOK_URL", ""),
			Disabled:   getEnvBool("ACTION_WEBHOOK_DISABLED", false),
			QueueKey:   getEnv("ACTION_QUEUE_KEY", "actions:queue"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitNonEmpty(getEnv("KAFKA_BROKERS", "")),
			EventTopic: getEnv("KAFKA_EVENT_TOPIC", "geofence-events"),
		},
		Mqtt: MqttConfig{
			BrokerURL: getEnv("MQTT_BROKER_URL", ""),
			Topic:     getEnv("MQTT_TOPIC", "geotrack/locations/+"),
			ClientID:  getEnv("MQTT_CLIENT_ID", "geotrack-ingest"),
		},
	}
	cfg.Kafka.Enabled = len(cfg.Kafka.Brokers) > 0
	cfg.Mqtt.Enabled = cfg.Mqtt.BrokerURL != ""

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Duration("location_ttl", cfg.Location.TTL),
		slog.Bool("kafka", cfg.Kafka.Enabled),
		slog.Bool("mqtt", cfg.Mqtt.Enabled),
	)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.RateLimit.PublicRPS <= 0 || c.RateLimit.AdminRPS <= 0 {
		return errors.New("RATE_LIMIT_*_RPS must be positive")
	}
	if c.Location.TTL <= 0 {
		return errors.New("LOCATION_TTL must be positive")
	}
	if c.Geofence.MaxRadiusM <= 0 {
		return errors.New("GEOFENCE_MAX_RADIUS_M must be positive")
	}
	for _, p := range c.Location.GeohashPrecisions {
		if p < 1 || p > 12 {
			return errors.New("LOCATION_GEOHASH_PRECISIONS entries must be in 1..12")
		}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvInts(key string, def []int) []int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []int
	for _, part := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return def
		}
		out = append(out, n)
	}
	return out
}

func splitNonEmpty(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
