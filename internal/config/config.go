package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	commoncfg "spine-intake/common/config"
)

// Form-state backends.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config painmap-api 配置（全部来自环境变量）
type Config struct {
	HTTP struct {
		Addr string
	}
	Log struct {
		Level  string
		Format string
	}
	FormStateBackend string
	Database         commoncfg.DatabaseConfig
	Redis            commoncfg.RedisConfig
	SessionTTL       time.Duration

	PainMap PainMapConfig
	Events  EventsConfig
	MQTT    MQTTConfig
	Summary SummaryConfig
}

// PainMapConfig 身体图与解析参数
type PainMapConfig struct {
	FrontImage      string
	BackImage       string
	DisplayScale    float64 // 图片容器的 CSS 缩放，坐标除以该值后保存
	AlphaThreshold  int     // alpha 低于该值视为背景
	ReferenceWidth  int
	ReferenceHeight int
	MarkerRadius    int
}

// EventsConfig Redis Streams 事件（stream 为空则不发布）
type EventsConfig struct {
	RedisStream string
}

// MQTTConfig MQTT 事件发布（默认禁用）
type MQTTConfig struct {
	Enabled bool
	commoncfg.MQTTConfig
	Topic string
}

// SummaryConfig 临床摘要服务
type SummaryConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.FormStateBackend = strings.ToLower(getEnv("FORM_STATE_BACKEND", BackendMemory))
	switch cfg.FormStateBackend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		cfg.FormStateBackend = BackendMemory
	}

	cfg.Database = commoncfg.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "postgres",
		Database: "intake",
		SSLMode:  "disable",
		MaxConns: 10,
		MaxIdle:  5,
	}
	cfg.Database.LoadFromEnv("DB")

	cfg.Redis = commoncfg.RedisConfig{Addr: "localhost:6379"}
	cfg.Redis.LoadFromEnv("REDIS")
	cfg.SessionTTL = time.Duration(parseInt(getEnv("SESSION_TTL_HOURS", "72"), 72)) * time.Hour

	cfg.PainMap.FrontImage = getEnv("PAINMAP_FRONT_IMAGE", "assets/body-front.png")
	cfg.PainMap.BackImage = getEnv("PAINMAP_BACK_IMAGE", "assets/body-back.png")
	cfg.PainMap.DisplayScale = parseFloat(getEnv("PAINMAP_DISPLAY_SCALE", "1"), 1)
	if cfg.PainMap.DisplayScale <= 0 {
		cfg.PainMap.DisplayScale = 1
	}
	cfg.PainMap.AlphaThreshold = parseInt(getEnv("PAINMAP_ALPHA_THRESHOLD", "10"), 10)
	if cfg.PainMap.AlphaThreshold < 1 || cfg.PainMap.AlphaThreshold > 255 {
		cfg.PainMap.AlphaThreshold = 10
	}
	cfg.PainMap.ReferenceWidth = parseInt(getEnv("PAINMAP_REFERENCE_WIDTH", "400"), 400)
	cfg.PainMap.ReferenceHeight = parseInt(getEnv("PAINMAP_REFERENCE_HEIGHT", "800"), 800)
	cfg.PainMap.MarkerRadius = parseInt(getEnv("PAINMAP_MARKER_RADIUS", "8"), 8)

	cfg.Events.RedisStream = getEnv("EVENTS_REDIS_STREAM", "")

	cfg.MQTT.Enabled = getEnv("MQTT_ENABLED", "false") == "true"
	cfg.MQTT.Broker = "tcp://localhost:1883"
	cfg.MQTT.ClientID = "painmap-api"
	cfg.MQTT.QoS = 1
	cfg.MQTT.MQTTConfig.LoadFromEnv("MQTT")
	cfg.MQTT.Topic = getEnv("MQTT_TOPIC", "painmap/events")

	cfg.Summary.Enabled = getEnv("SUMMARY_ENABLED", "false") == "true"
	cfg.Summary.BaseURL = getEnv("SUMMARY_BASE_URL", "http://localhost:8090")
	cfg.Summary.APIKey = getEnv("SUMMARY_API_KEY", "")
	cfg.Summary.Model = getEnv("SUMMARY_MODEL", "")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}
