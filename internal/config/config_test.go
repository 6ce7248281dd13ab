package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected HTTP addr ':8080', got '%s'", cfg.HTTP.Addr)
	}
	if cfg.FormStateBackend != BackendMemory {
		t.Errorf("Expected backend 'memory', got '%s'", cfg.FormStateBackend)
	}
	if cfg.PainMap.DisplayScale != 1 {
		t.Errorf("Expected display scale 1, got %v", cfg.PainMap.DisplayScale)
	}
	if cfg.PainMap.AlphaThreshold != 10 {
		t.Errorf("Expected alpha threshold 10, got %d", cfg.PainMap.AlphaThreshold)
	}
	if cfg.SessionTTL != 72*time.Hour {
		t.Errorf("Expected session TTL 72h, got %v", cfg.SessionTTL)
	}
	if cfg.MQTT.Enabled {
		t.Error("Expected MQTT disabled by default")
	}
	if cfg.Summary.Enabled {
		t.Error("Expected summary disabled by default")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FORM_STATE_BACKEND", "Postgres")
	t.Setenv("DB_HOST", "pg.clinic")
	t.Setenv("REDIS_ADDR", "redis.clinic:6380")
	t.Setenv("SESSION_TTL_HOURS", "12")
	t.Setenv("PAINMAP_DISPLAY_SCALE", "0.85")
	t.Setenv("PAINMAP_ALPHA_THRESHOLD", "32")
	t.Setenv("MQTT_ENABLED", "true")
	t.Setenv("MQTT_QOS", "2")
	t.Setenv("MQTT_TOPIC", "clinic/painmap")
	t.Setenv("SUMMARY_ENABLED", "true")
	t.Setenv("SUMMARY_MODEL", "clinical-small")

	cfg := Load()

	if cfg.FormStateBackend != BackendPostgres {
		t.Errorf("Expected backend 'postgres', got '%s'", cfg.FormStateBackend)
	}
	if cfg.Database.Host != "pg.clinic" {
		t.Errorf("Expected DB host 'pg.clinic', got '%s'", cfg.Database.Host)
	}
	if cfg.Redis.Addr != "redis.clinic:6380" {
		t.Errorf("Expected Redis addr 'redis.clinic:6380', got '%s'", cfg.Redis.Addr)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Errorf("Expected session TTL 12h, got %v", cfg.SessionTTL)
	}
	if cfg.PainMap.DisplayScale != 0.85 {
		t.Errorf("Expected display scale 0.85, got %v", cfg.PainMap.DisplayScale)
	}
	if cfg.PainMap.AlphaThreshold != 32 {
		t.Errorf("Expected alpha threshold 32, got %d", cfg.PainMap.AlphaThreshold)
	}
	if !cfg.MQTT.Enabled || cfg.MQTT.QoS != 2 || cfg.MQTT.Topic != "clinic/painmap" {
		t.Errorf("Unexpected MQTT config: %+v", cfg.MQTT)
	}
	if !cfg.Summary.Enabled || cfg.Summary.Model != "clinical-small" {
		t.Errorf("Unexpected summary config: %+v", cfg.Summary)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("FORM_STATE_BACKEND", "mongo")
	t.Setenv("PAINMAP_DISPLAY_SCALE", "-2")
	t.Setenv("PAINMAP_ALPHA_THRESHOLD", "999")
	t.Setenv("SESSION_TTL_HOURS", "soon")

	cfg := Load()

	if cfg.FormStateBackend != BackendMemory {
		t.Errorf("Expected fallback backend 'memory', got '%s'", cfg.FormStateBackend)
	}
	if cfg.PainMap.DisplayScale != 1 {
		t.Errorf("Expected fallback display scale 1, got %v", cfg.PainMap.DisplayScale)
	}
	if cfg.PainMap.AlphaThreshold != 10 {
		t.Errorf("Expected fallback alpha threshold 10, got %d", cfg.PainMap.AlphaThreshold)
	}
	if cfg.SessionTTL != 72*time.Hour {
		t.Errorf("Expected fallback TTL 72h, got %v", cfg.SessionTTL)
	}
}
