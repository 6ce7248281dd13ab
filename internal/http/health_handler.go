package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"spine-intake/internal/domain"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RasterStatus 由 PainMapService 提供
type RasterStatus interface {
	RasterStatus() map[domain.View]bool
}

// HealthHandler 健康检查
type HealthHandler struct {
	rasters     RasterStatus
	db          *sql.DB
	redisClient *redis.Client
	logger      *zap.Logger
}

// NewHealthHandler db 与 redisClient 可为 nil（对应后端未启用）
func NewHealthHandler(rasters RasterStatus, db *sql.DB, redisClient *redis.Client, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{rasters: rasters, db: db, redisClient: redisClient, logger: logger}
}

// HealthCheckResponse 健康检查响应
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Views     map[string]bool   `json:"views"`
}

// HealthCheck reports unhealthy (503) when a configured backend is unreachable.
// A body image that failed to load only degrades the status: that view ignores
// clicks but everything else keeps working.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	services := make(map[string]string)

	if h.redisClient != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.redisClient.Ping(ctx).Err(); err != nil {
			status = "unhealthy"
			services["redis"] = "unhealthy: " + err.Error()
		} else {
			services["redis"] = "healthy"
		}
	} else {
		services["redis"] = "not configured"
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			status = "unhealthy"
			services["database"] = "unhealthy: " + err.Error()
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "not configured"
	}

	views := make(map[string]bool)
	if h.rasters != nil {
		for v, ready := range h.rasters.RasterStatus() {
			views[string(v)] = ready
			if !ready && status == "healthy" {
				status = "degraded"
			}
		}
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
		h.logger.Warn("Health check failed", zap.Any("services", services))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(HealthCheckResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
		Views:     views,
	})
}
