package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

const apiPrefix = "/painmap/api/v1"

// Router 使用标准库 http.ServeMux
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterPainMapRoutes 注册 pain map 路由
func (r *Router) RegisterPainMapRoutes(h *PainMapHandler) {
	r.Handle(apiPrefix+"/hotspots", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.GetHotspots(w, req)
	})

	r.Handle(apiPrefix+"/sessions", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h.ListSessions(w, req)
	})

	// sessions/{sid}/...
	r.Handle(apiPrefix+"/sessions/", h.ServeSession)
}

// RegisterHealthRoutes 注册健康检查
func (r *Router) RegisterHealthRoutes(h *HealthHandler) {
	r.Handle("/health", h.HealthCheck)
	r.Handle("/healthz", h.HealthCheck)
}
