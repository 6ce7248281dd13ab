package raster

import (
	"spine-intake/internal/domain"

	"go.uber.org/zap"
)

// Registry 每个视图一个 Buffer
type Registry struct {
	buffers map[domain.View]*Buffer
}

// NewRegistry 创建注册表，所有视图初始为未就绪
func NewRegistry() *Registry {
	r := &Registry{buffers: make(map[domain.View]*Buffer)}
	for _, v := range domain.Views() {
		r.buffers[v] = NewBuffer()
	}
	return r
}

// Buffer returns the raster for view; nil for unsupported views.
func (r *Registry) Buffer(view domain.View) *Buffer {
	return r.buffers[view]
}

// LoadFiles loads the configured image per view. Failures are logged and leave
// that view not ready: clicks on it resolve to nothing rather than guessing.
func (r *Registry) LoadFiles(paths map[domain.View]string, logger *zap.Logger) {
	for view, path := range paths {
		buf := r.buffers[view]
		if buf == nil {
			logger.Warn("Ignoring image for unsupported view", zap.String("view", string(view)))
			continue
		}
		if path == "" {
			logger.Warn("No body image configured, view stays inactive", zap.String("view", string(view)))
			continue
		}
		if err := buf.LoadFile(path); err != nil {
			logger.Warn("Failed to load body image, view stays inactive",
				zap.String("view", string(view)),
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		size := buf.Size()
		logger.Info("Loaded body image",
			zap.String("view", string(view)),
			zap.String("path", path),
			zap.Int("width", size.Width),
			zap.Int("height", size.Height),
		)
	}
}

// Status 各视图就绪状态（用于 /health）
func (r *Registry) Status() map[domain.View]bool {
	out := make(map[domain.View]bool, len(r.buffers))
	for v, b := range r.buffers {
		out[v] = b.Ready()
	}
	return out
}
