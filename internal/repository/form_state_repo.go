package repository

import (
	"context"

	"spine-intake/internal/domain"
)

// FormStateRepository 评估表单状态容器（只负责 pain_areas 部分）
// Implementations return an empty slice, not an error, for an unknown session.
type FormStateRepository interface {
	LoadPainAreas(ctx context.Context, sessionID string) ([]domain.PainArea, error)
	SavePainAreas(ctx context.Context, sessionID string, areas []domain.PainArea) error
	ListSessions(ctx context.Context) ([]string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
