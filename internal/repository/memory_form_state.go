package repository

import (
	"context"
	"sort"
	"sync"

	"spine-intake/internal/domain"
)

// MemoryFormStateRepo: 用于 DB/Redis 未就绪时的联测，进程重启后数据丢失
type MemoryFormStateRepo struct {
	mu       sync.RWMutex
	sessions map[string][]domain.PainArea
}

func NewMemoryFormStateRepo() *MemoryFormStateRepo {
	return &MemoryFormStateRepo{sessions: map[string][]domain.PainArea{}}
}

func (r *MemoryFormStateRepo) LoadPainAreas(_ context.Context, sessionID string) ([]domain.PainArea, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	areas := r.sessions[sessionID]
	out := make([]domain.PainArea, len(areas))
	copy(out, areas)
	return out, nil
}

func (r *MemoryFormStateRepo) SavePainAreas(_ context.Context, sessionID string, areas []domain.PainArea) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]domain.PainArea, len(areas))
	copy(cp, areas)
	r.sessions[sessionID] = cp
	return nil
}

func (r *MemoryFormStateRepo) ListSessions(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *MemoryFormStateRepo) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
