package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"spine-intake/internal/domain"
	"spine-intake/internal/store"

	"go.uber.org/zap"
)

const (
	sessionKeyPrefix = "painmap:session:"
	sessionKeySuffix = ":pain-areas"
)

// SessionKey 会话 pain_areas 在 Redis 中的 key
func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + sessionKeySuffix
}

// RedisFormStateRepo 将 pain_areas 以 JSON 保存在 Redis 中，每次写入刷新 TTL
type RedisFormStateRepo struct {
	kv     store.KV
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisFormStateRepo(kv store.KV, ttl time.Duration, logger *zap.Logger) *RedisFormStateRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisFormStateRepo{kv: kv, ttl: ttl, logger: logger}
}

func (r *RedisFormStateRepo) LoadPainAreas(ctx context.Context, sessionID string) ([]domain.PainArea, error) {
	raw, err := r.kv.Get(ctx, SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return []domain.PainArea{}, nil
		}
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var areas []domain.PainArea
	if err := json.Unmarshal([]byte(raw), &areas); err != nil {
		r.logger.Error("Corrupt pain areas document",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	if areas == nil {
		areas = []domain.PainArea{}
	}
	return areas, nil
}

func (r *RedisFormStateRepo) SavePainAreas(ctx context.Context, sessionID string, areas []domain.PainArea) error {
	if areas == nil {
		areas = []domain.PainArea{}
	}
	b, err := json.Marshal(areas)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sessionID, err)
	}
	if err := r.kv.Set(ctx, SessionKey(sessionID), string(b), r.ttl); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

func (r *RedisFormStateRepo) ListSessions(ctx context.Context) ([]string, error) {
	keys, err := r.kv.ScanKeys(ctx, sessionKeyPrefix+"*"+sessionKeySuffix)
	if err != nil {
		return nil, fmt.Errorf("scan sessions: %w", err)
	}
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		if !strings.HasPrefix(k, sessionKeyPrefix) || !strings.HasSuffix(k, sessionKeySuffix) {
			continue
		}
		id := strings.TrimSuffix(strings.TrimPrefix(k, sessionKeyPrefix), sessionKeySuffix)
		if id != "" {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *RedisFormStateRepo) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.kv.Del(ctx, SessionKey(sessionID)); err != nil {
		return fmt.Errorf("delete session %s: %w", sessionID, err)
	}
	return nil
}
