package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"spine-intake/internal/catalog"
	"spine-intake/internal/domain"
	"spine-intake/internal/events"
	"spine-intake/internal/overlay"
	"spine-intake/internal/painarea"
	"spine-intake/internal/raster"
	"spine-intake/internal/repository"
	"spine-intake/internal/resolver"

	"go.uber.org/zap"
)

// ErrSummaryDisabled 未配置摘要服务
var ErrSummaryDisabled = errors.New("summary service is not configured")

// Options 会话编排参数
type Options struct {
	DisplayScale  float64            // 默认显示缩放（请求未携带时使用）
	ReferenceSize domain.NaturalSize // overlay 输出尺寸（参考坐标系）
	MarkerRadius  int
}

// MarkRequest 一次点击
type MarkRequest struct {
	SessionID    string
	View         domain.View
	Click        domain.DisplayedPoint
	Displayed    domain.DisplayedSize
	DisplayScale float64 // <=0 使用默认
	Note         string
}

// MarkResult 点击结果；Outcome 非 Matched 时 Area 为 nil（不是错误）
type MarkResult struct {
	Outcome resolver.Outcome `json:"-"`
	Status  string           `json:"status"`
	Area    *domain.PainArea `json:"pain_area,omitempty"`
}

// SummaryResult 摘要结果
type SummaryResult struct {
	Prompt  string `json:"prompt"`
	Summary string `json:"summary"`
}

// PainMapService 会话编排：解析点击、维护 pain areas、镜像写入表单状态容器
// Every mutation loads the session, applies the change and saves it back before
// returning, so the form-state container never lags behind the store.
type PainMapService struct {
	repo      repository.FormStateRepository
	rasters   *raster.Registry
	resolver  *resolver.Resolver
	publisher events.Publisher
	summary   Summarizer
	opts      Options
	logger    *zap.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

// sessionLock 会话锁；refs 为持有和等待者数量，归零时从 map 中移除
type sessionLock struct {
	sync.Mutex
	refs int
}

// NewPainMapService 创建服务；publisher 与 summary 可为 nil
func NewPainMapService(
	repo repository.FormStateRepository,
	rasters *raster.Registry,
	res *resolver.Resolver,
	publisher events.Publisher,
	summary Summarizer,
	opts Options,
	logger *zap.Logger,
) *PainMapService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = events.NewFanout(logger)
	}
	if opts.DisplayScale <= 0 {
		opts.DisplayScale = 1
	}
	return &PainMapService{
		repo:      repo,
		rasters:   rasters,
		resolver:  res,
		publisher: publisher,
		summary:   summary,
		opts:      opts,
		logger:    logger,
		locks:     make(map[string]*sessionLock),
	}
}

// lockSession blocks until the caller holds the session; pair with unlockSession.
func (s *PainMapService) lockSession(sessionID string) *sessionLock {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return l
}

func (s *PainMapService) unlockSession(sessionID string, l *sessionLock) {
	l.Unlock()
	s.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, sessionID)
	}
	s.mu.Unlock()
}

// withSession runs fn against the session's store under the session lock and
// saves the result when fn reports a change.
func (s *PainMapService) withSession(ctx context.Context, sessionID string, fn func(st *painarea.Store) (bool, error)) error {
	l := s.lockSession(sessionID)
	defer s.unlockSession(sessionID, l)

	areas, err := s.repo.LoadPainAreas(ctx, sessionID)
	if err != nil {
		return err
	}
	st := painarea.NewStore(areas)
	changed, err := fn(st)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.repo.SavePainAreas(ctx, sessionID, st.List())
}

func (s *PainMapService) publish(ctx context.Context, t events.Type, sessionID string, area domain.PainArea) {
	_ = s.publisher.Publish(ctx, events.NewEvent(t, sessionID, area))
}

// Hotspots 返回视图目录
func (s *PainMapService) Hotspots(view domain.View) ([]domain.HotspotDefinition, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("unsupported view %q", view)
	}
	return catalog.ListHotspots(view), nil
}

// Groups 返回视图分组
func (s *PainMapService) Groups(view domain.View) ([]catalog.Group, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("unsupported view %q", view)
	}
	return catalog.Groups(view), nil
}

// Mark resolves a click and, on a match, adds a new pain area to the session.
// A click that resolves to nothing is not an error.
func (s *PainMapService) Mark(ctx context.Context, req MarkRequest) (*MarkResult, error) {
	if !req.View.Valid() {
		return nil, fmt.Errorf("unsupported view %q", req.View)
	}
	var buf resolver.AlphaSampler
	if b := s.rasters.Buffer(req.View); b != nil {
		buf = b
	}
	m, outcome := s.resolver.Resolve(resolver.Request{
		View:      req.View,
		Click:     req.Click,
		Displayed: req.Displayed,
	}, buf, catalog.ListHotspots(req.View))

	result := &MarkResult{Outcome: outcome, Status: outcome.String()}
	if outcome != resolver.Matched {
		return result, nil
	}

	scale := req.DisplayScale
	if scale <= 0 {
		scale = s.opts.DisplayScale
	}
	area := painarea.NewFromMatch(m, scale, req.Note)
	err := s.withSession(ctx, req.SessionID, func(st *painarea.Store) (bool, error) {
		return true, st.Add(area)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Pain area added",
		zap.String("session_id", req.SessionID),
		zap.String("pain_area_id", area.ID),
		zap.String("region", area.Region),
		zap.String("view", string(area.OriginView)),
		zap.Float64("distance", m.Distance),
	)
	s.publish(ctx, events.MarkAdded, req.SessionID, area)
	result.Area = &area
	return result, nil
}

// SetIntensity 更新强度；越界返回 *domain.OutOfRangeError
func (s *PainMapService) SetIntensity(ctx context.Context, sessionID, id string, value int) (domain.PainArea, error) {
	var updated domain.PainArea
	err := s.withSession(ctx, sessionID, func(st *painarea.Store) (bool, error) {
		if err := st.SetIntensity(id, value); err != nil {
			return false, err
		}
		updated, _ = st.Get(id)
		return true, nil
	})
	if err != nil {
		return domain.PainArea{}, err
	}
	s.publish(ctx, events.MarkIntensityChanged, sessionID, updated)
	return updated, nil
}

// UpdateNote 更新自由文本备注
func (s *PainMapService) UpdateNote(ctx context.Context, sessionID, id, text string) (domain.PainArea, error) {
	var updated domain.PainArea
	err := s.withSession(ctx, sessionID, func(st *painarea.Store) (bool, error) {
		if err := st.UpdateNote(id, text); err != nil {
			return false, err
		}
		updated, _ = st.Get(id)
		return true, nil
	})
	if err != nil {
		return domain.PainArea{}, err
	}
	s.publish(ctx, events.MarkNoteChanged, sessionID, updated)
	return updated, nil
}

// Remove is idempotent: removing an absent id reports false and no error.
func (s *PainMapService) Remove(ctx context.Context, sessionID, id string) (bool, error) {
	var removed bool
	err := s.withSession(ctx, sessionID, func(st *painarea.Store) (bool, error) {
		removed = st.Remove(id)
		return removed, nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		s.publish(ctx, events.MarkRemoved, sessionID, domain.PainArea{ID: id})
	}
	return removed, nil
}

// List returns the session's pain areas; an empty view returns all of them.
func (s *PainMapService) List(ctx context.Context, sessionID string, view domain.View) ([]domain.PainArea, error) {
	areas, err := s.repo.LoadPainAreas(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if view == "" {
		return areas, nil
	}
	if !view.Valid() {
		return nil, fmt.Errorf("unsupported view %q", view)
	}
	return painarea.NewStore(areas).FilterByView(view), nil
}

// ListSessions 列出所有会话 id
func (s *PainMapService) ListSessions(ctx context.Context) ([]string, error) {
	return s.repo.ListSessions(ctx)
}

// DeleteSession 删除会话及其全部标记
func (s *PainMapService) DeleteSession(ctx context.Context, sessionID string) error {
	l := s.lockSession(sessionID)
	defer s.unlockSession(sessionID, l)
	return s.repo.DeleteSession(ctx, sessionID)
}

// RenderOverlay writes the view image with the session's markers for that view
// as PNG. A view whose image never loaded renders markers on a blank canvas.
func (s *PainMapService) RenderOverlay(ctx context.Context, sessionID string, view domain.View, w io.Writer) error {
	if !view.Valid() {
		return fmt.Errorf("unsupported view %q", view)
	}
	marks, err := s.List(ctx, sessionID, view)
	if err != nil {
		return err
	}
	base := s.rasters.Buffer(view).Image()
	return overlay.WritePNG(w, base, marks, overlay.Options{
		Width:  s.opts.ReferenceSize.Width,
		Height: s.opts.ReferenceSize.Height,
		Radius: s.opts.MarkerRadius,
	})
}

// ExportReport 导出会话 Excel 报告
func (s *PainMapService) ExportReport(ctx context.Context, sessionID string) ([]byte, error) {
	areas, err := s.repo.LoadPainAreas(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return GeneratePainAreaReport(areas)
}

// Summarize builds the prompt from the session's marks and sends it to the
// summary service.
func (s *PainMapService) Summarize(ctx context.Context, sessionID string) (*SummaryResult, error) {
	areas, err := s.repo.LoadPainAreas(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prompt := BuildSummaryPrompt(areas)
	if s.summary == nil {
		return &SummaryResult{Prompt: prompt}, ErrSummaryDisabled
	}
	text, err := s.summary.Summarize(ctx, prompt)
	if err != nil {
		return &SummaryResult{Prompt: prompt}, err
	}
	return &SummaryResult{Prompt: prompt, Summary: text}, nil
}

// RasterStatus 各视图图片是否就绪
func (s *PainMapService) RasterStatus() map[domain.View]bool {
	return s.rasters.Status()
}
