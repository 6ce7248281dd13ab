// Package painarea holds the ordered pain-area records of one form session.
package painarea

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"spine-intake/internal/domain"

	"github.com/google/uuid"
)

// Store 单个会话的疼痛标记集合（按添加顺序）
// Store is not safe for concurrent use; callers serialise access per session.
type Store struct {
	areas []domain.PainArea
}

// NewStore 创建 store；initial 会被复制
func NewStore(initial []domain.PainArea) *Store {
	s := &Store{areas: make([]domain.PainArea, 0, len(initial))}
	s.areas = append(s.areas, initial...)
	return s
}

// NewFromMatch builds the record for an accepted click. Coordinates and the
// image frame are stored at reference scale so markers can be redrawn on any
// canvas size independent of browser zoom.
func NewFromMatch(m domain.Match, displayScale float64, note string) domain.PainArea {
	var frame *domain.ReferenceSize
	if f := domain.DisplayedSizeToReference(m.Displayed, displayScale); f.Valid() {
		frame = &f
	}
	return domain.PainArea{
		ID:            uuid.New().String(),
		Region:        m.DisplayName,
		Intensity:     domain.DefaultIntensity,
		Coordinates:   domain.DisplayedToReference(m.Click, displayScale),
		Frame:         frame,
		OriginView:    m.View,
		SourceGroupID: m.GroupID,
		DetailVariant: m.IsDetailVariant,
		FreeText:      strings.TrimSpace(note),
		CreatedAt:     time.Now().UTC(),
	}
}

// Add appends a record. Records are never deduplicated by region or position.
func (s *Store) Add(a domain.PainArea) error {
	if a.ID == "" {
		return errors.New("pain area id is required")
	}
	if s.index(a.ID) >= 0 {
		return fmt.Errorf("add %s: %w", a.ID, domain.ErrDuplicateID)
	}
	if err := domain.ValidateIntensity(a.Intensity); err != nil {
		return err
	}
	s.areas = append(s.areas, a)
	return nil
}

// SetIntensity 更新强度，越界返回 *domain.OutOfRangeError（不截断）
func (s *Store) SetIntensity(id string, v int) error {
	if err := domain.ValidateIntensity(v); err != nil {
		return err
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("set intensity %s: %w", id, domain.ErrNotFound)
	}
	s.areas[i].Intensity = v
	return nil
}

// UpdateNote replaces the free-text part of a record's note.
func (s *Store) UpdateNote(id, text string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("update note %s: %w", id, domain.ErrNotFound)
	}
	s.areas[i].FreeText = strings.TrimSpace(text)
	return nil
}

// Remove 删除记录；id 不存在时为 no-op，返回 false
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.areas = append(s.areas[:i], s.areas[i+1:]...)
	return true
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id string) (domain.PainArea, bool) {
	i := s.index(id)
	if i < 0 {
		return domain.PainArea{}, false
	}
	return s.areas[i], true
}

// FilterByView returns the records created on the given view, in insertion order.
func (s *Store) FilterByView(view domain.View) []domain.PainArea {
	out := make([]domain.PainArea, 0, len(s.areas))
	for _, a := range s.areas {
		if a.OriginView == view {
			out = append(out, a)
		}
	}
	return out
}

// List 返回全部记录的副本
func (s *Store) List() []domain.PainArea {
	out := make([]domain.PainArea, len(s.areas))
	copy(out, s.areas)
	return out
}

func (s *Store) Len() int {
	return len(s.areas)
}

func (s *Store) index(id string) int {
	for i := range s.areas {
		if s.areas[i].ID == id {
			return i
		}
	}
	return -1
}
