// Package events publishes pain-area changes to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	commonredis "spine-intake/common/redis"
	"spine-intake/internal/domain"

	"go.uber.org/zap"
)

// Type 事件类型
type Type string

const (
	MarkAdded            Type = "mark.added"
	MarkIntensityChanged Type = "mark.intensity_changed"
	MarkNoteChanged      Type = "mark.note_changed"
	MarkRemoved          Type = "mark.removed"
)

// Event 一次 pain area 变更；Removed 事件只带 PainAreaID
type Event struct {
	Type       Type             `json:"type"`
	SessionID  string           `json:"session_id"`
	PainAreaID string           `json:"pain_area_id"`
	PainArea   *domain.PainArea `json:"pain_area,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewEvent stamps the event with the current time.
func NewEvent(t Type, sessionID string, area domain.PainArea) Event {
	e := Event{Type: t, SessionID: sessionID, PainAreaID: area.ID, OccurredAt: time.Now().UTC()}
	if t != MarkRemoved {
		a := area
		e.PainArea = &a
	}
	return e
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// StreamPublisher 写入 Redis Streams（data + timestamp 字段）
type StreamPublisher struct {
	client commonredis.StreamAdder
	stream string
}

func NewStreamPublisher(client commonredis.StreamAdder, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

func (p *StreamPublisher) Publish(ctx context.Context, e Event) error {
	if _, err := commonredis.PublishJSONToStream(ctx, p.client, p.stream, e); err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

// MQTTClient is satisfied by *common/mqtt.Client.
type MQTTClient interface {
	Publish(topic string, payload []byte) error
}

// MQTTPublisher 发布到 {topic}/{session_id}
type MQTTPublisher struct {
	client MQTTClient
	topic  string
}

func NewMQTTPublisher(client MQTTClient, topic string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: strings.TrimSuffix(topic, "/")}
}

func (p *MQTTPublisher) Publish(_ context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.client.Publish(p.topic+"/"+e.SessionID, b)
}

// Fanout sends every event to all publishers. Failures are logged and never
// returned: event delivery must not fail a user's edit.
type Fanout struct {
	publishers []Publisher
	logger     *zap.Logger
}

func NewFanout(logger *zap.Logger, publishers ...Publisher) *Fanout {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fanout{publishers: publishers, logger: logger}
}

// Len 已注册的 publisher 数量
func (f *Fanout) Len() int { return len(f.publishers) }

func (f *Fanout) Publish(ctx context.Context, e Event) error {
	for _, p := range f.publishers {
		if err := p.Publish(ctx, e); err != nil {
			f.logger.Warn("Failed to publish pain area event",
				zap.String("type", string(e.Type)),
				zap.String("session_id", e.SessionID),
				zap.String("pain_area_id", e.PainAreaID),
				zap.Error(err),
			)
		}
	}
	return nil
}
