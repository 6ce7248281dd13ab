package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"spine-intake/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAdder struct {
	args []*redis.XAddArgs
	err  error
}

func (r *recordingAdder) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	r.args = append(r.args, a)
	cmd := redis.NewStringCmd(ctx)
	if r.err != nil {
		cmd.SetErr(r.err)
		return cmd
	}
	cmd.SetVal("1-0")
	return cmd
}

type recordingMQTT struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (m *recordingMQTT) Publish(topic string, payload []byte) error {
	m.topics = append(m.topics, topic)
	m.payloads = append(m.payloads, payload)
	return m.err
}

func area() domain.PainArea {
	return domain.PainArea{ID: "pa-1", Region: "T10 Vertebra", Intensity: 6, OriginView: domain.ViewBack, SourceGroupID: 103}
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(MarkAdded, "s1", area())
	require.NotNil(t, e.PainArea)
	assert.Equal(t, "pa-1", e.PainAreaID)
	assert.False(t, e.OccurredAt.IsZero())

	removed := NewEvent(MarkRemoved, "s1", area())
	assert.Nil(t, removed.PainArea)
	assert.Equal(t, "pa-1", removed.PainAreaID)
}

func TestStreamPublisher(t *testing.T) {
	adder := &recordingAdder{}
	p := NewStreamPublisher(adder, "painmap:events")

	require.NoError(t, p.Publish(context.Background(), NewEvent(MarkIntensityChanged, "s1", area())))
	require.Len(t, adder.args, 1)
	assert.Equal(t, "painmap:events", adder.args[0].Stream)

	fields := adder.args[0].Values.(map[string]interface{})
	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(fields["data"].(string)), &decoded))
	assert.Equal(t, MarkIntensityChanged, decoded.Type)
	assert.Equal(t, 6, decoded.PainArea.Intensity)
}

func TestMQTTPublisher(t *testing.T) {
	client := &recordingMQTT{}
	p := NewMQTTPublisher(client, "clinic/painmap/")

	require.NoError(t, p.Publish(context.Background(), NewEvent(MarkRemoved, "s9", area())))
	assert.Equal(t, []string{"clinic/painmap/s9"}, client.topics)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(client.payloads[0], &decoded))
	assert.Equal(t, "mark.removed", decoded["type"])
	_, hasArea := decoded["pain_area"]
	assert.False(t, hasArea)
}

func TestFanout_SwallowsErrors(t *testing.T) {
	adder := &recordingAdder{err: errors.New("redis down")}
	client := &recordingMQTT{}
	f := NewFanout(zap.NewNop(), NewStreamPublisher(adder, "s"), NewMQTTPublisher(client, "t"))

	assert.Equal(t, 2, f.Len())
	assert.NoError(t, f.Publish(context.Background(), NewEvent(MarkAdded, "s1", area())))
	assert.Len(t, adder.args, 1)
	assert.Len(t, client.topics, 1)
}
