package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

type recordingAdder struct {
	args []*redis.XAddArgs
}

func (r *recordingAdder) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	r.args = append(r.args, a)
	cmd := redis.NewStringCmd(ctx)
	cmd.SetVal("1700000000000-0")
	return cmd
}

func TestStreamValues_Stringifies(t *testing.T) {
	out, err := StreamValues(map[string]interface{}{
		"s": "x",
		"i": 7,
		"f": 0.5,
		"b": true,
		"m": map[string]int{"a": 1},
	})
	require.NoError(t, err)
	require.Equal(t, "x", out["s"])
	require.Equal(t, "7", out["i"])
	require.Equal(t, "0.5", out["f"])
	require.Equal(t, "true", out["b"])
	require.Equal(t, `{"a":1}`, out["m"])
}

func TestPublishJSONToStream(t *testing.T) {
	adder := &recordingAdder{}
	id, err := PublishJSONToStream(context.Background(), adder, "painmap:events", map[string]string{"type": "mark.added"})
	require.NoError(t, err)
	require.Equal(t, "1700000000000-0", id)
	require.Len(t, adder.args, 1)
	require.Equal(t, "painmap:events", adder.args[0].Stream)

	fields := adder.args[0].Values.(map[string]interface{})
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(fields["data"].(string)), &decoded))
	require.Equal(t, "mark.added", decoded["type"])
	require.NotEmpty(t, fields["timestamp"])
}
