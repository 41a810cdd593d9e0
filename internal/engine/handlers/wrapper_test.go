package handlers

import (
	"encoding/json"
	"testing"

	"tunnel-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPayload(t *testing.T) {
	var got api.DirectionPayload
	h := WithPayload(func(ctx Context, p api.DirectionPayload) (Result, error) {
		got = p
		return Result{Msg: "ok"}, nil
	})

	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"valid", `{"direction":"left"}`, ""},
		{"missing", ``, "payload is required"},
		{"not json", `{direction`, "invalid payload format"},
		{"fails validation", `{"direction":"north"}`, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h(Context{}, json.RawMessage(tt.raw))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", res.Msg)
			assert.Equal(t, "left", got.Direction)
		})
	}
}

func TestWithEmptyPayload(t *testing.T) {
	called := 0
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		called++
		return EmptyResult(), nil
	})

	_, err := h(Context{}, nil)
	require.NoError(t, err)
	_, err = h(Context{}, json.RawMessage(`{"ignored":true}`))
	require.NoError(t, err)
	assert.Equal(t, 2, called)
}
