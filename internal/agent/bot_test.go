package agent

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"tunnel-server/internal/engine"
	"tunnel-server/pkg/api"
	"tunnel-server/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func view(id, kind string, x, y int) api.EntityView {
	v := api.EntityView{ID: id, Kind: kind}
	v.Pos.X, v.Pos.Y = x, y
	return v
}

func playerView(x, y int, facing string, water, sonar int) api.EntityView {
	v := view("p", "PLAYER", x, y)
	v.Facing = facing
	v.Stats = &api.StatsView{HP: 10, Water: water, Sonar: sonar}
	return v
}

func snapshot(round int, entities ...api.EntityView) api.ServerResponse {
	return api.ServerResponse{
		Type:       "UPDATE",
		Round:      round,
		MyEntityID: "p",
		Progress:   &api.ProgressView{Level: 0},
		Entities:   entities,
	}
}

func direction(t *testing.T, cmd api.ClientCommand) string {
	t.Helper()
	var p api.DirectionPayload
	require.NoError(t, json.Unmarshal(cmd.Payload, &p))
	return p.Direction
}

func TestBrain_Decide(t *testing.T) {
	tests := []struct {
		name     string
		state    api.ServerResponse
		wantAct  string
		wantDir  string
		wantNone bool
	}{
		{
			name:    "squirts protester in front",
			state:   snapshot(1, playerView(30, 40, "LEFT", 5, 1), view("x", "PROTESTER", 24, 41)),
			wantAct: "SQUIRT",
		},
		{
			name:    "no water means no squirt",
			state:   snapshot(1, playerView(30, 40, "LEFT", 0, 0), view("x", "PROTESTER", 24, 41), view("g", "GOLD", 30, 30)),
			wantAct: "MOVE",
			wantDir: "DOWN",
		},
		{
			name:    "protester behind is ignored",
			state:   snapshot(1, playerView(30, 40, "RIGHT", 5, 0), view("x", "PROTESTER", 24, 40), view("g", "GOLD", 30, 50)),
			wantAct: "MOVE",
			wantDir: "UP",
		},
		{
			name:    "walks to nearest pickup",
			state:   snapshot(1, playerView(30, 60, "RIGHT", 5, 1), view("g", "GOLD", 40, 60), view("b", "BARREL", 0, 0)),
			wantAct: "MOVE",
			wantDir: "RIGHT",
		},
		{
			name:    "pings sonar when nothing is visible",
			state:   snapshot(1, playerView(30, 60, "RIGHT", 5, 1)),
			wantAct: "SONAR",
		},
		{
			name:     "no self in snapshot",
			state:    snapshot(1, view("g", "GOLD", 40, 60)),
			wantNone: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := NewBrain().Decide(tt.state)
			if tt.wantNone {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantAct, cmd.Action)
			if tt.wantDir != "" {
				assert.Equal(t, tt.wantDir, direction(t, cmd))
			}
		})
	}
}

func TestBrain_SonarOncePerRound(t *testing.T) {
	br := NewBrain()

	cmd, ok := br.Decide(snapshot(1, playerView(30, 60, "RIGHT", 5, 2)))
	require.True(t, ok)
	assert.Equal(t, "SONAR", cmd.Action)

	// Дальше по маршруту обхода: первая точка (0,56) левее и ниже
	cmd, ok = br.Decide(snapshot(1, playerView(30, 60, "RIGHT", 5, 1)))
	require.True(t, ok)
	assert.Equal(t, "MOVE", cmd.Action)

	cmd, ok = br.Decide(snapshot(2, playerView(30, 60, "RIGHT", 5, 1)))
	require.True(t, ok)
	assert.Equal(t, "SONAR", cmd.Action)
}

func TestBrain_AvoidsBoulder(t *testing.T) {
	// Валун прямо под игроком: путь вниз идет в обход
	state := snapshot(1,
		playerView(30, 40, "DOWN", 0, 0),
		view("b", "BOULDER", 30, 36),
		view("g", "GOLD", 30, 20),
	)
	cmd, ok := NewBrain().Decide(state)
	require.True(t, ok)
	assert.NotEqual(t, "DOWN", direction(t, cmd))
}

func TestBot_DrivesService(t *testing.T) {
	cfg := engine.NewConfig()
	cfg.Seed = 7
	svc := engine.NewService(cfg)

	bot := NewBot(SessionName(1), svc)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bot.Run(ctx)

	assert.Eventually(t, func() bool {
		svc.Step()
		return len(svc.FinishRecording().Actions) >= 5
	}, 5*time.Second, 5*time.Millisecond)
}
