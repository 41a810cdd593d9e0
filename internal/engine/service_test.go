package engine

import (
	"encoding/json"
	"testing"

	"tunnel-server/internal/core/types/enums"
	"tunnel-server/internal/domain"
	"tunnel-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveCmd(t *testing.T, dir string) api.ClientCommand {
	t.Helper()
	payload, err := json.Marshal(api.DirectionPayload{Direction: dir})
	require.NoError(t, err)
	return api.ClientCommand{Action: "MOVE", Payload: payload}
}

func TestService_MoveThroughShaft(t *testing.T) {
	s := NewService(testConfig())

	// Первый MOVE только поворачивает, дальше спуск по пустой шахте
	for i := 0; i < 6; i++ {
		require.NoError(t, s.ProcessCommand(moveCmd(t, "DOWN")))
		require.True(t, s.Step())
	}

	s.WithLevel(func(l *Level) {
		p := l.Player()
		assert.Equal(t, enums.DirDown, p.Facing)
		assert.Equal(t, domain.Position{X: 30, Y: 55}, p.Pos)
	})
	assert.Len(t, s.Replay.Actions, 6)
	assert.Equal(t, 1, s.Replay.Actions[0].Round)
	assert.Equal(t, 0, s.Replay.Actions[0].Tick)
	assert.Equal(t, 5, s.Replay.Actions[5].Tick)
}

func TestService_RejectsBadCommands(t *testing.T) {
	s := NewService(testConfig())

	err := s.ProcessCommand(api.ClientCommand{Action: "ATTACK"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	// Читы выключены по умолчанию
	err = s.ProcessCommand(api.ClientCommand{Action: "ADMIN_HEAL"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	// Плохой payload отбрасывается в цикле, тик идет дальше
	require.NoError(t, s.ProcessCommand(moveCmd(t, "NORTH")))
	require.True(t, s.Step())
	assert.Equal(t, 0, s.PendingCommands())
	assert.Empty(t, s.Replay.Actions)
}

func TestService_LivesAndGameOver(t *testing.T) {
	s := NewService(testConfig())

	for lives := 2; lives >= 1; lives-- {
		require.NoError(t, s.ProcessCommand(api.ClientCommand{Action: "GIVE_UP"}))
		require.True(t, s.Step())
		assert.Equal(t, lives, s.Progress.Lives)
	}
	s.WithLevel(func(l *Level) {
		assert.Equal(t, 3, l.Round, "each death restarts the level as a new round")
		assert.True(t, l.Player().Alive)
	})

	require.NoError(t, s.ProcessCommand(api.ClientCommand{Action: "GIVE_UP"}))
	assert.False(t, s.Step())
	assert.True(t, s.IsOver())
	assert.Equal(t, 0, s.Progress.Lives)
	assert.ErrorIs(t, s.ProcessCommand(api.ClientCommand{Action: "SONAR"}), ErrGameOver)
	assert.False(t, s.Step())

	snap := s.Snapshot()
	assert.Equal(t, "GAME_OVER", snap.Type)
	assert.True(t, snap.Progress.GameOver)
}

func TestService_PublishesSnapshots(t *testing.T) {
	s := NewService(testConfig())
	ch := s.Hub.Register("viewer")

	require.NoError(t, s.ProcessCommand(api.ClientCommand{Action: "INIT"}))
	require.True(t, s.Step())

	require.Len(t, ch, 1)
	msg := <-ch
	assert.Equal(t, "UPDATE", msg.Type)
	assert.Equal(t, 1, msg.Tick)
	assert.Equal(t, 1, msg.Round)
	assert.NotEmpty(t, msg.Status)
	assert.Len(t, msg.Terrain, domain.FieldHeight)
	require.NotEmpty(t, msg.Logs)
	assert.Equal(t, "INFO", msg.Logs[0].Type)

	kinds := map[string]bool{}
	for _, e := range msg.Entities {
		kinds[e.Kind] = true
		assert.NotEqual(t, "BARREL", e.Kind, "hidden barrels must not leak into snapshots")
	}
	assert.True(t, kinds["PLAYER"])
	assert.True(t, kinds["BOULDER"])

	// Логи уходят один раз
	require.True(t, s.Step())
	msg = <-ch
	assert.Empty(t, msg.Logs)
}

func TestService_AdminCommands(t *testing.T) {
	cfg := testConfig()
	cfg.Cheats = true
	s := NewService(cfg)

	payload, _ := json.Marshal(api.RefillPayload{Water: 10, Gold: 2})
	require.NoError(t, s.ProcessCommand(api.ClientCommand{Action: "ADMIN_REFILL", Payload: payload}))
	require.NoError(t, s.ProcessCommand(api.ClientCommand{Action: "ADMIN_REVEAL"}))
	require.True(t, s.Step())

	s.WithLevel(func(l *Level) {
		p := l.Player().Player
		assert.Equal(t, domain.PlayerStartWater+10, p.Water)
		assert.Equal(t, 2, p.Gold)

		for _, e := range l.World.Entities() {
			if e.Kind == enums.EntityBarrel {
				assert.True(t, e.Visible)
			}
		}
	})

	assert.True(t, s.FinishRecording().Cheated, "admin commands make the recording unreplayable")
}

func TestService_PlainSessionStaysReplayable(t *testing.T) {
	cfg := testConfig()
	cfg.Cheats = true
	s := NewService(cfg)

	require.NoError(t, s.ProcessCommand(moveCmd(t, "DOWN")))
	require.True(t, s.Step())

	assert.False(t, s.FinishRecording().Cheated)
}

func TestService_ReplayReproducesGame(t *testing.T) {
	cfg := testConfig()
	live := NewService(cfg)

	script := []string{"DOWN", "DOWN", "DOWN", "LEFT", "LEFT", "LEFT", "LEFT", "DOWN", "DOWN"}
	for _, dir := range script {
		require.NoError(t, live.ProcessCommand(moveCmd(t, dir)))
		require.True(t, live.Step())
	}
	require.NoError(t, live.ProcessCommand(api.ClientCommand{Action: "SQUIRT"}))
	for i := 0; i < 40; i++ {
		require.True(t, live.Step())
	}

	session := live.FinishRecording()
	require.NotEmpty(t, session.Actions)
	assert.Equal(t, cfg.Seed, session.Seed)

	var livePos domain.Position
	var liveTerrain int
	live.WithLevel(func(l *Level) {
		livePos = l.Player().Pos
		liveTerrain = l.World.Terrain.Count()
	})

	replay := NewReplayService(NewConfig(), session)
	assert.True(t, replay.IsReplay())
	assert.ErrorIs(t, replay.ProcessCommand(moveCmd(t, "UP")), ErrReadOnly)

	steps := 0
	for replay.Step() {
		steps++
		require.Less(t, steps, 1000, "replay must stop at the recorded end")
	}

	assert.Equal(t, session.EndTick, steps)
	assert.Equal(t, live.Progress.Score, replay.Progress.Score)
	replay.WithLevel(func(l *Level) {
		assert.Equal(t, livePos, l.Player().Pos)
		assert.Equal(t, liveTerrain, l.World.Terrain.Count())
	})
}
