package pentix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// newTestGame returns a game reset with the default config, optionally
// adjusted by tweak. A nil sel keeps the seeded random selector.
func newTestGame(t *testing.T, sel Selector, tweak func(*config.PentixConfig)) *Game {
	t.Helper()
	cfg := config.DefaultPentixConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	require.NoError(t, cfg.Validate())

	g := New()
	if sel != nil {
		g = NewWithSelector(sel)
	}
	runtime := core.DefaultConfig()
	runtime.Seed = 1
	g.ResetWithConfig(runtime, cfg)
	return g
}

func stepN(g *Game, n int, in core.InputFrame) {
	for i := 0; i < n; i++ {
		g.Step(in)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, GameID, g.ID())
	assert.Equal(t, "Pentix", g.Title())
}

func TestResetSpawnsFirstPiece(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	assert.False(t, g.Board().AwaitingPiece())
	assert.Equal(t, testSpawn, g.Piece().Position())
	assert.True(t, g.Piece().Cells().Equal(DefaultCatalog()[idxO]))
	assert.Equal(t, core.ColorGreen, g.Piece().Color())
	assert.Equal(t, core.GameState{}, g.State())
}

func TestFallTicks(t *testing.T) {
	tests := []struct {
		ms, rate, want int
	}{
		{525, 60, 32},
		{1000, 60, 60},
		{500, 30, 15},
		{1, 60, 1},
		{0, 60, 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, fallTicks(tc.ms, tc.rate), "%dms at %d ticks/s", tc.ms, tc.rate)
	}
}

func TestGravity(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)
	require.Equal(t, 32, g.fallEvery)

	stepN(g, g.fallEvery-1, frame())
	assert.Equal(t, 0, g.Piece().Position().Row)

	g.Step(frame())
	assert.Equal(t, 1, g.Piece().Position().Row)
}

func TestGravityLandsPiece(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), func(c *config.PentixConfig) {
		c.Timing.FallIntervalMS = 1
	})
	require.Equal(t, 1, g.fallEvery)

	landed := false
	for i := 0; i < testRows && !landed; i++ {
		landed = g.Step(frame()).Landed
	}
	require.True(t, landed)
	assert.True(t, g.Board().IsCellOccupied(testRows-1, 4))
	assert.Equal(t, testSpawn, g.Piece().Position(), "next piece spawns on landing")
}

func TestStepMovesPiece(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxI), nil)

	g.Step(frame(core.ActionLeft))
	assert.Equal(t, Position{Row: 0, Col: 3}, g.Piece().Position())

	g.Step(frame(core.ActionRight))
	g.Step(frame(core.ActionRight))
	assert.Equal(t, Position{Row: 0, Col: 5}, g.Piece().Position())

	g.Step(frame(core.ActionDown))
	assert.Equal(t, Position{Row: 1, Col: 5}, g.Piece().Position())

	g.Step(frame(core.ActionRotate))
	assert.True(t, g.Piece().Cells().Equal(Shape{{1}, {1}, {1}, {1}}))
	assert.Equal(t, Position{Row: 1, Col: 5}, g.Piece().Position())
}

func TestStepBlockedMoveIsIgnored(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxI), nil)

	// I spans columns 4..7; three steps right reach the wall.
	stepN(g, 5, frame(core.ActionRight))
	assert.Equal(t, Position{Row: 0, Col: testCols - 4}, g.Piece().Position())
}

func TestHardDrop(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	res := g.Step(frame(core.ActionDrop))

	assert.True(t, res.Landed)
	assert.True(t, g.Board().IsCellOccupied(testRows-2, 4))
	assert.True(t, g.Board().IsCellOccupied(testRows-1, 5))
	assert.False(t, g.Board().AwaitingPiece())
	assert.Equal(t, testSpawn, g.Piece().Position())
}

func TestDropOnGravityTickKeepsSpawnRow(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	stepN(g, g.fallEvery-1, frame())
	require.True(t, g.Step(frame(core.ActionDrop)).Landed)
	assert.Equal(t, testSpawn, g.Piece().Position())

	// The new piece waits a full interval before its first fall.
	stepN(g, g.fallEvery-1, frame())
	assert.Equal(t, testSpawn, g.Piece().Position())
	g.Step(frame())
	assert.Equal(t, testSpawn.Offset(1, 0), g.Piece().Position())
}

func TestDropWithFastGravityKeepsSpawnRow(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), func(c *config.PentixConfig) {
		c.Timing.FallIntervalMS = 1
	})
	require.Equal(t, 1, g.fallEvery)

	require.True(t, g.Step(frame(core.ActionDrop)).Landed)
	assert.Equal(t, testSpawn, g.Piece().Position())

	g.Step(frame())
	assert.Equal(t, testSpawn.Offset(1, 0), g.Piece().Position())
}

func TestSpawnOnLandDisabled(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), func(c *config.PentixConfig) {
		c.Rules.SpawnOnLand = false
	})

	require.True(t, g.Step(frame(core.ActionDrop)).Landed)
	require.True(t, g.Board().AwaitingPiece())
	assert.Equal(t, StateAwaiting, g.Snapshot().State)

	// Input is dropped while no piece is active.
	g.Step(frame(core.ActionLeft, core.ActionDrop))
	assert.True(t, g.Board().AwaitingPiece())

	// The landing tick restarts the fall interval.
	steps := 2
	for g.Board().AwaitingPiece() {
		g.Step(frame())
		steps++
		require.LessOrEqual(t, steps, g.fallEvery+1, "piece never spawned")
	}
	assert.Equal(t, g.fallEvery+1, steps)
	assert.Equal(t, testSpawn, g.Piece().Position())
}

func TestRowClearScores(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(0), func(c *config.PentixConfig) {
		c.Board.Rows = 4
		c.Board.Columns = 2
		c.Spawn.Column = 0
		c.Shapes = [][][]int{{{1, 1}}}
	})

	res := g.Step(frame(core.ActionDrop))

	assert.True(t, res.Landed)
	assert.Equal(t, core.GameState{Score: testPoints, Lines: 1}, res.State)
	for _, row := range g.Board().Grid() {
		assert.Equal(t, rowOf(2, core.ColorDefault), row)
	}
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	// Each O stacks two rows in columns 4-5; the tenth fills the top.
	for i := 0; i < testRows/2; i++ {
		require.False(t, g.State().GameOver, "drop %d", i)
		g.Step(frame(core.ActionDrop))
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	before := g.Snapshot()
	stepN(g, 100, frame(core.ActionDrop, core.ActionLeft))
	assert.Equal(t, before, g.Snapshot(), "a finished game does not advance")
}

func TestResetFallsBackOnConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: ["), 0o644))
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.DefaultConfig())

	assert.Error(t, g.ConfigError())
	assert.Equal(t, config.DefaultPentixConfig().Board.Rows, g.Board().Rows())
	assert.False(t, g.State().GameOver)

	g.ResetWithConfig(core.DefaultConfig(), config.DefaultPentixConfig())
	assert.NoError(t, g.ConfigError())
}

func TestPause(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.Equal(t, StatePaused, g.Snapshot().State)

	stepN(g, 3*g.fallEvery, frame(core.ActionDrop))
	assert.Equal(t, testSpawn, g.Piece().Position())
	assert.False(t, g.Board().IsCellOccupied(testRows-1, 4))

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	g.Step(frame(core.ActionDown))
	assert.Equal(t, 1, g.Piece().Position().Row)
}

func TestResetRestarts(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)
	g.Step(frame(core.ActionDrop))
	g.Step(frame(core.ActionPause))

	g.ResetWithConfig(core.DefaultConfig(), config.DefaultPentixConfig())

	snap := g.Snapshot()
	assert.Equal(t, uint64(0), snap.Tick)
	assert.Equal(t, StatePlaying, snap.State)
	assert.Zero(t, snap.Score)
	for _, row := range snap.Grid {
		assert.Equal(t, rowOf(testCols, core.ColorDefault), row)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i%17 == 0:
			return frame(core.ActionDrop)
		case i%5 == 0:
			return frame(core.ActionLeft)
		case i%7 == 0:
			return frame(core.ActionRotate, core.ActionRight)
		}
		return frame()
	}

	play := func() Snapshot {
		g := New()
		runtime := core.DefaultConfig()
		runtime.Seed = 12345
		g.ResetWithConfig(runtime, config.DefaultPentixConfig())
		for i := 1; i <= 2000; i++ {
			g.Step(script(i))
		}
		return g.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)

	snap := g.Snapshot()
	snap.Grid[testRows-1][0] = core.ColorRed
	snap.Piece.Cells[0][0] = 0

	assert.False(t, g.Board().IsCellOccupied(testRows-1, 0))
	assert.Equal(t, 1, g.Piece().Cells()[0][0])
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	runtime := core.DefaultConfig()
	runtime.ScreenW, runtime.ScreenH = 10, 10
	g.ResetWithConfig(runtime, config.DefaultPentixConfig())

	res := g.Step(frame(core.ActionDrop))
	assert.True(t, res.State.Paused)
	assert.False(t, res.Landed)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(runtime.ScreenW*4, runtime.ScreenH)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRender(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "PENTIX")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, string(blockRune))
	assert.NotContains(t, out, "GAME OVER")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(frame(core.ActionPause))
	stepN(g, testRows/2, frame(core.ActionDrop))
	require.True(t, g.State().GameOver)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestRenderGameOverHidesFailedPiece(t *testing.T) {
	// Ten O pieces fill columns 4-5; the I that follows cannot spawn.
	seq := make([]int, 0, testRows/2+1)
	for i := 0; i < testRows/2; i++ {
		seq = append(seq, idxO)
	}
	g := newTestGame(t, NewSequenceSelector(append(seq, idxI)...), nil)
	stepN(g, testRows/2, frame(core.ActionDrop))
	require.True(t, g.State().GameOver)
	require.False(t, g.Board().IsCellOccupied(0, 6))

	w, h := g.wellSize()
	screen := core.NewScreen(w, h)
	g.renderWell(screen, core.NewRect(0, 0, w, h))

	x := 1 + 6*cellWidth
	assert.NotEqual(t, blockRune, screen.GetCell(x, 1).Rune)
	assert.Equal(t, emptyRune, screen.GetCell(x+1, 1).Rune)
}

func TestRenderPieceColor(t *testing.T) {
	g := newTestGame(t, NewSequenceSelector(idxO), nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	found := false
	for y := 0; y < screen.Height() && !found; y++ {
		for x := 0; x < screen.Width(); x++ {
			if cell := screen.GetCell(x, y); cell.Rune == blockRune {
				assert.Equal(t, core.ColorGreen, cell.Color)
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}
