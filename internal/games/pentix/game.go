package pentix

import (
	"github.com/vovakirdan/pentix/internal/config"
	"github.com/vovakirdan/pentix/internal/core"
	"github.com/vovakirdan/pentix/internal/registry"
)

// GameID is the registry identifier and score-table key of the game.
const GameID = "pentix"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game is a Pentix session: it owns the Board and the active Piece and
// turns ticks and input into calls on them.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.PentixConfig
	injected Selector // nil means a seeded RandSelector per Reset

	board *Board
	piece *Piece

	tick      uint64
	fallEvery int // Ticks between gravity steps
	fallTicks int // Ticks since the last gravity step

	paused    bool
	tooSmall  bool
	configErr error // Load error from the last Reset, if any
}

// New creates a new Pentix game with random shape selection.
func New() *Game {
	return &Game{}
}

// NewWithSelector creates a game whose shapes come from sel on every Reset.
func NewWithSelector(sel Selector) *Game {
	return &Game{injected: sel}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pentix"
}

// Reset initializes or restarts the game. A config that fails to load or
// validate is replaced by the defaults; ConfigError reports why.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPentix(configPath)
	if err != nil {
		cfg = config.DefaultPentixConfig()
	}
	g.ResetWithConfig(runtime, cfg)
	g.configErr = err
}

// ConfigError returns the error that made the last Reset fall back to the
// default config, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

// ResetWithConfig restarts the game with an explicit game configuration.
// cfg must pass config.Validate.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.PentixConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.cfg = cfg
	g.configErr = nil

	sel := g.injected
	if sel == nil {
		sel = NewRandSelector(runtime.Seed)
	}
	color, err := cfg.SpawnColor()
	if err != nil {
		color = core.ColorGreen
	}

	g.board = NewBoard(cfg.Board.Rows, cfg.Board.Columns, cfg.Scoring.PointsPerRow)
	g.piece = NewPiece(
		CatalogFromMatrices(cfg.Shapes),
		sel,
		Position{Row: cfg.Spawn.Row, Col: cfg.Spawn.Column},
		color,
	)
	g.piece.Spawn(g.board)

	g.tick = 0
	g.fallEvery = fallTicks(cfg.Timing.FallIntervalMS, runtime.TickRate)
	g.fallTicks = 0
	g.paused = false
	g.checkScreenSize()
}

// fallTicks converts the gravity period to whole ticks, at least one.
func fallTicks(intervalMS, tickRate int) int {
	n := (intervalMS*tickRate + 500) / 1000
	if n < 1 {
		n = 1
	}
	return n
}

// checkScreenSize checks if the screen can fit the well.
func (g *Game) checkScreenSize() {
	w, h := g.wellSize()
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

// Board returns the session's board. Callers must treat it as read-only.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns the active piece. Callers must treat it as read-only.
func (g *Game) Piece() *Piece {
	return g.piece
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A piece landed by input ends the tick; the next one starts a full
	// fall interval at its spawn row.
	if g.applyInput(in) {
		g.fallTicks = 0
		return core.StepResult{State: g.State(), Landed: true}
	}

	g.fallTicks++
	if g.fallTicks < g.fallEvery {
		return core.StepResult{State: g.State()}
	}
	g.fallTicks = 0
	landed := g.gravity()
	return core.StepResult{State: g.State(), Landed: landed}
}

// applyInput performs the player's actions for this tick in a fixed order.
// Once the piece lands the remaining actions are dropped.
func (g *Game) applyInput(in core.InputFrame) bool {
	if g.board.AwaitingPiece() {
		return false
	}

	b, p := g.board, g.piece

	if in.Has(core.ActionRotate) {
		p.Rotate(b, p.Position())
	}
	if in.Has(core.ActionLeft) {
		p.AttemptMove(b, p.Position().Offset(0, -1))
	}
	if in.Has(core.ActionRight) {
		p.AttemptMove(b, p.Position().Offset(0, 1))
	}
	if in.Has(core.ActionDown) {
		if p.MoveDownOrLand(b) {
			g.afterLanding()
			return true
		}
	}
	if in.Has(core.ActionDrop) {
		p.DropToBottom(b)
		g.afterLanding()
		return true
	}
	return false
}

// gravity runs one timer step: spawn a pending piece, otherwise pull the
// active one down. Reports whether a piece landed.
func (g *Game) gravity() bool {
	if g.board.AwaitingPiece() {
		g.piece.Spawn(g.board)
		return false
	}
	if g.piece.MoveDownOrLand(g.board) {
		g.afterLanding()
		return true
	}
	return false
}

// afterLanding applies the spawn policy once a piece has fused.
func (g *Game) afterLanding() {
	if g.cfg.Rules.SpawnOnLand {
		g.piece.Spawn(g.board)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.board.Score(),
		Lines:    g.board.Lines(),
		GameOver: g.board.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Resize records a new screen size without restarting. A well that no
// longer fits pauses the game until the screen grows again.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.checkScreenSize()
}
