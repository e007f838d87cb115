package pentix

import "github.com/vovakirdan/pentix/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAwaiting    GameStateType = "awaiting_piece"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// PieceSnapshot is a copy of the active piece.
type PieceSnapshot struct {
	Cells    Shape
	Position Position
	Color    core.Color
}

// Snapshot captures the complete game state for inspection and determinism tests.
type Snapshot struct {
	Tick          uint64
	Rows          int
	Columns       int
	Grid          [][]core.Color
	Piece         PieceSnapshot
	Score         int
	Lines         int
	AwaitingPiece bool
	GameOver      bool
	State         GameStateType
}

// Snapshot returns a read-only copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.board.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.board.AwaitingPiece():
		state = StateAwaiting
	}

	return Snapshot{
		Tick:    g.tick,
		Rows:    g.board.Rows(),
		Columns: g.board.Columns(),
		Grid:    g.board.Grid(),
		Piece: PieceSnapshot{
			Cells:    g.piece.Cells(),
			Position: g.piece.Position(),
			Color:    g.piece.Color(),
		},
		Score:         g.board.Score(),
		Lines:         g.board.Lines(),
		AwaitingPiece: g.board.AwaitingPiece(),
		GameOver:      g.board.GameOver(),
		State:         state,
	}
}
