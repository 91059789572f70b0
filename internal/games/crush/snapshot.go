package crush

import "github.com/vovakirdan/tui-crush/internal/games/crush/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateAnimating    GameStateType = "animating"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "endless"
	Level     int    // Current level (1-indexed for display), 0 for endless
	Target    int
	MovesLeft int
	Colors    int
	Score     int
	Chain     int
	Cursor    engine.Coord
	Board     [][]engine.TileType // Row 1 (bottom) first
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.play != nil:
		state = StateAnimating
	}

	level := 0
	if g.mode == ModeCampaign {
		level = g.level.Index + 1
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     level,
		Target:    g.level.Target,
		MovesLeft: g.movesLeft,
		Colors:    g.colors,
		Score:     g.score,
		Chain:     g.chain,
		Cursor:    g.cursor,
		Board:     g.cells.Types(),
		State:     state,
	}
}
