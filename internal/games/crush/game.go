package crush

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush/engine"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

// Ticks spent on the level-cleared and reshuffle banners (2s and 1s at 60fps).
const (
	levelClearTicks = 120
	messageTicks    = 60
)

// Package-level settings applied on the next Reset.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	layoutRows         []string
	layoutColors       int
	logger             = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLayout fixes the first board of the next game. colors overrides the
// level's color count when positive.
func SetLayout(rows []string, colors int) {
	layoutRows = rows
	layoutColors = colors
}

// SetLogger routes game and engine logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the match-3 game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	eng  *engine.Engine
	tick uint64

	cfg        config.CrushConfig
	difficulty *config.DifficultyManager

	score     int
	best      int // stored high score for this mode
	chain     int // Longest cascade this game
	lastChain int
	level     Level
	movesLeft int
	colors    int

	cells   engine.Snapshot
	cursor  engine.Coord
	hint    [2]engine.Coord
	hasHint bool
	play    *playback
	message string
	msgLeft int

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Game state flags
	gameOver       bool
	levelCleared   bool
	won            bool
	paused         bool
	tooSmall       bool
	levelClearLeft int
}

// New creates a new campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("crush", func() registry.Game {
		return New()
	})
	registry.Register("crush_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "crush_endless"
	}
	return "crush"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Crush (Endless)"
	}
	return "Crush"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := loadConfig()
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.eng = engine.New(engine.Config{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Timing: engine.Timing{
			Move:           cfg.Timing.Move,
			Die:            cfg.Timing.Die,
			Shake:          cfg.Timing.Shake,
			Detonation:     cfg.Timing.Detonation,
			ColorBombDelay: cfg.Timing.ColorBombDelay,
			Settle:         cfg.Timing.Settle,
		},
	}, engine.WithRand(g.rng), engine.WithLogger(logger))

	g.tick = 0
	g.tickRate = runtime.TickRate
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.score = 0
	g.chain = 0
	g.lastChain = 0
	g.play = nil
	g.message = ""
	g.msgLeft = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearLeft = 0

	start := 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= len(cfg.Levels) {
		start = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	}
	g.loadLevel(start, layoutRows, layoutColors)
	layoutRows, layoutColors = nil, 0

	g.checkScreenSize()
}

// loadLevel sets up level index (campaign) or the endless board and deals
// a fresh board, from rows when given.
func (g *Game) loadLevel(index int, rows []string, colors int) {
	if g.mode == ModeCampaign {
		lvl, ok := resolveLevel(g.cfg, g.difficulty, index)
		if !ok {
			lvl = Level{Index: index, Target: 1, Moves: 1, Colors: engine.BaseTypeCount}
		}
		g.level = lvl
		g.movesLeft = lvl.Moves
		g.colors = lvl.Colors
		if rows == nil {
			rows = lvl.Layout
		}
	} else {
		g.level = Level{}
		g.colors = endlessColors(g.cfg, g.difficulty)
	}
	if colors > 0 {
		g.colors = colors
	}

	g.deal(rows)
	g.cursor = engine.C((g.cfg.Board.Width+1)/2, (g.cfg.Board.Height+1)/2)
}

// deal fills the board, from a fixed layout when rows parse.
func (g *Game) deal(rows []string) {
	if len(rows) > 0 {
		l, err := engine.ParseLayout(rows)
		if err == nil {
			err = g.eng.LoadLayout(l, g.colors)
		}
		if err == nil {
			g.afterBoardChange()
			return
		}
		logger.Warn("ignoring layout", "err", err)
	}

	if err := g.eng.Initialize(g.colors); err != nil {
		logger.Error("initialize board", "colors", g.colors, "err", err)
		g.colors = engine.DefaultConfig().TypeCount
		_ = g.eng.Initialize(g.colors) //nolint:errcheck // default count is always valid
	}
	g.afterBoardChange()
}

func (g *Game) afterBoardChange() {
	g.cells = g.eng.Cells()
	g.hasHint = false
}

// SetHighScore sets the stored best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.best = score
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize pauses the game while the terminal is too small.
func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if g.msgLeft > 0 {
		g.msgLeft--
		if g.msgLeft == 0 {
			g.message = ""
		}
	}

	// Animations run to completion before anything else
	if g.play != nil {
		if !g.play.advance() {
			g.play = nil
			g.afterMove()
		}
		return g.result()
	}

	if g.levelCleared {
		g.levelClearLeft--
		if g.levelClearLeft <= 0 {
			g.advanceLevel()
		}
		return g.result()
	}

	if g.gameOver || g.won {
		return g.result()
	}

	g.handleInput(in)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Busy: g.play != nil}
}

// handleInput moves the cursor and forwards selections to the engine.
func (g *Game) handleInput(in core.InputFrame) {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 1, h)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 1, h)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 1, w)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 1, w)
	}

	if in.Has(core.ActionHint) {
		g.hint[0], g.hint[1], g.hasHint = g.eng.FindSwap()
	}

	if in.Has(core.ActionBack) {
		g.eng.ClearSelection()
	}

	for _, c := range in.Clicks {
		if cell, ok := g.cellAt(c.X, c.Y); ok {
			g.cursor = cell
			if g.selectCell(cell) {
				return
			}
		}
	}

	if in.Has(core.ActionSelect) {
		g.selectCell(g.cursor)
	}
}

// selectCell taps c. Returns true if the tap started an animation.
func (g *Game) selectCell(c engine.Coord) bool {
	before := g.cells
	res, err := g.eng.SelectCell(c)
	if err != nil {
		if !errors.Is(err, engine.ErrBusy) {
			logger.Debug("select rejected", "cell", c, "err", err)
		}
		return false
	}
	if !res.Swapped() {
		return false
	}

	g.hasHint = false
	g.cells = g.eng.Cells()
	g.play = newPlayback(res, before, tickStep(g.tickRate, g.cfg.Timing.Speed))

	if res.Committed {
		gained := scoreResult(res, g.cfg.Scoring)
		g.score += gained
		g.lastChain = chainLength(res)
		if g.lastChain > g.chain {
			g.chain = g.lastChain
		}
		if g.mode == ModeCampaign {
			g.movesLeft--
		}
		logger.Debug("move resolved",
			"points", gained,
			"cleared", res.Cleared,
			"rounds", res.Rounds,
			"chain", g.lastChain,
		)
	}
	return true
}

// afterMove settles the outcome once a move's animation has finished.
func (g *Game) afterMove() {
	if g.mode == ModeCampaign {
		if g.score >= g.level.Target {
			g.levelCleared = true
			g.levelClearLeft = levelClearTicks
			return
		}
		if g.movesLeft <= 0 {
			g.gameOver = true
			return
		}
	}

	if _, _, ok := g.eng.FindSwap(); ok {
		return
	}
	if g.mode == ModeEndless {
		g.gameOver = true
		return
	}
	g.deal(nil)
	g.message = "No moves left - reshuffled"
	g.msgLeft = messageTicks
}

// advanceLevel moves to the next level, or wins after the last one.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearLeft = 0

	if g.level.Index >= len(g.cfg.Levels)-1 {
		g.won = true
		return
	}
	g.loadLevel(g.level.Index+1, nil, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:     g.score,
		Chain:     g.chain,
		MovesLeft: -1,
		GameOver:  g.gameOver || g.won,
		Won:       g.won,
		Paused:    g.paused || g.tooSmall || g.levelCleared,
	}
	if g.mode == ModeCampaign {
		st.Level = g.level.Index + 1
		st.MovesLeft = g.movesLeft
	}
	return st
}
