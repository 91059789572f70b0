package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/games/crush/engine"
)

var (
	flagSimLayout string
	flagSimColors int
	flagSimTaps   []string
	flagSimHint   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run swaps headless and print their timelines",
	Long: `Deal a board, apply taps in order and print every swap's outcome as
YAML: the tile animation commands, the timed effects and the board after the
cascade settles. Coordinates are col,row with row 1 at the bottom.

Two taps on neighboring tiles make a swap. With --hint and no taps, the first
available swap is played.

Examples:
  crush sim --seed 7 --hint
  crush sim --layout board.yaml --tap 4,5 --tap 5,5`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	f := simCmd.Flags()
	f.StringVar(&flagSimLayout, "layout", "", "YAML file with a fixed board")
	f.IntVar(&flagSimColors, "colors", 0, "Active colors (default: layout file, then 5)")
	f.StringArrayVar(&flagSimTaps, "tap", nil, "Tap a cell, as col,row (repeatable)")
	f.BoolVar(&flagSimHint, "hint", false, "Play the first available swap when no taps are given")
}

// simReport is the YAML document printed by sim.
type simReport struct {
	Seed   int64      `yaml:"seed"`
	Colors int        `yaml:"colors"`
	Board  []string   `yaml:"board"`
	Swaps  []simSwap  `yaml:"swaps"`
	Final  []string   `yaml:"final"`
	Notes  []string   `yaml:"notes,omitempty"`
	Timing simTimings `yaml:"timing"`
}

type simTimings struct {
	Move           time.Duration `yaml:"move"`
	Die            time.Duration `yaml:"die"`
	Shake          time.Duration `yaml:"shake"`
	Detonation     time.Duration `yaml:"detonation"`
	ColorBombDelay time.Duration `yaml:"color_bomb_delay"`
	Settle         time.Duration `yaml:"settle"`
}

type simSwap struct {
	From      string        `yaml:"from"`
	To        string        `yaml:"to"`
	Committed bool          `yaml:"committed"`
	Rounds    int           `yaml:"rounds"`
	Cleared   int           `yaml:"cleared"`
	Duration  time.Duration `yaml:"duration"`
	Effects   []simEffect   `yaml:"effects,omitempty"`
	Tiles     []simTile     `yaml:"tiles"`
}

type simEffect struct {
	At     time.Duration `yaml:"at"`
	Pos    string        `yaml:"pos"`
	Action string        `yaml:"action"`
	Step   int           `yaml:"step"`
}

type simTile struct {
	ID       uint64       `yaml:"id"`
	Kind     string       `yaml:"kind"`
	Start    string       `yaml:"start"`
	End      string       `yaml:"end"`
	Commands []simCommand `yaml:"commands,flow"`
}

type simCommand struct {
	Kind     string        `yaml:"kind"`
	At       time.Duration `yaml:"at"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Target   string        `yaml:"target,omitempty"`
	Visible  *bool         `yaml:"visible,omitempty"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadCrush(flagConfig)
	if err != nil {
		return err
	}

	var rows []string
	colors := 5
	if flagSimLayout != "" {
		var fileColors int
		rows, fileColors, err = config.LoadLayout(flagSimLayout)
		if err != nil {
			return err
		}
		if fileColors > 0 {
			colors = fileColors
		}
	}
	if flagSimColors > 0 {
		colors = flagSimColors
	}

	taps := make([]engine.Coord, 0, len(flagSimTaps))
	for _, s := range flagSimTaps {
		c, err := parseCoord(s)
		if err != nil {
			return err
		}
		taps = append(taps, c)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	report, err := simulate(cfg, seed, rows, colors, taps, flagSimHint)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), report)
}

// simulate deals the board and applies taps, collecting every swap.
func simulate(cfg config.CrushConfig, seed int64, rows []string, colors int, taps []engine.Coord, hint bool) (simReport, error) {
	timing := engine.Timing{
		Move:           cfg.Timing.Move,
		Die:            cfg.Timing.Die,
		Shake:          cfg.Timing.Shake,
		Detonation:     cfg.Timing.Detonation,
		ColorBombDelay: cfg.Timing.ColorBombDelay,
		Settle:         cfg.Timing.Settle,
	}
	eng := engine.New(engine.Config{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Timing: timing,
	}, engine.WithRand(rand.New(rand.NewSource(seed))), engine.WithLogger(logger))

	if len(rows) > 0 {
		l, err := engine.ParseLayout(rows)
		if err != nil {
			return simReport{}, err
		}
		if err := eng.LoadLayout(l, colors); err != nil {
			return simReport{}, err
		}
	} else if err := eng.Initialize(colors); err != nil {
		return simReport{}, err
	}

	report := simReport{
		Seed:   seed,
		Colors: colors,
		Board:  layoutRows(eng.Cells()),
		Timing: simTimings(timing),
	}

	if len(taps) == 0 && hint {
		a, b, ok := eng.FindSwap()
		if ok {
			taps = []engine.Coord{a, b}
		} else {
			report.Notes = append(report.Notes, "no swap available")
		}
	}

	var pending engine.Coord
	for _, c := range taps {
		res, err := eng.SelectCell(c)
		if err != nil {
			return simReport{}, err
		}
		if !res.Swapped() {
			pending = c
			continue
		}
		report.Swaps = append(report.Swaps, describeSwap(pending, c, res))
		logger.Debug("sim swap", "from", pending, "to", c, "committed", res.Committed, "cleared", res.Cleared)
	}

	if _, ok := eng.Selection(); ok {
		report.Notes = append(report.Notes, fmt.Sprintf("tap %s left pending", pending))
	}
	report.Final = layoutRows(eng.Cells())
	return report, nil
}

func describeSwap(from, to engine.Coord, res engine.Result) simSwap {
	sw := simSwap{
		From:      from.String(),
		To:        to.String(),
		Committed: res.Committed,
		Rounds:    res.Rounds,
		Cleared:   res.Cleared,
		Duration:  res.Duration,
	}
	for _, e := range res.Effects {
		sw.Effects = append(sw.Effects, simEffect{
			At:     e.PlayTime,
			Pos:    e.Pos.String(),
			Action: string(e.Action),
			Step:   e.Step,
		})
	}
	for _, t := range res.Changed {
		st := simTile{
			ID:    t.ID,
			Kind:  tileKind(t),
			Start: t.Start.String(),
			End:   t.Pos.String(),
		}
		for _, c := range t.Commands {
			sc := simCommand{Kind: c.Kind.String(), At: c.At, Duration: c.Duration}
			switch c.Kind {
			case engine.CmdMove, engine.CmdMoveAndRevert:
				sc.Target = c.Target.String()
			case engine.CmdVisible:
				v := c.Visible
				sc.Visible = &v
			}
			st.Commands = append(st.Commands, sc)
		}
		sw.Tiles = append(sw.Tiles, st)
	}
	return sw
}

func tileKind(t *engine.Tile) string {
	if t.Status == engine.StatusOrdinary {
		return t.Type.String()
	}
	return t.Type.String() + " " + t.Status.String()
}

// layoutRows renders a snapshot in layout notation, top row first.
func layoutRows(s engine.Snapshot) []string {
	return strings.Split(s.Layout().String(), "\n")
}

// parseCoord parses "col,row".
func parseCoord(s string) (engine.Coord, error) {
	colStr, rowStr, ok := strings.Cut(s, ",")
	if !ok {
		return engine.Coord{}, fmt.Errorf("invalid tap %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("invalid tap %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("invalid tap %q: %w", s, err)
	}
	return engine.C(col, row), nil
}

func writeReport(w io.Writer, r simReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
