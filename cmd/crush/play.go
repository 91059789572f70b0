package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crush/internal/config"
	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush"
	"github.com/vovakirdan/tui-crush/internal/platform/tui"
	"github.com/vovakirdan/tui-crush/internal/registry"
	"github.com/vovakirdan/tui-crush/internal/storage"
)

var (
	flagLevel  int
	flagLayout string
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play the campaign or endless mode",
	Long: `Start a game directly, skipping the menu.

Controls:
  Arrows/WASD/hjkl - Move the cursor
  Space/Enter      - Pick a tile; pick a neighbor to swap
  Mouse click      - Pick the clicked tile
  ?                - Show a possible swap
  Esc/B            - Drop the current pick
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More moves, fewer colors, progression from the start
  normal - Starts at 30% difficulty
  hard   - Fewer moves, more colors, starts at 70% difficulty
  fixed  - No progression

Examples:
  crush play
  crush play endless
  crush play --level 3 --difficulty hard
  crush play --layout ./board.yaml`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"campaign", "endless"},
	Run:       runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start from (1-based)")
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "YAML file with a fixed first board")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "crush"
	if len(args) == 1 {
		switch args[0] {
		case "campaign":
		case "endless":
			gameID = "crush_endless"
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'crush list' to see available modes.")
			os.Exit(1)
		}
	}

	if flagLevel > 0 {
		crush.SetStartLevel(flagLevel)
	}
	if flagLayout != "" {
		rows, colors, err := config.LoadLayout(flagLayout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		crush.SetLayout(rows, colors)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := playGame(gameID, store, runtimeConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playGame runs one game until the player quits.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	l := interactiveLogger()
	crush.SetLogger(l)
	defer crush.SetLogger(logger)

	l.Info("game start", "mode", gameID, "seed", cfg.Seed, "difficulty", flagDifficulty)
	return tui.Run(game, store, l, cfg)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.WithDefaults()
}
