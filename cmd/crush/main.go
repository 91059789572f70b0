// crush is a match-3 game for the terminal.
//
// Usage:
//
//	crush                    - Start the menu
//	crush play [endless]     - Play the campaign or endless mode directly
//	crush list               - List modes and campaign levels
//	crush scores [mode]      - Show high scores
//	crush sim                - Run swaps headless and print their timelines
//	crush config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom crush.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/games/crush"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logger is set up by the root command before any subcommand runs.
var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crush",
	Short: "Crush - a match-3 game in your terminal",
	Long: `Crush is a match-3 puzzle game for the terminal. Swap neighboring
tiles to line up three or more of a color. Longer lines leave special tiles
behind that clear a row, a column, an area or every tile of one color.

Available commands:
  play     - Play the campaign or endless mode
  list     - Show modes and campaign levels
  scores   - View high scores
  sim      - Run swaps headless and print the animation timeline
  config   - Print the effective configuration

Run without a command to open the menu.

Examples:
  crush
  crush play --difficulty hard
  crush play endless --seed 42
  crush sim --layout board.yaml --tap 4,5 --tap 5,5`,
	PersistentPreRunE: setup,
	Run:               runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom crush.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game screen hides stderr)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and pushes global flags into the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "crush",
		Level:           level,
	})

	switch flagDifficulty {
	case "easy", "normal", "hard", "fixed":
	default:
		return fmt.Errorf("invalid --difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	crush.SetConfigPath(flagConfig)
	crush.SetDifficultyPreset(flagDifficulty)
	crush.SetLogger(logger)
	return nil
}

// interactiveLogger keeps log lines off the alternate screen unless a file
// was requested.
func interactiveLogger() *log.Logger {
	if logFile != nil {
		return logger
	}
	return log.New(io.Discard)
}
