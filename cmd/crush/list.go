package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crush/internal/games/crush"
	"github.com/vovakirdan/tui-crush/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and campaign levels",
	Long: `Shows the registered game modes and the campaign levels as the
current config and difficulty preset define them.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	levels := crush.Levels()
	fmt.Println()
	fmt.Printf("Campaign levels (%s):\n", flagDifficulty)
	fmt.Println()
	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %s\n", "Level", "Target", "Moves", "Colors", "Layout")
	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %s\n", "-----", "------", "-----", "------", "------")
	for i, lvl := range levels {
		layout := "random"
		if len(lvl.Layout) > 0 {
			layout = "fixed"
		}
		fmt.Printf("  %-5d  %-7d  %-5d  %-6d  %s\n", i+1, lvl.Target, lvl.Moves, lvl.Colors, layout)
	}

	fmt.Println()
	fmt.Println("Run 'crush play' or 'crush play endless' to start.")
}
