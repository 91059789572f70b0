package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crush/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML, after the
config search path and the difficulty preset are applied. Redirect the
output to ~/.arcade/configs/crush.yaml to start a custom config.

Examples:
  crush config
  crush config --defaults > ~/.arcade/configs/crush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults file unchanged")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagConfigDefaults {
		_, err := out.Write(config.GetDefaultYAML("crush"))
		return err
	}

	cfg, err := config.LoadCrush(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyCrushPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if flagConfig == "" {
		fmt.Fprintln(os.Stderr, "# no --config given; search path and embedded defaults applied")
	}
	return nil
}
