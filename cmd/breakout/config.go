package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var (
	flagConfigFormat   string
	flagConfigCheck    bool
	flagConfigDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file search and the difficulty preset have been applied.

Search order: --config, ~/.breakout/breakout.yaml (or .toml),
./configs/breakout.yaml, built-in defaults.

Examples:
  breakout config
  breakout config --format toml > ~/.breakout/breakout.toml
  breakout config --check --config ./my.yaml
  breakout config --defaults`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigCheck, "check", false, "Only validate the configuration")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	setup, err := loadSetup()
	if err != nil {
		return err
	}

	if flagConfigCheck {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ok (%s preset)\n", setup.source, setup.preset)
		return nil
	}

	data, err := config.Marshal(setup.cfg, flagConfigFormat)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s, difficulty: %s\n", setup.source, setup.preset)
	_, err = out.Write(data)
	return err
}
