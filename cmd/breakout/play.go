package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start a game in the terminal.

Controls:
  ←/a, →/d   - Move paddle
  Space      - Start / restart
  S          - High scores (between games)
  ?          - More help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wide paddle, small ball
  normal - Default geometry
  hard   - Narrow paddle, big ball

Examples:
  breakout play                      # pick a difficulty from a menu
  breakout play --difficulty easy
  breakout play --config ./my-breakout.toml
  breakout play --log-file ./breakout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	setup, err := loadSetup()
	if err != nil {
		return err
	}

	// The UI owns the terminal, so logs only go to --log-file
	out, closeLog, err := logOutput(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, setup.cfg)
	if err != nil {
		return err
	}

	store := openStore(cmd.Context(), logger)
	if store != nil {
		defer store.Close()
	}

	width, height := terminalSize()

	if flagDifficulty == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		preset, ok, err := tui.RunDifficultyMenu(store, width, height)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if setup, err = setupFor(string(preset)); err != nil {
			return err
		}
	}

	logger.Info("starting game", "config", setup.source, "difficulty", setup.preset, "size", fmt.Sprintf("%dx%d", width, height))

	return tui.Run(tui.Options{
		Config: setup.cfg,
		Preset: setup.preset,
		Seed:   flagSeed,
		Scores: store,
		Logger: logger,
		Width:  width,
		Height: height,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
