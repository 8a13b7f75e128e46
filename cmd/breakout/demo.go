package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/autopilot"
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/clock"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/runner"
)

var (
	flagScript     string
	flagHeadless   bool
	flagRealtime   bool
	flagMaxTicks   uint64
	flagDumpScript bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play",
	Long: `Run a game driven by a Lua script instead of the keyboard.

A script defines a global function intent(s). The table s holds
ball_x, ball_y, ball_dx, ball_dy, ball_r, paddle_x, paddle_w, arena_w,
arena_h, phase, score, total and tick. The function returns a table
with optional boolean fields left, right and start.

Without --script the built-in tracking script is used; --dump-script
prints it as a starting point.

Examples:
  breakout demo
  breakout demo --script ./lazy.lua
  breakout demo --headless --seed 7
  breakout demo --headless --realtime --max-ticks 3000`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagScript, "script", "", "Lua autopilot script (default: built-in tracker)")
	demoCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Run without a terminal UI and print the result")
	demoCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "With --headless, tick at the configured rate instead of flat out")
	demoCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 200000, "With --headless, stop after this many ticks (0 = no limit)")
	demoCmd.Flags().BoolVar(&flagDumpScript, "dump-script", false, "Print the built-in script and exit")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	if flagDumpScript {
		fmt.Print(autopilot.DefaultScript())
		return nil
	}

	setup, err := loadSetup()
	if err != nil {
		return err
	}

	// Headless runs own no terminal, so logs may go to stderr
	fallback := io.Writer(io.Discard)
	if flagHeadless {
		fallback = os.Stderr
	}
	out, closeLog, err := logOutput(fallback)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := newLogger(out, setup.cfg)
	if err != nil {
		return err
	}

	pilot, err := autopilot.Load(flagScript, logger)
	if err != nil {
		return err
	}
	defer pilot.Close()

	if !flagHeadless {
		width, height := terminalSize()
		return tui.Run(tui.Options{
			Config: setup.cfg,
			Preset: setup.preset,
			Seed:   flagSeed,
			Logger: logger,
			Width:  width,
			Height: height,
			Pilot:  pilot,
		})
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, err := breakout.NewSession(cmd.Context(), setup.cfg,
		breakout.WithSeed(seed),
		breakout.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	r := runner.New(session, pilot,
		runner.WithMaxTicks(flagMaxTicks),
		runner.WithLogger(logger),
		runner.WithTicker(clock.New(session.TickInterval())),
	)

	started := time.Now()
	var res breakout.StepResult
	if flagRealtime {
		res, err = r.Play(cmd.Context())
	} else {
		res, err = r.Simulate(cmd.Context())
	}
	if err != nil && !errors.Is(err, runner.ErrTickLimit) {
		return err
	}

	outcome := res.Outcome.String()
	if errors.Is(err, runner.ErrTickLimit) {
		outcome = "tick limit"
	}

	fmt.Printf("Script:   %s\n", pilot.Name())
	fmt.Printf("Seed:     %d\n", seed)
	fmt.Printf("Outcome:  %s\n", outcome)
	fmt.Printf("Score:    %d/%d\n", res.Score, res.Message.Total)
	fmt.Printf("Ticks:    %d (%s simulated, %s wall)\n",
		res.Tick,
		time.Duration(res.Tick)*session.TickInterval(),
		time.Since(started).Round(time.Millisecond),
	)
	return nil
}
