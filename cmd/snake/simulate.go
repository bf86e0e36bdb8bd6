package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

var (
	flagTicks uint64
	flagKeys  string
	flagFinal bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless over a key timeline",
	Long: `Runs the game without a terminal or timer and prints a YAML snapshot
after every tick. The same config, seed and key timeline always produce the
same output.

Keys are given as <tick>:<key> pairs; a key is a single character or one of
up, down, left, right, esc, enter. It is pressed just before its tick.

Examples:
  snake simulate --ticks 20
  snake simulate --keys 3:s,6:d,9:w --seed 42
  snake simulate --ticks 500 --keys 2:s --final`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 100, "Maximum number of ticks")
	simulateCmd.Flags().StringVar(&flagKeys, "keys", "", "Key timeline, e.g. 3:w,7:d")
	simulateCmd.Flags().BoolVar(&flagFinal, "final", false, "Print only the final snapshot")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	script, err := parseScript(flagKeys)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	var each func(snake.Snapshot) error
	if !flagFinal {
		each = func(s snake.Snapshot) error {
			return enc.Encode(s)
		}
	}

	logger.Debug("simulating", "ticks", flagTicks, "keys", len(script), "seed", cfg.Seed)
	last, err := runner.Simulate(cfg, flagTicks, script, each)
	if err != nil {
		logger.Error("halt", "tick", last.Tick, "err", err)
		return fmt.Errorf("simulation halted: %w", err)
	}
	if flagFinal {
		if err := enc.Encode(last); err != nil {
			return err
		}
	}

	logger.Info("simulation finished", "tick", last.Tick, "phase", last.Phase, "score", last.Score)
	return nil
}
