// snake is a bounded-memory snake game for the terminal.
//
// Usage:
//
//	snake list                  - List available frontends
//	snake play [frontend]       - Play (default frontend: tui)
//	snake simulate              - Run headless and print per-tick snapshots
//	snake config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--seed <value>        - Food RNG seed (overrides the config file)
//	--difficulty <name>   - Speed preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log file for full-screen frontends (default: ~/.snake/snake.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-snake/internal/platform/headless"
	_ "github.com/vovakirdan/tui-snake/internal/platform/term"
	_ "github.com/vovakirdan/tui-snake/internal/platform/tui"
	_ "github.com/vovakirdan/tui-snake/internal/platform/vga"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       uint64
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a fixed-memory snake game in your terminal",
	Long: `Snake runs a deterministic snake engine whose state lives in
fixed-size buffers allocated once at start. The game loop is paced by polling
a tick counter fed by a timer goroutine, and keys arrive through a single
latest-key cell written by the frontend.

Available commands:
  list      - Show all frontends
  play      - Play the game
  simulate  - Headless run over a scripted key timeline
  config    - Print the effective configuration

Examples:
  snake play
  snake play vga --difficulty hard
  snake simulate --ticks 40 --keys 3:s,6:d
  snake config --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "Food RNG seed (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.snake/snake.log", "Log file for full-screen frontends")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}
