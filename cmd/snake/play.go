package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

const defaultFrontend = "tui"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the game",
	Long: `Start a game on the given frontend (default: tui).

Controls:
  W/A/S/D, arrows  - Steer
  Q/Ctrl+C         - Quit

The snake cannot reverse into itself; a reversing key is ignored.
Running into a wall or into the body ends the game.

Difficulty options:
  easy   - 220ms per move
  normal - 150ms per move
  hard   - 90ms per move

Examples:
  snake play
  snake play vga
  snake play term --difficulty hard
  snake play --config ./my-snake.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}

	// Check if frontend exists
	if !registry.Exists(id) {
		return fmt.Errorf("unknown frontend %q (run 'snake list' to see available frontends)", id)
	}
	frontend, err := registry.Create(id)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Full-screen frontends own the terminal, so logs go to a file
	logOut := os.Stderr
	if frontend.Fullscreen() {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	session, err := runner.NewSession(cfg, logger.With("frontend", id))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	res, err := frontend.Run(ctx, session)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if res.Quit {
		fmt.Printf("Quit after %d ticks. Score: %d\n", res.Ticks, res.Score)
	} else {
		fmt.Printf("You died (%s) after %d ticks. Score: %d\n", res.Cause, res.Ticks, res.Score)
	}
	return nil
}
