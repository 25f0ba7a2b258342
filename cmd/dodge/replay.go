package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/replay"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var flagVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Watch a journaled run again",
	Long: `Re-simulates a journaled run from its seed and recorded jumps.
The run must be replayed with the same game config it was played with.

Examples:
  dodge replay 3f2c9a1e-8d4b-4f7a-9c59-2a6f0d1b7e42
  dodge replay 3f2c9a1e-8d4b-4f7a-9c59-2a6f0d1b7e42 --verify`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Re-simulate without a screen and report whether the outcome matches")
}

func runReplay(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.RunByID(args[0])
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'dodge runs --plain' to see journaled runs.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagVerify {
		mustLoadConfig()
		got, err := replay.Verify(run.GameID, run.Log())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Run %s reproduced: score %d, ended by %s after %d ticks.\n", run.ID, got.Score, got.Reason, got.Ticks)
		return
	}

	if err := watchRun(run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watchRun plays a journaled run back on screen.
func watchRun(run storage.Run) error {
	mustLoadConfig()

	game, err := registry.Create(run.GameID)
	if err != nil {
		return err
	}

	log.Debug("replaying run", "id", run.ID, "game", run.GameID, "seed", run.Seed, "ticks", run.Ticks)
	rec := run.Log()
	return tui.Run(game, runtimeConfig(), tui.Options{
		Diagnostics: flagDiagnostics,
		Replay:      &rec,
	})
}
