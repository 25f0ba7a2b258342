package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

const defaultVariant = "dodge"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play the game",
	Long: `Start playing. The run begins on the first jump.

Controls:
  Space/Up/W - Jump (also starts and restarts)
  P/Esc      - Pause
  F          - Toggle the FPS overlay
  Q/Ctrl+C   - Quit

Variants:
  dodge          - After a crash, wait for the field to clear, then jump to play again
  dodge_classic  - Start over the moment you crash

Examples:
  dodge play
  dodge play dodge_classic
  dodge play --seed 42 --fps 30
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultVariant
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available variants.")
		os.Exit(1)
	}

	gameCfg := mustLoadConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open the journal; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	opts := tui.Options{
		Store:       store,
		Diagnostics: flagDiagnostics || gameCfg.Diagnostics,
	}
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// mustLoadConfig loads and validates the game config and hands it to the
// game package. An invalid config exits with status 1.
func mustLoadConfig() config.DodgeConfig {
	cfg, err := config.LoadDodge(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dodge.SetConfig(cfg)
	log.Debug("config loaded",
		"path", flagConfig,
		"pool", cfg.Obstacles.PoolSize,
		"spawn", cfg.SpawnInterval(),
		"lifetime", cfg.MaxObstacleLifetime())
	return cfg
}

// runtimeConfig builds the runtime from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
