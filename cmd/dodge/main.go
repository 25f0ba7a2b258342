// dodge is an endless terminal arcade game: jump to keep the player in the
// world and clear of the obstacles scrolling in from the right.
//
// Usage:
//
//	dodge play [variant]     - Play (default variant: dodge)
//	dodge list               - List game variants
//	dodge runs [variant]     - Browse the run journal
//	dodge replay <run-id>    - Watch a journaled run again
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set journal path (default: ~/.arcade/dodge.db)
//	--config <path>       - Use a custom game config YAML
//	--diagnostics         - Show the FPS overlay
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagDiagnostics bool
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - an endless jump-and-dodge game for your terminal",
	Long: `Dodge drops you into a 640x480 world under gravity. Jump to stay in
the world and clear of the obstacles scrolling in from the right. Every
second survived scores a point.

Available commands:
  play     - Play a variant
  list     - Show all variants
  runs     - Browse the journal of finished runs
  replay   - Watch a journaled run again

Examples:
  dodge play
  dodge play dodge_classic --seed 42
  dodge runs --plain
  dodge replay 3f2c9a1e-...`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogging()
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/dodge.db", "Path to the run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDiagnostics, "diagnostics", false, "Show the FPS overlay")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded while the game is on screen otherwise)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
