package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
	"github.com/vovakirdan/tui-dodge/internal/registry"
	"github.com/vovakirdan/tui-dodge/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Browse the journal of finished runs",
	Long: `Lists finished runs, newest first. Interactive by default: tab cycles
the variant filter and enter replays the selected run. Use --plain to print
a table instead.

Examples:
  dodge runs
  dodge runs dodge_classic
  dodge runs --plain --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the runs instead of opening the browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'dodge list' to see available variants.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		if err := printRuns(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	width, height := terminalSize()
	selected, err := tui.RunJournal(store, gameID, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == nil {
		return
	}
	if err := watchRun(*selected); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printRuns(store *storage.Store, gameID string) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}
	total, err := store.CountRuns(gameID)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodge play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-36s  %-14s  %5s  %-14s  %8s  %s\n", "ID", "Variant", "Score", "Ended by", "Time", "When")
	fmt.Printf("  %-36s  %-14s  %5s  %-14s  %8s  %s\n", "--", "-------", "-----", "--------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-14s  %5d  %-14s  %8s  %s\n",
			r.ID, r.GameID, r.Score, r.Reason,
			r.Duration.Round(100*time.Millisecond), humanize.Time(r.CreatedAt))
	}

	fmt.Println()
	fmt.Printf("Showing %d of %s runs. Run 'dodge replay <id>' to watch one again.\n",
		len(runs), humanize.Comma(int64(total)))
	return nil
}
