package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/magnet-maze/internal/platform/tui"
	"github.com/vovakirdan/magnet-maze/internal/storage"
)

var (
	flagHistoryProfile string
	flagHistoryPlain   bool
	flagHistoryBest    bool
	flagHistoryLimit   int
	flagHistoryClear   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse run history",
	Long: `Browse finished runs for a profile.

Opens an interactive browser when stdout is a terminal. Use --plain to
print a table instead.

Examples:
  magnets history
  magnets history --plain --best
  magnets history --profile alice --limit 5 --plain
  magnets history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryProfile, "profile", storage.DefaultProfile, "Progress profile")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print instead of opening the browser")
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "List best wins instead of recent runs")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Rows to print")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the profile's run history")
}

func runHistory(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(flagHistoryProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Run history cleared for %s\n", flagHistoryProfile)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, flagHistoryProfile, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	printHistory(store)
}

func printHistory(store *storage.Store) {
	var (
		runs  []storage.Run
		err   error
		title = "Recent Runs"
	)
	if flagHistoryBest {
		title = "Best Runs"
		runs, err = store.BestRuns(flagHistoryProfile, flagHistoryLimit)
	} else {
		runs, err = store.RecentRuns(flagHistoryProfile, flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", title, flagHistoryProfile)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'magnets play' to record the first one!")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-7s  %-7s  %-21s  %s\n", "Level", "Result", "Time", "Magnets", "Reason", "Date")
	fmt.Printf("  %-5s  %-8s  %-7s  %-7s  %-21s  %s\n", "-----", "------", "----", "-------", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-8s  %-7.1f  %-7d  %-21s  %s\n",
			r.Level, r.Outcome, r.TimeLeft, r.MagnetsUsed, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(flagHistoryProfile)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best level: %d  Avg time left: %.1fs\n",
			st.Runs, st.Wins, st.BestLevel, st.AvgTimeLeft)
	}
}
