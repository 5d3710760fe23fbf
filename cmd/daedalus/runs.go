package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/daedalus-crawl/daedalus/internal/storage"
)

var (
	flagRunsMethod string
	flagRunsLimit  int
	flagRunsStats  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display recent runs, newest first. Runs are recorded each time you
escape a dungeon in play mode.

Examples:
  daedalus runs
  daedalus runs --method cellular
  daedalus runs --limit 50
  daedalus runs --stats`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsMethod, "method", "", "Only show runs for this generation method")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsStats, "stats", false, "Show per-method aggregates instead of individual runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsStats {
		printStats(store)
		return
	}

	var runs []storage.RunRecord
	if flagRunsMethod != "" {
		runs, err = store.RunsByMethod(flagRunsMethod, flagRunsLimit)
	} else {
		runs, err = store.RecentRuns(flagRunsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Escape a dungeon with 'daedalus play <method>' to record the first one!")
		return
	}

	fmt.Printf("  %-5s  %-10s  %-6s  %-6s  %-5s  %s\n", "Map", "Method", "Steps", "Best", "Time", "Date")
	fmt.Printf("  %-5s  %-10s  %-6s  %-6s  %-5s  %s\n", "---", "------", "-----", "----", "----", "----")

	for _, r := range runs {
		steps := fmt.Sprintf("%d", r.Steps)
		if !r.Completed {
			steps += "*"
		}
		fmt.Printf("  #%-4d  %-10s  %-6s  %-6d  %-4ds  %s\n",
			r.DungeonID, r.Method, steps, r.PathLen, r.Duration,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) {
	stats, err := store.StatsByMethod()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	methods := make([]string, 0, len(stats))
	for m := range stats {
		methods = append(methods, m)
	}
	sort.Strings(methods)

	fmt.Printf("  %-10s  %-5s  %-9s  %-5s  %s\n", "Method", "Runs", "Escaped", "Best", "Avg steps")
	fmt.Printf("  %-10s  %-5s  %-9s  %-5s  %s\n", "------", "----", "-------", "----", "---------")

	for _, m := range methods {
		s := stats[m]
		fmt.Printf("  %-10s  %-5d  %-9d  %-5d  %.1f\n",
			s.Method, s.RunCount, s.Completed, s.BestSteps, s.AvgSteps)
	}
}
