package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

var solveCmd = &cobra.Command{
	Use:   "solve <method|dungeon-id>",
	Short: "Shortest path through a dungeon",
	Long: `Run the pathfinder and print the map with the shortest
entrance-to-exit route overlaid.

With a method name, a fresh dungeon is generated first (honoring --seed,
--config, and --density). With a numeric ID, a saved dungeon is loaded
from the database. Save dungeons with 'daedalus generate <method> --save';
they are also saved automatically when you escape one in play mode.

Exits nonzero when no path exists.

Examples:
  daedalus solve cellular --seed 42
  daedalus solve 3
  daedalus solve 3 --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generation config YAML")
	solveCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runSolve(cmd *cobra.Command, args []string) {
	if id, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		solveSaved(id)
		return
	}

	method, err := dungeon.ParseMethod(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is neither a method nor a dungeon id\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'daedalus methods' to see available methods.")
		os.Exit(1)
	}
	solveFresh(method)
}

// solveFresh generates a dungeon and solves it.
func solveFresh(method dungeon.Method) {
	gen, rows, cols, err := buildGenerator(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d, err := dungeon.New(rows, cols, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := d.GenerateWith(gen); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating dungeon: %v\n", err)
		os.Exit(1)
	}

	path, err := d.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: no path: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s  %dx%d  seed %d\n\n", gen.Title(), rows, cols, seed)
	fmt.Println(renderASCII(d, path))
	fmt.Printf("\nShortest path: %d cells\n", len(path))
}

// solveSaved loads a dungeon from the database and solves it.
func solveSaved(id int64) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.DungeonByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no dungeon with id %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'daedalus runs' to see saved dungeons.")
		os.Exit(1)
	}

	d, err := store.LoadDungeon(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path, err := d.Solve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: dungeon #%d is unsolvable: %v\n", id, err)
		os.Exit(1)
	}

	fmt.Printf("Dungeon #%d  %s  %dx%d  seed %d\n\n", rec.ID, rec.Method, rec.Rows, rec.Cols, rec.Seed)
	fmt.Println(renderASCII(d, path))
	fmt.Printf("\nShortest path: %d cells\n", len(path))
}
