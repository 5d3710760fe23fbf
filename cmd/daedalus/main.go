// daedalus is a terminal dungeon crawler built around six procedural
// generation methods.
//
// Usage:
//
//	daedalus methods            - List generation methods
//	daedalus generate <method>  - Generate a dungeon and print it
//	daedalus play <method>      - Crawl a dungeon interactively
//	daedalus menu               - Start the method picker menu
//	daedalus solve <method|id>  - Print the shortest path through a dungeon
//	daedalus runs               - Show recorded runs
//	daedalus serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible maps
//	--db <path>     - Set database path (default: ~/.daedalus/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "daedalus",
	Short: "Daedalus - Procedural dungeon crawling in your terminal",
	Long: `Daedalus generates dungeons with six procedural methods and lets you
crawl them from entrance to exit, in your terminal or over SSH.

Available commands:
  methods  - Show all generation methods
  generate - Generate a dungeon and print it
  play     - Crawl a dungeon interactively
  menu     - Interactive method picker
  solve    - Shortest path through a fresh or saved dungeon
  runs     - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  daedalus methods
  daedalus generate cellular --rows 24 --cols 80
  daedalus play bsp --seed 42
  daedalus menu
  daedalus serve --ssh :2222
  daedalus runs --method perlin`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.daedalus/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(methodsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}
