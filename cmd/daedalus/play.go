package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daedalus-crawl/daedalus/internal/core"
	"github.com/daedalus-crawl/daedalus/internal/crawl"
	"github.com/daedalus-crawl/daedalus/internal/dungeon"
	"github.com/daedalus-crawl/daedalus/internal/platform/tui"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

var (
	flagConfig  string
	flagDensity string
)

var playCmd = &cobra.Command{
	Use:   "play <method>",
	Short: "Crawl a dungeon",
	Long: `Generate a dungeon with the given method and crawl it from the
entrance (<) to the exit (>).

Controls:
  WASD/Arrows/hjkl - Move
  T                - Toggle shortest-path overlay
  G                - Generate a new map
  P                - Pause
  R                - Restart (after escaping)
  Q/Ctrl+C         - Quit

Density options:
  sparse - tight corridors, little open floor
  normal - config values as loaded
  dense  - wide open caverns, many rooms

Examples:
  daedalus play naive
  daedalus play cellular --density sparse
  daedalus play bsp --seed 42
  daedalus play perlin --config ./my-dungeon.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generation config YAML")
	playCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runPlay(cmd *cobra.Command, args []string) {
	method, err := dungeon.ParseMethod(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown method %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'daedalus methods' to see available methods.")
		os.Exit(1)
	}

	gen, rows, cols, err := buildGenerator(method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := crawl.New(rows, cols, method)
	game.SetGenerator(gen)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
