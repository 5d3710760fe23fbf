package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daedalus-crawl/daedalus/internal/core"
	"github.com/daedalus-crawl/daedalus/internal/crawl"
	"github.com/daedalus-crawl/daedalus/internal/platform/tui"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the crawler with a method picker menu",
	Long: `Start the crawler in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a method.
After a crawl ends, you return to the menu to go again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select method
  Tab          - Run history
  Q            - Quit

Examples:
  daedalus menu
  daedalus menu --fps 60
  daedalus menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generation config YAML")
	menuCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants the run history
		if menuResult.WantsRunboard {
			goBack, rbErr := tui.RunRunboard(store, cfg.ScreenW, cfg.ScreenH)
			if rbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", rbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the run history
		}

		if !menuResult.Selected {
			break
		}

		gen, rows, cols, genErr := buildGenerator(menuResult.Method)
		if genErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", genErr)
			continue
		}

		game := crawl.New(rows, cols, menuResult.Method)
		game.SetGenerator(gen)

		// Fresh seed for each crawl
		cfg.Seed = time.Now().UnixNano()

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
