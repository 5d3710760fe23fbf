package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daedalus-crawl/daedalus/internal/config"
	"github.com/daedalus-crawl/daedalus/internal/dungeon"
	"github.com/daedalus-crawl/daedalus/internal/storage"
)

var (
	flagGenRows  int
	flagGenCols  int
	flagGenSolve bool
	flagGenSave  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <method>",
	Short: "Generate a dungeon and print it",
	Long: `Generate a dungeon with the given method and print it to stdout.

Legend:
  #  wall        <  entrance
  ·  floor       >  exit
  *  shortest path (with --solve)

Examples:
  daedalus generate naive
  daedalus generate cellular --rows 30 --cols 100
  daedalus generate bsp --seed 42 --solve
  daedalus generate perlin --density dense --save`,
	Args: cobra.ExactArgs(1),
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagGenRows, "rows", 0, "Map rows (0 = config default)")
	generateCmd.Flags().IntVar(&flagGenCols, "cols", 0, "Map columns (0 = config default)")
	generateCmd.Flags().BoolVar(&flagGenSolve, "solve", false, "Overlay the shortest path")
	generateCmd.Flags().BoolVar(&flagGenSave, "save", false, "Save the dungeon to the database")
	generateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generation config YAML")
	generateCmd.Flags().StringVar(&flagDensity, "density", "", "Density preset: sparse, normal, dense")
}

func runGenerate(cmd *cobra.Command, args []string) {
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

	var path []dungeon.Coord
	if flagGenSolve {
		path, err = d.Solve()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: no path: %v\n", err)
		}
	}

	fmt.Printf("%s  %dx%d  seed %d\n\n", gen.Title(), rows, cols, seed)
	fmt.Println(renderASCII(d, path))
	if len(path) > 0 {
		fmt.Printf("\nShortest path: %d cells\n", len(path))
	}

	if flagGenSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.SaveDungeon(d, method)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving dungeon: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nSaved as dungeon #%d\n", id)
	}
}

// buildGenerator loads the generation config, applies the density preset,
// and returns a configured generator plus the map dimensions.
func buildGenerator(method dungeon.Method) (dungeon.Generator, int, int, error) {
	cfg, err := config.LoadDungeon(flagConfig)
	if err != nil {
		return nil, 0, 0, err
	}

	preset, err := config.ParseDensityPreset(flagDensity)
	if err != nil {
		return nil, 0, 0, err
	}
	config.ApplyDensityPreset(&cfg, preset)

	gen, err := cfg.GeneratorFor(method)
	if err != nil {
		return nil, 0, 0, err
	}

	rows, cols := cfg.Map.Rows, cfg.Map.Cols
	if flagGenRows > 0 {
		rows = flagGenRows
	}
	if flagGenCols > 0 {
		cols = flagGenCols
	}
	return gen, rows, cols, nil
}

// renderASCII draws the dungeon as plain text, optionally overlaying a path.
func renderASCII(d *dungeon.Dungeon, path []dungeon.Coord) string {
	onPath := make(map[dungeon.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var sb strings.Builder
	sb.Grow((d.Cols() + 1) * d.Rows())
	for i := 0; i < d.Rows(); i++ {
		if i > 0 {
			sb.WriteRune('\n')
		}
		for j := 0; j < d.Cols(); j++ {
			tile, err := d.TileAt(i, j)
			if err != nil {
				continue
			}
			switch {
			case tile == dungeon.Floor && onPath[dungeon.At(i, j)]:
				sb.WriteRune('*')
			case tile == dungeon.Wall:
				sb.WriteRune('#')
			case tile == dungeon.Entrance:
				sb.WriteRune('<')
			case tile == dungeon.Exit:
				sb.WriteRune('>')
			default:
				sb.WriteRune('·')
			}
		}
	}
	return sb.String()
}
