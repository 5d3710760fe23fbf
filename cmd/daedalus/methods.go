package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daedalus-crawl/daedalus/internal/dungeon"
)

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List all generation methods",
	Long:  `Shows the procedural generation methods available for carving dungeons.`,
	Run:   runMethods,
}

func runMethods(cmd *cobra.Command, args []string) {
	gens := dungeon.Generators()

	if len(gens) == 0 {
		fmt.Println("No generation methods available.")
		return
	}

	fmt.Println("Available methods:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range gens {
		if len(g.Method.String()) > maxIDLen {
			maxIDLen = len(g.Method.String())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print methods
	for _, g := range gens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.Method, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'daedalus play <id>' to crawl a dungeon.")
}
