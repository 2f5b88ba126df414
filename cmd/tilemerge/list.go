package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant with its size.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "ID", "Size", "Title")
	fmt.Printf("  %-*s  %-4s  %s\n", maxIDLen, "--", "----", "-----")

	for _, v := range variants {
		marker := ""
		if v.ID == appCfg.Game.Variant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-4s  %s%s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", v.Size, v.Size), v.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'tilemerge play <id>' to play a variant.")
}
