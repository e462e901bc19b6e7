package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mias-adventure/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Lists every level of the table in play order, with the features it uses.
Use --levels to check a custom table before playing it.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	table, err := levels.Load(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := table.Source
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("Levels (%s):\n\n", source)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range table.Levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-3s  %-*s  %s\n", "#", maxNameLen, "Name", "Features")
	fmt.Printf("  %-3s  %-*s  %s\n", "-", maxNameLen, "----", "--------")

	for i, l := range table.Levels {
		fmt.Printf("  %-3d  %-*s  %s\n", i+1, maxNameLen, l.Name, strings.Join(features(l), ", "))
	}

	fmt.Println()
	fmt.Printf("%d scripts, %d cutscene phases.\n", len(table.Scripts), len(table.Cutscene))
	fmt.Println("Run 'mia play --level <#>' to start on a level.")
}

// features summarizes what a level uses.
func features(l levels.Level) []string {
	var fs []string
	if l.HasStage2() {
		fs = append(fs, "2 stages")
	}
	if l.HasKey {
		fs = append(fs, "key")
	}
	if l.HasDoor {
		fs = append(fs, "door")
	}
	if l.Call != "" {
		fs = append(fs, "call:"+l.Call)
	}
	if len(l.Beats) > 0 {
		fs = append(fs, fmt.Sprintf("%d beats", len(l.Beats)))
	}
	if len(l.Peeks) > 0 {
		fs = append(fs, fmt.Sprintf("%d peeks", len(l.Peeks)))
	}
	if l.Chase != nil {
		fs = append(fs, "chase")
	}
	if l.TriggerCutscene {
		fs = append(fs, "cutscene")
	}
	if len(fs) == 0 {
		fs = append(fs, "-")
	}
	return fs
}
