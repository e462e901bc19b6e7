// mia runs Mia's Adventure, a story platformer, in the terminal.
//
// Usage:
//
//	mia play               - Play locally
//	mia levels             - List the level table
//	mia sim                - Run a scripted session headless
//	mia serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--levels <path> - Level table YAML (default: built-in)
//	--config <path> - Physics and timing YAML
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLevels     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mia",
	Short: "Mia's Adventure - a story platformer for your terminal",
	Long: `Mia's Adventure is a small story platformer: run, jump, answer the
phone, find the key and don't get caught.

Available commands:
  play     - Play in this terminal
  levels   - Show the level table
  sim      - Run a scripted session without a screen
  serve    - Start SSH server for remote play

Examples:
  mia play
  mia play --level 9
  mia play --levels ./levels.yaml --watch
  mia sim --ticks 600 --input run.yaml
  mia serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Path to level table YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGame reads the level table and the tuning named by the global flags.
func loadGame() (*levels.Table, config.PlatformerConfig, error) {
	table, err := levels.Load(flagLevels)
	if err != nil {
		return nil, config.PlatformerConfig{}, err
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return nil, config.PlatformerConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, config.PlatformerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	return table, cfg, nil
}

// openLogger returns a logger writing to path, or a silent one when path is
// empty. The returned closer releases the file.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mia",
		Level:           lvl,
	})
	return logger, f, nil
}
