package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/platform/tui"
)

var (
	flagLevel    int
	flagWatch    bool
	flagLogFile  string
	flagLogLevel string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game, on the title menu or directly on a level.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  E                - Answer phone, use door, look around
  Enter            - Menu select, skip dialogue line
  1-9              - Jump to level
  R                - Restart level
  Esc              - Back to menu
  M                - Mute
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options (chaser speed and patience):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  mia play
  mia play --level 7 --difficulty hard
  mia play --levels ./levels.yaml --watch --log-file mia.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on, 1-based (0 = title menu)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the --levels file when it changes")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	playCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func runPlay(_ *cobra.Command, _ []string) {
	table, cfg, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagLevel < 0 || flagLevel > table.Len() {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range (1-%d)\n", flagLevel, table.Len())
		os.Exit(1)
	}
	if flagWatch && flagLevels == "" {
		fmt.Fprintln(os.Stderr, "Error: --watch needs a --levels file")
		os.Exit(1)
	}

	logger, logFile, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Table:  table,
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		StartLevel: flagLevel - 1,
		Logger:     logger,
	}
	if flagWatch {
		opts.WatchPath = flagLevels
	}

	runErr := tui.Run(opts)

	// Close the log before potential exit
	//nolint:errcheck // Best-effort close
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
