package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
	"github.com/vovakirdan/sprite-tutorial/internal/platform/tui"
	"github.com/vovakirdan/sprite-tutorial/internal/storage"
)

var flagBell bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the tutorial in the terminal.

Controls:
  Arrows/WASD  - Drive
  Mouse click  - Spawn a car at the pointer
  R            - Reset the score
  Q            - Quit
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Force quit

Terminals do not report key releases, so a key counts as held for a short
moment after its last repeat (terminal.hold_window in the config).

Examples:
  tutorial play
  tutorial play --bell
  tutorial play --seed 42 --log-file /tmp/tutorial.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen unless they go to a file
	logger, closeLog, err := newLogger(io.Discard, "tutorial")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		CellW:      game.Terminal.CellWidth,
		CellH:      game.Terminal.CellHeight,
		HoldWindow: game.Terminal.HoldWindow,
		Bell:       game.Terminal.Bell || flagBell,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	summary, runErr := tui.Run(cfg, game, tui.Options{
		Store:  store,
		Logger: logger,
		Player: localPlayer(),
		Host:   "terminal",
		Bell:   os.Stdout,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	printSummary(summary)
	return nil
}
