package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-tutorial/internal/platform/gui"
	"github.com/vovakirdan/sprite-tutorial/internal/storage"
)

var flagMute bool

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the tutorial in a resizable desktop window with sound.

Controls:
  Arrows/WASD  - Drive
  Left click   - Spawn a car at the pointer
  R            - Reset the score
  Q            - Quit

Examples:
  tutorial window
  tutorial window --mute
  tutorial window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runWindow(_ *cobra.Command, _ []string) error {
	game, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr, "tutorial")
	if err != nil {
		return err
	}
	defer closeLog()

	summary, runErr := gui.Run(game, gui.Options{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
		Mute:     flagMute,
	})
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
	} else {
		defer store.Close()
		if _, err := store.SaveRun(storage.NewRun(summary, localPlayer(), "window")); err != nil {
			logger.Warn("could not save run", "error", err)
		}
	}

	printSummary(summary)
	return nil
}
