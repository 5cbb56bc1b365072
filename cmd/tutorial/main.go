// tutorial is a small 2D driving game: steer a car, collect the cars that
// appear on a timer or where you click, and chase a high score.
//
// Usage:
//
//	tutorial play            - Play in the terminal
//	tutorial window          - Play in a desktop window
//	tutorial serve           - Start SSH server for remote play
//	tutorial scores          - Show the run history
//	tutorial presets         - List sprite and sound presets
//	tutorial config          - Print the default game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.sprite-tutorial/runs.db)
//	--config <path>       - Use a custom game config YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
	"github.com/vovakirdan/sprite-tutorial/internal/games/tutorial"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tutorial",
	Short: "Sprite Tutorial - drive, collect, score",
	Long: `Sprite Tutorial is a small 2D game. Drive the blue car with the arrow
keys or WASD and run into the yellow cars to score. A new car appears every
two seconds and wherever you click. R resets the score, Q quits.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  presets  - List sprite and sound presets
  config   - Print the default game config

Examples:
  tutorial play
  tutorial play --seed 42 --config ./my-tutorial.yaml
  tutorial window --log-level debug
  tutorial serve --ssh :2222
  tutorial scores --browse`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return validateGlobalFlags()
	},
}

// validateGlobalFlags rejects flag values no host can run with.
func validateGlobalFlags() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback. The returned close function releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the tutorial tuning honouring --config.
func loadGameConfig() (config.TutorialConfig, error) {
	cfg, err := config.LoadTutorial(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config: %w", err)
	}
	return cfg, nil
}

// localPlayer names the local user for the run history.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// printSummary reports a finished run on stdout.
func printSummary(s tutorial.RunSummary) {
	fmt.Printf("Final score: %d   High score: %d\n", s.Score, s.HighScore)
	fmt.Printf("Cars collected: %d of %d   Resets: %d   Time: %s\n",
		s.TargetsCollected, s.TargetsSpawned, s.Resets, s.Duration.Round(time.Second))
}
