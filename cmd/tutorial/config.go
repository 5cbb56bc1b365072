package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-tutorial/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game config as YAML. Save it to
~/` + config.AppDir + `/configs/tutorial.yaml or ./configs/tutorial.yaml to
customise the game, or pass it with --config.

With --check, load the config the game would use and report whether it is valid.

Examples:
  tutorial config > tutorial.yaml
  tutorial config --check --config ./tutorial.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the active config instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagCheck {
		fmt.Print(string(config.GetDefaultYAML()))
		return nil
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Config OK: %q, player %s at speed %g, targets %s every %s\n",
		cfg.Window.Title, cfg.Player.Preset, cfg.Player.Speed,
		cfg.Targets.Preset, cfg.Targets.SpawnInterval)
	return nil
}
