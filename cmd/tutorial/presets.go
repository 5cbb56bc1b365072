package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sprite-tutorial/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List sprite and sound presets",
	Long: `Shows every sprite and sound preset that can be named in the game config.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := registry.ListPresets()
	sounds := registry.ListSounds()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}
	for _, s := range sounds {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Println("Sprite presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxIDLen, "ID", "Collider", "Glyph", "Title")
	fmt.Printf("  %-*s  %-9s  %-5s  %s\n", maxIDLen, "--", "--------", "-----", "-----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %-9s  %-5c  %s\n", maxIDLen, p.ID,
			fmt.Sprintf("%gx%g", p.Width, p.Height), p.Glyph, p.Title)
	}

	fmt.Println()
	fmt.Println("Sound presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Kind", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----")
	for _, s := range sounds {
		kind := "sfx"
		if s.Kind == registry.SoundMusic {
			kind = "music"
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, s.ID, kind, s.Title)
	}
}
