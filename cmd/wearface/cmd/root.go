// Package cmd implements the wearface CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var flagConfigDir string

var rootCmd = &cobra.Command{
	Use:   "wearface",
	Short: "wearface - a polar digital watch face",
	Long: `wearface renders a digital watch face whose hour, minute and second
glyphs orbit a circular dial like analog hands.

"wearface run" shows the face live in the terminal; "wearface render"
rasterizes a single frame to a PNG file. Both read the optional
wearface.yaml configuration and theme packs from the config directory.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", ".", "Directory holding wearface.yaml and themes/")
}
