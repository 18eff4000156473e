package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/foodee/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "foodee",
	Short: "Render the Foodee restaurant site from its CMS content document",
	Long: `Foodee fills the restaurant landing page with the content published by
the CMS: hero slides, about, quotes, announcements, products, menu, events
and contact details. Editors can stage a preview document that takes
precedence over the published one.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

