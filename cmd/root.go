package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asif-cs/portfolio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Build and serve an interactive personal portfolio",
	Long: `Portfolio turns a single content file describing you, your work and
your projects into a one-page site. Build it to static files, or serve it
live with every visitor's page driven by its own interaction engine.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
