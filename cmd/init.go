package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asif-cs/portfolio/internal/config"
	"github.com/asif-cs/portfolio/internal/content"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a portfolio with an interactive wizard",
	Long:  `Runs an interactive wizard that writes a .portfolio.yml config file and, if it does not exist yet, a starter content file to edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, starter, err := config.RunWizard(cfgFile)
		if err != nil {
			return err
		}

		if _, err := os.Stat(cfg.ContentFile); err == nil {
			fmt.Printf("Keeping existing content file %s\n", cfg.ContentFile)
			return nil
		}
		g := content.Starter(starter.Name, starter.Title, starter.Email, time.Now())
		if err := content.Save(cfg.ContentFile, g); err != nil {
			return err
		}
		fmt.Printf("Starter content written to %s\nEdit it, then run `portfolio serve` or `portfolio build`.\n", cfg.ContentFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
