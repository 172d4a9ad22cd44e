package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/asif-cs/portfolio/internal/config"
	"github.com/asif-cs/portfolio/internal/progress"
	"github.com/asif-cs/portfolio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static site",
	Long:  `Renders the content file into index.html with its initial interactive state, writes the stylesheet and client script, and copies the assets directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "override output directory")
	buildCmd.Flags().String("theme", "", "default theme for visitors without a preference (light or dark)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		cfg.DefaultTheme = config.Theme(theme)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	g, err := loadContent(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gen := site.NewGenerator(cfg, log, progress.NewReporter())
	res, err := gen.Generate(ctx, g)
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s (%d files, %d of %d assets copied)\n",
		cfg.OutputDir, len(res.Files), res.AssetsCopied, res.AssetsTotal)
	for _, ref := range res.MissingMedia {
		fmt.Fprintf(os.Stderr, "Warning: %s is referenced but not found in %s\n", ref, cfg.AssetsDir)
	}
	return nil
}
