package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/db"
	"github.com/asif-cs/portfolio/internal/interact"
	"github.com/asif-cs/portfolio/internal/server"
	"github.com/asif-cs/portfolio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio live",
	Long: `Starts a local server where every page view runs its own interaction
engine over a websocket. Theme choices are remembered per browser. With
--watch the content file and assets are reloaded on change.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (defaults to the config port)")
	serveCmd.Flags().Bool("watch", false, "reload content and assets on change")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("cors-all", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		cfg.Watch = true
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

	database, err := db.Open(cfg.PrefsDB)
	if err != nil {
		return fmt.Errorf("opening preferences database: %w", err)
	}
	defer database.Close()

	allowAll, _ := cmd.Flags().GetBool("cors-all")
	srv := server.New(server.Config{
		Port:         cfg.Port,
		ContentFile:  cfg.ContentFile,
		AssetsDir:    cfg.AssetsDir,
		DefaultTheme: interact.ParseTheme(string(cfg.DefaultTheme)),
		AllowAll:     allowAll,
		Watch:        cfg.Watch,
	}, database, g, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Printf("Serving at %s (press Ctrl+C to stop)\n", url)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go func() {
			time.Sleep(500 * time.Millisecond)
			site.OpenBrowser(url)
		}()
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	log.Info("server stopped", zap.String("db", database.Path()))
	return nil
}
