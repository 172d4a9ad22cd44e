package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/asif-cs/portfolio/internal/config"
	"github.com/asif-cs/portfolio/internal/content"
	"github.com/asif-cs/portfolio/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger; --verbose forces debug output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:      level,
		Production: cfg.Production,
		File:       cfg.LogFile,
	})
}

// loadContent reads the configured content file.
func loadContent(cfg *config.Config) (*content.Graph, error) {
	g, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun `portfolio init` to create a starter content file", err)
	}
	return g, nil
}
