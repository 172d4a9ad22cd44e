// Package logging builds the process logger.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options select the logger's level, format and optional log file.
type Options struct {
	Level      string // debug, info, warn or error; empty means info
	Production bool   // JSON on the console instead of coloured text
	File       string // rotated JSON log file; empty disables it
}

// New builds a logger writing to stderr and, when configured, to a rotated
// file. Callers should Sync it before exit.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return nil, fmt.Errorf("parsing log level %q: %w", opts.Level, err)
		}
	}

	jsonEncoder := zapcore.NewJSONEncoder(encoderConfig())

	var consoleEncoder zapcore.Encoder
	if opts.Production {
		consoleEncoder = jsonEncoder
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(cfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.MessageKey = "message"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
