// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/moosethebrown/mission-net-bridge/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a logger writing to stdout and, when cfg names a file,
// to a size-rotated log file as well. An invalid level falls back to info.
func NewLogger(level string, cfg *config.LogConfig) *zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		fmt.Printf("Invalid logLevel: %s, error: %s\n", level, err.Error())
		logLevel = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg != nil && cfg.File != "" {
		out = zerolog.MultiLevelWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	logger := zerolog.New(out).With().Timestamp().Logger().Level(logLevel)
	return &logger
}
