// Package logging provides zap logger construction from presets
// or a JSON configuration file.
package logging

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds a [zap.Logger] from a preset name or a path to
// a JSON configuration file.
//
// Available presets: console, console-nocolor, console-notime, systemd,
// production, development. The level argument only applies to the console
// and systemd presets.
func NewZapLogger(preset string, level zapcore.Level) (*zap.Logger, error) {
	var cfg zap.Config

	switch preset {
	case "console", "":
		cfg = NewConsoleConfig(level, true, true)
	case "console-nocolor":
		cfg = NewConsoleConfig(level, false, true)
	case "console-notime":
		cfg = NewConsoleConfig(level, true, false)
	case "systemd":
		// journald supplies its own timestamps.
		cfg = NewConsoleConfig(level, false, false)
	case "production":
		cfg = zap.NewProductionConfig()
	case "development":
		cfg = zap.NewDevelopmentConfig()
	default:
		b, err := os.ReadFile(preset)
		if err != nil {
			return nil, fmt.Errorf("failed to read zap config file: %w", err)
		}
		if err = json.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse zap config file %s: %w", preset, err)
		}
	}

	return cfg.Build()
}

// NewConsoleConfig returns a console logging configuration
// with the given level, color and timestamp settings.
func NewConsoleConfig(level zapcore.Level, color, timestamp bool) zap.Config {
	ec := zap.NewDevelopmentEncoderConfig()
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if !timestamp {
		ec.TimeKey = zapcore.OmitKey
	}

	return zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "console",
		EncoderConfig:    ec,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
