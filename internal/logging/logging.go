// Package logging builds the zap loggers used by the batch tooling. The
// engine itself only ever sees a *zap.Logger and works fine with a nop one.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// rotation defaults for the file sink
const (
	maxSizeMB  = 50
	maxBackups = 3
	maxAgeDays = 14
)

// ParseLevel maps a flag value onto a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New returns a logger writing human-readable output to stderr and, when
// filePath is non-empty, JSON to a size-rotated file.
func New(level zapcore.Level, filePath string) *zap.Logger {
	consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), level),
	}
	if filePath != "" {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		})
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, w, level))
	}
	return zap.New(zapcore.NewTee(cores...))
}
