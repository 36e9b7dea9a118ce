package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger for the given environment. Development
// gets a human-readable console logger that also appends to app.log;
// anything else gets production JSON on stderr.
func New(environment string) (*zap.Logger, error) {
	if environment == "development" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.OutputPaths = []string{"stderr", "app.log"}
		return cfg.Build()
	}
	return zap.NewProduction()
}
