package logging

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// New builds the production JSON logger shared by the whole process.
func New(app string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{"app": app}
	return cfg.Build()
}

func Named(name string) func(log *zap.Logger) *zap.Logger {
	return func(log *zap.Logger) *zap.Logger { return log.Named(name) }
}

// FxLogger routes fx lifecycle events through zap.
func FxLogger(log *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: log.Named("fx")}
}
