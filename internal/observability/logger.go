package observability

import (
	"log"

	"go.uber.org/zap"
)

// Logger is the narrow logging surface the services depend on.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

type zapLogger struct {
	inner *zap.Logger
}

func NewLogger() Logger {
	inner, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return &zapLogger{inner: inner}
}

func (l *zapLogger) Info(msg string) {
	l.inner.Info(msg)
}

func (l *zapLogger) Error(msg string) {
	l.inner.Error(msg)
}
