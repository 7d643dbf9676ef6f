package abi

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// Logger returns the package logger. It is a no-op logger unless SetLogger was
// called.
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger == nil {
		logger = zap.NewNop()
	}

	return logger
}

// SetLogger replaces the package logger. Offsets and lengths are traced at
// debug level.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = l
}
