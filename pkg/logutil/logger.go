// Package logutil bootstraps the process-wide zap logger used by the
// orchestration layer. The analysis packages themselves stay silent;
// only the collaborator driving them reports progress.
package logutil

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// InitLogger builds the production logger. Safe to call more than
// once; only the first call takes effect.
func InitLogger() {
	once.Do(func() {
		logger, _ = zap.NewProduction()
	})
}

// GetLogger returns the process logger, initializing it on first use.
func GetLogger() *zap.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}
