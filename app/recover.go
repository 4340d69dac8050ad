package app

import (
	"log/slog"
	"runtime/debug"
)

// recoverLog must be deferred directly.
func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil && logger != nil {
		logger.Error(msg, "error", r, "stack", string(debug.Stack()))
	}
}
