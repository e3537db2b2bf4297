package timing

import (
	"context"
	"log/slog"
)

// LevelTrace sits one level above Info so cycle traces can be filtered
// without touching the functional trace output on the machine's writer.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a cycle-level diagnostic record.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
