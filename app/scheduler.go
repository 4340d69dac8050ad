package app

import (
	"log/slog"
	"time"

	tk "modernc.org/tk9.0"
)

// tkScheduler runs recorder ticks on Tk's event loop thread.
type tkScheduler struct{ logger *slog.Logger }

func (s tkScheduler) After(d time.Duration, fn func()) func() {
	var cancelled bool
	id := tk.TclAfter(d, func() {
		if cancelled {
			return
		}
		defer recoverLog(s.logger, "scheduled callback panic")
		fn()
	})
	return func() {
		cancelled = true
		tk.TclAfterCancel(id)
	}
}
