package debug

import (
	"log/slog"
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
)

// StatsReporter logs recorder tick statistics at most once per interval.
// Report must be called from the recorder's timeline.
type StatsReporter struct {
	interval time.Duration
	logger   *slog.Logger
	source   func() recorder.Stats
	active   func() bool
	last     time.Time
}

func NewStatsReporter(interval time.Duration, logger *slog.Logger, source func() recorder.Stats, active func() bool) *StatsReporter {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &StatsReporter{interval: interval, logger: logger, source: source, active: active}
}

// Report logs a snapshot when a session is active and the interval elapsed.
// It returns whether a line was logged.
func (r *StatsReporter) Report(now time.Time) bool {
	if r == nil || r.source == nil || r.logger == nil {
		return false
	}
	if r.active != nil && !r.active() {
		return false
	}
	if !r.last.IsZero() && now.Sub(r.last) < r.interval {
		return false
	}
	r.last = now
	s := r.source()
	r.logger.Info("recorder-stats",
		slog.Uint64("ticks", s.Ticks),
		slog.Uint64("frames", s.Frames),
		slog.Uint64("cursor_misses", s.CursorMisses),
		slog.Duration("avg_tick", s.AvgTick),
		slog.Float64("effective_fps", s.EffectiveRate),
	)
	return true
}
