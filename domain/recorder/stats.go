package recorder

import "time"

// Stats summarises tick behaviour of the current (or last) session.
type Stats struct {
	Ticks         uint64
	Frames        uint64
	CursorMisses  uint64
	AvgTick       time.Duration
	LastTick      time.Time
	EffectiveRate float64 // frames per second measured since session start
}

type tickStats struct {
	ticks        uint64
	frames       uint64
	cursorMisses uint64
	tickNanos    uint64
	lastTick     time.Time
}

func (s *tickStats) reset() { *s = tickStats{} }

func (s *tickStats) observe(start time.Time, elapsed time.Duration, wrote bool) {
	s.ticks++
	s.tickNanos += uint64(elapsed.Nanoseconds())
	s.lastTick = start
	if wrote {
		s.frames++
	}
}

func (s *tickStats) snapshot(started, now time.Time) Stats {
	out := Stats{Ticks: s.ticks, Frames: s.frames, CursorMisses: s.cursorMisses, LastTick: s.lastTick}
	if s.ticks > 0 {
		out.AvgTick = time.Duration(s.tickNanos / s.ticks)
	}
	if !started.IsZero() {
		if span := now.Sub(started).Seconds(); span > 0 {
			out.EffectiveRate = float64(s.frames) / span
		}
	}
	return out
}
