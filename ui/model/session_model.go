package model

import (
	"time"
)

// SessionModel tracks the current recording duration, the accumulated
// recording time and the frame count of the current session. Presenters poll
// Values() and update views. The zero value is ready to use.
type SessionModel struct {
	active      bool
	recordStart time.Time
	lastSession time.Duration
	accumulated time.Duration
	frames      int
	totalFrames int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model with the recorder state, the frames written in
// the current session and the current time.
func (m *SessionModel) OnTick(recording bool, frames int, now time.Time) {
	if m == nil {
		return
	}
	if recording {
		if !m.active { // idle -> recording
			m.active = true
			m.recordStart = now
			m.lastSession = 0
			m.frames = 0
		}
		m.lastSession = now.Sub(m.recordStart)
		m.frames = frames
		return
	}
	if m.active { // recording -> idle
		m.lastSession = now.Sub(m.recordStart)
		m.accumulated += m.lastSession
		if frames > m.frames {
			m.frames = frames
		}
		m.totalFrames += m.frames
		m.active = false
	}
}

// Values returns the session duration and the total recorded duration. The
// total includes the running session.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastSession
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}

// Frames returns the frame count of the current (or last) session and the
// total across sessions, running session included.
func (m *SessionModel) Frames() (session, total int) {
	if m == nil {
		return 0, 0
	}
	total = m.totalFrames
	if m.active {
		total += m.frames
	}
	return m.frames, total
}
