package model

import (
	"sync/atomic"
)

// RecordingModel mirrors whether a recording session is active. The zero
// value is idle and usable. It is updated from the recorder's state listener
// and read by tray callbacks, hence the atomic.
type RecordingModel struct{ active atomic.Bool }

// Active reports whether a session is running.
func (m *RecordingModel) Active() bool {
	if m == nil {
		return false
	}
	return m.active.Load()
}

// SetActive stores the flag and reports whether it changed.
func (m *RecordingModel) SetActive(b bool) bool {
	if m == nil {
		return false
	}
	return m.active.Swap(b) != b
}
