package model

import (
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// Start at t0 and record for 5s.
	m.OnTick(true, 0, base)
	m.OnTick(true, 100, base.Add(5*time.Second))
	session, total := m.Values()
	if session != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s session & total; got session=%v total=%v", session, total)
	}

	// Stop at 5s.
	m.OnTick(false, 100, base.Add(5*time.Second))
	session, total = m.Values()
	if session != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after stop expected persisted 5s; got session=%v total=%v", session, total)
	}

	// Idle ticks change nothing.
	m.OnTick(false, 0, base.Add(7*time.Second))
	if s2, t2 := m.Values(); s2 != session || t2 != total {
		t.Fatalf("idle tick changed durations: session=%v total=%v", s2, t2)
	}

	// Second session at 10s lasting 3s.
	m.OnTick(true, 0, base.Add(10*time.Second))
	m.OnTick(true, 60, base.Add(13*time.Second))
	if s3, t3 := m.Values(); s3 != 3*time.Second || t3 != 8*time.Second {
		t.Fatalf("second session: session=%v total=%v", s3, t3)
	}
	if f, ft := m.Frames(); f != 60 || ft != 160 {
		t.Fatalf("frames during second session: %d/%d", f, ft)
	}

	m.OnTick(false, 61, base.Add(13*time.Second))
	if f, ft := m.Frames(); f != 61 || ft != 161 {
		t.Fatalf("frames after stop: %d/%d", f, ft)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, 1, time.Now())
	if s, tot := m.Values(); s != 0 || tot != 0 {
		t.Fatalf("nil model values")
	}
}

func TestRecordingModel(t *testing.T) {
	var m RecordingModel
	if m.Active() {
		t.Fatalf("zero value should be idle")
	}
	if !m.SetActive(true) || m.SetActive(true) || !m.Active() {
		t.Fatalf("SetActive change reporting wrong")
	}
	var nilModel *RecordingModel
	if nilModel.Active() || nilModel.SetActive(true) {
		t.Fatalf("nil model not safe")
	}
}
