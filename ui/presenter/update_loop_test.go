package presenter

import (
	"testing"
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
)

func TestLoop_DrainsCommandsBeforePresenters(t *testing.T) {
	view := &mockStateView{}
	state := NewStatePresenter(view)
	scheduled := 0
	l := NewLoop(nil, state, func() { scheduled++ })

	ran := 0
	if !l.Post(func() { ran++; state.OnState(recorder.StateIdle, recorder.StateRecording) }) {
		t.Fatalf("post rejected")
	}
	var seen []time.Time
	l.Extra = append(l.Extra, func(now time.Time) { seen = append(seen, now) })
	l.Tick()
	if ran != 1 || scheduled != 1 || len(seen) != 1 {
		t.Fatalf("ran=%d scheduled=%d extra=%d", ran, scheduled, len(seen))
	}
	if len(view.labels) != 1 || view.labels[0] != "State: recording" {
		t.Fatalf("command effect not flushed in same tick: %v", view.labels)
	}
	l.Tick()
	if ran != 1 {
		t.Fatalf("command ran twice")
	}
}

func TestLoop_PostFullQueue(t *testing.T) {
	l := NewLoop(nil, nil, nil)
	n := 0
	for l.Post(func() {}) {
		n++
		if n > 1000 {
			t.Fatalf("queue unbounded")
		}
	}
	if n != 16 {
		t.Fatalf("queue size %d", n)
	}
	var zero Loop
	if zero.Post(func() {}) {
		t.Fatalf("zero loop accepted post")
	}
	zero.Tick()
}
