package presenter

import (
	"testing"

	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/ui/model"
)

// mockRecorder mimics the controller: Start opens a session unless the
// selector cancels, and notifies the listener like the real one does.
type mockRecorder struct {
	recording        bool
	started, stopped int
	listener         recorder.StateListener
}

func (r *mockRecorder) Start(sel recorder.OutputSelector) error {
	if r.recording {
		return nil
	}
	if _, ok := sel(); !ok {
		return nil
	}
	r.started++
	r.recording = true
	if r.listener != nil {
		r.listener(recorder.StateIdle, recorder.StateRecording)
	}
	return nil
}

func (r *mockRecorder) Stop() error {
	if !r.recording {
		return nil
	}
	r.stopped++
	r.recording = false
	if r.listener != nil {
		r.listener(recorder.StateRecording, recorder.StateIdle)
	}
	return nil
}

func (r *mockRecorder) Recording() bool { return r.recording }

type mockRecordingView struct {
	calls int
	last  bool
}

func (v *mockRecordingView) SetRecording(b bool) { v.calls++; v.last = b }

func newRecordingFixture(ok bool) (*RecordingPresenter, *mockRecorder, *mockRecordingView, *model.RecordingModel) {
	m := &model.RecordingModel{}
	rec := &mockRecorder{}
	view := &mockRecordingView{}
	p := NewRecordingPresenter(m, rec, func() (string, bool) { return "out.mp4", ok }, view)
	rec.listener = p.OnState
	return p, rec, view, m
}

func TestRecordingPresenter_EnableDisable_Idempotent(t *testing.T) {
	p, rec, view, m := newRecordingFixture(true)

	p.Enable()
	if !m.Active() || rec.started != 1 || !view.last || view.calls != 1 {
		t.Fatalf("enable failed: active=%v started=%d calls=%d last=%v", m.Active(), rec.started, view.calls, view.last)
	}
	p.Enable()
	if rec.started != 1 || view.calls != 1 {
		t.Fatalf("enable not idempotent: started=%d calls=%d", rec.started, view.calls)
	}

	p.Disable()
	if m.Active() || rec.stopped != 1 || view.last || view.calls != 2 {
		t.Fatalf("disable failed: active=%v stopped=%d calls=%d last=%v", m.Active(), rec.stopped, view.calls, view.last)
	}
	p.Disable()
	if rec.stopped != 1 || view.calls != 2 {
		t.Fatalf("disable not idempotent: stopped=%d calls=%d", rec.stopped, view.calls)
	}
}

func TestRecordingPresenter_Toggle(t *testing.T) {
	p, rec, _, m := newRecordingFixture(true)
	p.Toggle()
	if !m.Active() || rec.started != 1 {
		t.Fatalf("toggle enable failed")
	}
	p.Toggle()
	if m.Active() || rec.stopped != 1 {
		t.Fatalf("toggle disable failed")
	}
}

func TestRecordingPresenter_CancelledDialog(t *testing.T) {
	p, rec, view, m := newRecordingFixture(false)
	p.Enable()
	if m.Active() || rec.started != 0 || view.calls != 0 {
		t.Fatalf("cancelled dialog changed state")
	}
}

func TestRecordingPresenter_FailureReachesViews(t *testing.T) {
	p, rec, view, m := newRecordingFixture(true)
	tray := &mockRecordingView{}
	p.AddView(tray)
	p.Enable()
	// Runtime failure: the controller goes idle on its own.
	rec.recording = false
	p.OnState(recorder.StateRecording, recorder.StateIdle)
	if m.Active() || view.last || tray.last {
		t.Fatalf("failure not reflected: active=%v view=%v tray=%v", m.Active(), view.last, tray.last)
	}
	if tray.calls != 3 { // initial sync, start, failure
		t.Fatalf("tray calls %d", tray.calls)
	}
}

func TestRecordingPresenter_NilSafe(t *testing.T) {
	var p *RecordingPresenter
	p.Enable()
	p.Disable()
	p.Toggle()
	p.OnState(recorder.StateIdle, recorder.StateRecording)
	p.AddView(&mockRecordingView{})
}
