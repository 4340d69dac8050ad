package presenter

import (
	"github.com/soocke/firescreen-go/domain/recorder"
)

// RecordingModel provides recording state access.
type RecordingModel interface {
	Active() bool
	SetActive(bool) bool
}

// Recorder narrows what the presenter needs from the capture loop controller.
type Recorder interface {
	Start(selectOutput recorder.OutputSelector) error
	Stop() error
	Recording() bool
}

// RecordingView updates UI elements affected by recording state: the toggle
// button label in the main window and the tray item.
type RecordingView interface {
	SetRecording(recording bool)
}

// RecordingPresenter owns presentation logic for starting and stopping a
// recording.
type RecordingPresenter struct {
	model    RecordingModel
	rec      Recorder
	selector recorder.OutputSelector
	views    []RecordingView
}

func NewRecordingPresenter(model RecordingModel, rec Recorder, selector recorder.OutputSelector, views ...RecordingView) *RecordingPresenter {
	return &RecordingPresenter{model: model, rec: rec, selector: selector, views: views}
}

// AddView registers another view, e.g. the tray menu created after the root view.
func (p *RecordingPresenter) AddView(v RecordingView) {
	if p == nil || v == nil {
		return
	}
	p.views = append(p.views, v)
	v.SetRecording(p.model != nil && p.model.Active())
}

// Enable asks for an output file and starts recording. Idempotent. Errors
// are reported by the recorder's status stream.
func (p *RecordingPresenter) Enable() {
	if p == nil || p.rec == nil {
		return
	}
	if p.rec.Recording() {
		return
	}
	_ = p.rec.Start(p.selector)
}

// Disable stops recording. Idempotent.
func (p *RecordingPresenter) Disable() {
	if p == nil || p.rec == nil {
		return
	}
	if !p.rec.Recording() {
		return
	}
	_ = p.rec.Stop()
}

// Toggle flips recording state delegating to Enable/Disable.
func (p *RecordingPresenter) Toggle() {
	if p == nil || p.rec == nil {
		return
	}
	if p.rec.Recording() {
		p.Disable()
		return
	}
	p.Enable()
}

// OnState is registered as a recorder state listener so that failures that
// end a session also reach the views.
func (p *RecordingPresenter) OnState(prev, next recorder.State) {
	if p == nil || p.model == nil {
		return
	}
	active := next == recorder.StateRecording
	if !p.model.SetActive(active) {
		return
	}
	for _, v := range p.views {
		v.SetRecording(active)
	}
}
