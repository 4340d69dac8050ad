package presenter

import (
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/ui/model"
)

// SessionSource reports the recorder's active and last session.
type SessionSource interface {
	Session() (recorder.Session, bool)
	LastSession() recorder.Session
}

// SessionView displays session and total durations and frame counts.
type SessionView interface {
	SetSession(session, total time.Duration)
	SetFrames(session, total int)
}

// SessionPresenter formats recording durations and frame counts from the
// model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  SessionSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, src SessionSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	s, recording := p.src.Session()
	if !recording {
		s = p.src.LastSession()
	}
	p.sess.OnTick(recording, s.Frames, now)
	d, t := p.sess.Values()
	p.view.SetSession(d, t)
	f, ft := p.sess.Frames()
	p.view.SetFrames(f, ft)
}
