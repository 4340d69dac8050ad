package presenter

import (
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives recorder transitions and updates the state label on
// the next UI tick.
type StatePresenter struct {
	view    StateView
	latest  recorder.State // last reflected state
	pending []recorder.State
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from the recorder listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(prev, next recorder.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick reflects the most recent queued state and clears the queue.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	if len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if last != p.latest {
		p.latest = last
		p.view.SetStateLabel(StateLabel(last))
	}
}

// StateLabel formats the state label text.
func StateLabel(s recorder.State) string { return "State: " + s.String() }
