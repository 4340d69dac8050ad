package presenter

import "time"

// Loop aggregates feature presenters and drives periodic UI updates.
//
// Commands posted from other goroutines (the tray) are drained and run on
// the UI thread at the start of every Tick. The zero value is usable except
// for Post, which needs NewLoop's channel.
type Loop struct {
	Session  *SessionPresenter
	State    *StatePresenter
	Extra    []func(now time.Time)
	Schedule func()
	commands chan func()
}

func NewLoop(sess *SessionPresenter, state *StatePresenter, schedule func()) *Loop {
	return &Loop{Session: sess, State: state, Schedule: schedule, commands: make(chan func(), 16)}
}

// Post queues fn for the next Tick. It never blocks and reports false when
// the queue is full.
func (l *Loop) Post(fn func()) bool {
	if l == nil || l.commands == nil || fn == nil {
		return false
	}
	select {
	case l.commands <- fn:
		return true
	default:
		return false
	}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	l.drain()
	now := time.Now()
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	for _, fn := range l.Extra {
		fn(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

func (l *Loop) drain() {
	if l.commands == nil {
		return
	}
	for {
		select {
		case fn := <-l.commands:
			fn()
		default:
			return
		}
	}
}
