package view

import (
	"fmt"
	"time"

	"github.com/soocke/firescreen-go/ui/model"
	"github.com/soocke/firescreen-go/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows recording durations and frame counts.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration)
	SetFrames(session, total int)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	framesLbl  *LabelWidget
}

// NewSessionStats creates session, total and frame labels in a grid row
// starting at startCol. If parent is nil, labels are positioned relative to
// the App root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	p := theme.CurrentPalette()
	label := func(width int) *LabelWidget {
		return Label(Width(width), Background(p.AppBg), Foreground(p.TextMuted))
	}
	s := &sessionStats{sessionLbl: label(16), totalLbl: label(14), framesLbl: label(20)}
	for i, l := range []*LabelWidget{s.sessionLbl, s.totalLbl, s.framesLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.sessionLbl.Configure(Txt("Recording: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	s.framesLbl.Configure(Txt("Frames: 0 / 0"))
	return s
}

// SetSession updates the session duration display.
func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Recording: " + model.FormatClock(d)))
}

// SetTotal updates the total duration display.
func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt("Total: " + model.FormatClock(d)))
}

func (s *sessionStats) SetFrames(session, total int) {
	if s == nil || s.framesLbl == nil {
		return
	}
	s.framesLbl.Configure(Txt(fmt.Sprintf("Frames: %d / %d", session, total)))
}
