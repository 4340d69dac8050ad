package view

import (
	"log/slog"
	"time"

	"github.com/soocke/firescreen-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	labelStart = "Start Recording"
	labelStop  = "Stop Recording"
)

// Handlers are the user actions wired by the app.
type Handlers struct {
	ToggleRecording func()
	Screenshot      func()
	Settings        func()
	About           func()
	Exit            func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Session SessionStats
	Console Console

	// Widgets
	StateLabel *TLabelWidget
	RecordBtn  *TButtonWidget
	StillBtn   *ButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetRecording(recording bool)
	SetSession(session, total time.Duration)
	SetFrames(session, total int)
	AppendLine(line string)
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: state label and session stats
	rv.StateLabel = TLabel(Txt("State: idle"), Style(theme.StyleIdleLabel))
	Grid(rv.StateLabel, Row(0), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.Session = NewSessionStats(nil, 0, 1)

	// Row 1: buttons
	btnFrame := Frame(Background(theme.CurrentPalette().AppBg))
	Grid(btnFrame, Row(1), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.RecordBtn = TButton(Txt(labelStart), Command(h.ToggleRecording), Style(theme.StylePrimaryButton))
	Grid(rv.RecordBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.StillBtn = Button(Txt("Screenshot"), Command(h.Screenshot))
	Grid(rv.StillBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	settingsBtn := Button(Txt("Settings"), Command(h.Settings))
	Grid(settingsBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	aboutBtn := Button(Txt("About"), Command(h.About))
	Grid(aboutBtn, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.Exit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 2: console
	rv.Console = NewConsole(2, 4)
	GridRowConfigure(App, 2, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetRecording flips the record button between start and stop and recolours
// the state badge.
func (rv *RootView) SetRecording(recording bool) {
	if rv == nil || rv.RecordBtn == nil {
		return
	}
	btnText, btnStyle, badge := labelStart, theme.StylePrimaryButton, theme.StyleIdleLabel
	if recording {
		btnText, btnStyle, badge = labelStop, theme.StyleDangerButton, theme.StyleRecordingLbl
	}
	rv.RecordBtn.Configure(Txt(btnText), Style(btnStyle))
	if rv.StateLabel != nil {
		rv.StateLabel.Configure(Style(badge))
	}
}

// SetSession updates both session and total recording durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

// SetFrames updates the frame counters.
func (rv *RootView) SetFrames(session, total int) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetFrames(session, total)
}

// AppendLine proxies to the console.
func (rv *RootView) AppendLine(line string) {
	if rv != nil && rv.Console != nil {
		rv.Console.AppendLine(line)
	}
}
