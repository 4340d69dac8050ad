package presenter

import (
	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/domain/still"
)

// StillTaker takes a screenshot through a save dialog.
type StillTaker interface {
	Take(selectOutput still.Selector, win still.Window, autoMinimize bool) (string, error)
}

// SettingsSource reports the live settings.
type SettingsSource interface {
	Settings() recorder.Settings
}

// StillPresenter runs the screenshot action and reports the outcome.
type StillPresenter struct {
	taker    StillTaker
	selector still.Selector
	window   still.Window
	settings SettingsSource
	status   recorder.Status
}

func NewStillPresenter(taker StillTaker, selector still.Selector, window still.Window, settings SettingsSource, status recorder.Status) *StillPresenter {
	return &StillPresenter{taker: taker, selector: selector, window: window, settings: settings, status: status}
}

// Take captures a still. A cancelled dialog reports nothing.
func (p *StillPresenter) Take() {
	if p == nil || p.taker == nil {
		return
	}
	auto := false
	if p.settings != nil {
		auto = p.settings.Settings().AutoMinimize
	}
	path, err := p.taker.Take(p.selector, p.window, auto)
	if p.status == nil {
		return
	}
	if err != nil {
		p.status.Error(err)
		return
	}
	if path != "" {
		p.status.Info("Screenshot saved: " + path)
	}
}
