package presenter

import (
	"log/slog"
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
)

// ConsoleView appends lines to the main window console.
type ConsoleView interface{ AppendLine(string) }

// AlertView shows a modal error box.
type AlertView interface{ ShowError(title, msg string) }

// StatusPresenter is the desktop status channel: every message goes to the
// console and the structured log, errors additionally raise an error box.
type StatusPresenter struct {
	console ConsoleView
	alert   AlertView
	logger  *slog.Logger
	now     func() time.Time
}

var _ recorder.Status = (*StatusPresenter)(nil)

func NewStatusPresenter(console ConsoleView, alert AlertView, logger *slog.Logger) *StatusPresenter {
	return &StatusPresenter{console: console, alert: alert, logger: logger, now: time.Now}
}

func (p *StatusPresenter) Info(msg string) {
	if p == nil {
		return
	}
	if p.logger != nil {
		p.logger.Info("status", "msg", msg)
	}
	p.line(msg)
}

func (p *StatusPresenter) Error(err error) {
	if p == nil || err == nil {
		return
	}
	if p.logger != nil {
		p.logger.Error("status", "error", err)
	}
	p.line("Error: " + err.Error())
	if p.alert != nil {
		p.alert.ShowError("Error", err.Error())
	}
}

func (p *StatusPresenter) line(msg string) {
	if p.console == nil {
		return
	}
	p.console.AppendLine(p.now().Format("15:04:05") + "  " + msg)
}
