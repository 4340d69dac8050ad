package recorder

import "log/slog"

// Status receives the ordered, human-readable status stream: start, stop and
// save notices through Info, failures through Error.
type Status interface {
	Info(msg string)
	Error(err error)
}

// LogStatus writes the status stream to a structured logger.
type LogStatus struct{ Logger *slog.Logger }

func (s LogStatus) Info(msg string) {
	if s.Logger != nil {
		s.Logger.Info(msg)
	}
}

func (s LogStatus) Error(err error) {
	if s.Logger != nil && err != nil {
		s.Logger.Error("recorder", "error", err)
	}
}

type nopStatus struct{}

func (nopStatus) Info(string)  {}
func (nopStatus) Error(error) {}
