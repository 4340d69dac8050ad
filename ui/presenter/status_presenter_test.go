package presenter

import (
	"errors"
	"strings"
	"testing"
	"time"
)

type mockConsole struct{ lines []string }

func (c *mockConsole) AppendLine(s string) { c.lines = append(c.lines, s) }

type mockAlert struct{ titles, msgs []string }

func (a *mockAlert) ShowError(title, msg string) {
	a.titles = append(a.titles, title)
	a.msgs = append(a.msgs, msg)
}

func TestStatusPresenter(t *testing.T) {
	console := &mockConsole{}
	alert := &mockAlert{}
	p := NewStatusPresenter(console, alert, nil)
	p.now = func() time.Time { return time.Date(2024, 1, 1, 9, 5, 7, 0, time.UTC) }

	p.Info("Recording started")
	p.Error(errors.New("disk full"))
	p.Error(nil)

	if len(console.lines) != 2 {
		t.Fatalf("lines %v", console.lines)
	}
	if console.lines[0] != "09:05:07  Recording started" {
		t.Fatalf("info line %q", console.lines[0])
	}
	if !strings.HasSuffix(console.lines[1], "Error: disk full") {
		t.Fatalf("error line %q", console.lines[1])
	}
	if len(alert.msgs) != 1 || alert.msgs[0] != "disk full" {
		t.Fatalf("alerts %v", alert.msgs)
	}
}
