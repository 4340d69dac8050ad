package presenter

import (
	"errors"
	"testing"

	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/domain/still"
)

type mockTaker struct {
	path     string
	err      error
	autoSeen bool
}

func (m *mockTaker) Take(sel still.Selector, win still.Window, auto bool) (string, error) {
	m.autoSeen = auto
	return m.path, m.err
}

type mockStatus struct {
	infos []string
	errs  []error
}

func (m *mockStatus) Info(s string)   { m.infos = append(m.infos, s) }
func (m *mockStatus) Error(err error) { m.errs = append(m.errs, err) }

func TestStillPresenter(t *testing.T) {
	settings := &mockTarget{s: recorder.DefaultSettings()}
	settings.s.AutoMinimize = true
	status := &mockStatus{}

	taker := &mockTaker{path: "shot.png"}
	NewStillPresenter(taker, nil, nil, settings, status).Take()
	if !taker.autoSeen || len(status.infos) != 1 || status.infos[0] != "Screenshot saved: shot.png" {
		t.Fatalf("success: auto=%v infos=%v", taker.autoSeen, status.infos)
	}

	NewStillPresenter(&mockTaker{}, nil, nil, settings, status).Take()
	if len(status.infos) != 1 || len(status.errs) != 0 {
		t.Fatalf("cancel reported something")
	}

	NewStillPresenter(&mockTaker{err: still.ErrStillCaptureFailed}, nil, nil, settings, status).Take()
	if len(status.errs) != 1 || !errors.Is(status.errs[0], still.ErrStillCaptureFailed) {
		t.Fatalf("errors %v", status.errs)
	}
}
