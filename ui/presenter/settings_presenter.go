package presenter

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/firescreen-go/domain/compositor"
	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/ui/model"
)

// SettingsTarget owns the live recorder settings.
type SettingsTarget interface {
	Settings() recorder.Settings
	ApplySettings(recorder.Settings) error
}

// SettingsStore persists applied settings.
type SettingsStore interface {
	Persist(recorder.Settings) error
}

// SettingsView opens the settings dialog. The dialog calls apply on confirm
// and stays open when apply returns an error.
type SettingsView interface {
	ShowSettings(form model.SettingsForm, apply func(model.SettingsForm) error)
}

// SettingsPresenter parses, validates, applies and persists the settings
// dialog.
type SettingsPresenter struct {
	target SettingsTarget
	store  SettingsStore
	view   SettingsView
	logger *slog.Logger
}

func NewSettingsPresenter(target SettingsTarget, store SettingsStore, view SettingsView, logger *slog.Logger) *SettingsPresenter {
	return &SettingsPresenter{target: target, store: store, view: view, logger: logger}
}

// Open shows the dialog filled with the current settings.
func (p *SettingsPresenter) Open() {
	if p == nil || p.target == nil || p.view == nil {
		return
	}
	p.view.ShowSettings(FormFromSettings(p.target.Settings()), p.Apply)
}

// Apply parses form and hands the result to the recorder. Persistence
// failures are logged but do not reject the settings.
func (p *SettingsPresenter) Apply(form model.SettingsForm) error {
	if p == nil || p.target == nil {
		return nil
	}
	next, err := ParseForm(p.target.Settings(), form)
	if err != nil {
		return err
	}
	if err := p.target.ApplySettings(next); err != nil {
		return err
	}
	if p.store != nil {
		if err := p.store.Persist(next); err != nil && p.logger != nil {
			p.logger.Error("settings save failed", "error", err)
		}
	}
	return nil
}

// FormFromSettings renders settings into dialog text.
func FormFromSettings(s recorder.Settings) model.SettingsForm {
	return model.SettingsForm{
		FrameRate:    strconv.Itoa(s.FrameRate),
		CursorRadius: strconv.Itoa(s.CursorRadius),
		CursorColor:  s.CursorColor.Hex(),
		AutoMinimize: strconv.FormatBool(s.AutoMinimize),
	}
}

// ParseForm validates the dialog text against base. On error base is
// returned unchanged.
func ParseForm(base recorder.Settings, form model.SettingsForm) (recorder.Settings, error) {
	next, err := recorder.ParseSettings(base, form.FrameRate, form.CursorRadius)
	if err != nil {
		return base, err
	}
	if strings.TrimSpace(form.CursorColor) != "" {
		c, err := compositor.ParseHex(form.CursorColor)
		if err != nil {
			return base, fmt.Errorf("%w: %w", recorder.ErrInvalidConfiguration, err)
		}
		next.CursorColor = c
	}
	if strings.TrimSpace(form.AutoMinimize) != "" {
		b, ok := parseBoolLoose(form.AutoMinimize)
		if !ok {
			return base, fmt.Errorf("%w: auto-minimise %q is not true/false", recorder.ErrInvalidConfiguration, strings.TrimSpace(form.AutoMinimize))
		}
		next.AutoMinimize = b
	}
	return next, nil
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
