package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/domain/recorder"
	"github.com/soocke/firescreen-go/domain/still"
	"github.com/soocke/firescreen-go/runner"
	"github.com/soocke/firescreen-go/ui/model"
	"github.com/soocke/firescreen-go/ui/presenter"
	"github.com/soocke/firescreen-go/ui/view"
)

const stillSettleDelay = 250 * time.Millisecond

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config   *config.Config
	Logger   *slog.Logger
	Core     *runner.Core
	Recorder *recorder.Controller

	Recording *model.RecordingModel
	Session   *model.SessionModel

	RootView *view.RootView
	UI       view.UI
	Dialogs  *view.Dialogs
	Settings *view.SettingsDialog

	// Presenters
	Status             *presenter.StatusPresenter
	RecordingPresenter *presenter.RecordingPresenter
	StatePresenter     *presenter.StatePresenter
	SessionPresenter   *presenter.SessionPresenter
	SettingsPresenter  *presenter.SettingsPresenter
	StillPresenter     *presenter.StillPresenter
	Loop               *presenter.Loop
}

// BuildContainer constructs all components. The root view is built by the
// caller; presenters only hold references to it.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, sched recorder.Scheduler) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	core, err := runner.BuildCore(cfg, logger, still.WithSettleDelay(stillSettleDelay))
	if err != nil {
		return nil, err
	}
	c.Core = core
	c.Recording = &model.RecordingModel{}
	c.Session = model.NewSessionModel()

	// View
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView
	c.Dialogs = &view.Dialogs{OutputDir: func() string { return cfg.OutputDir }}
	c.Settings = view.NewSettingsDialog(logger)
	c.Status = presenter.NewStatusPresenter(c.UI, c.Dialogs, logger)

	rec, err := recorder.New(recorder.Options{
		Source:    core.Source,
		Locator:   core.Locator,
		Opener:    core.Encoder,
		Scheduler: sched,
		Status:    c.Status,
		Logger:    logger,
	}, cfg.Settings())
	if err != nil {
		return nil, fmt.Errorf("recorder: %w", err)
	}
	c.Recorder = rec

	// Presenters
	c.RecordingPresenter = presenter.NewRecordingPresenter(c.Recording, rec, c.Dialogs.AskVideoPath, c.UI)
	c.StatePresenter = presenter.NewStatePresenter(c.UI)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, rec, c.UI)
	c.SettingsPresenter = presenter.NewSettingsPresenter(rec, configStore{cfg: cfg, path: cfgPath}, c.Settings, logger)
	c.StillPresenter = presenter.NewStillPresenter(core.Still, c.Dialogs.AskStillPath, c.Dialogs, rec, c.Status)
	rec.AddListener(c.RecordingPresenter.OnState)
	rec.AddListener(c.StatePresenter.OnState)
	return c, nil
}
