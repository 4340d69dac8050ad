package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/firescreen-go/assets"
	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/debug"
	"github.com/soocke/firescreen-go/tray"
	"github.com/soocke/firescreen-go/ui/presenter"
	"github.com/soocke/firescreen-go/ui/theme"
	"github.com/soocke/firescreen-go/ui/view"

	tk "modernc.org/tk9.0"
)

const (
	tick = 200 * time.Millisecond
)

// App is the desktop recorder window.
type App struct {
	title   string
	width   int
	height  int
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	c       *AppContainer
	tray    *tray.Tray
	afterID string
	cancel  context.CancelFunc
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *App {
	a := &App{title: title, width: width, height: height, cfg: cfg, cfgPath: cfgPath, logger: logger}

	tk.App.WmTitle(title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	tk.App.IconPhoto(tk.NewPhoto(tk.Data(assets.IconPNG)))
	return a
}

// Start builds the UI and blocks in Tk's event loop until the window closes.
func (a *App) Start() error {
	theme.SetDark(a.cfg.DarkMode)
	c, err := BuildContainer(a.cfg, a.cfgPath, a.logger, tkScheduler{logger: a.logger})
	if err != nil {
		a.logger.Error("startup failed", "error", err)
		tk.MessageBox(tk.Icon("error"), tk.Title(a.title), tk.Msg("Startup failed"), tk.Detail(err.Error()))
		tk.Destroy(tk.App)
		return err
	}
	a.c = c
	c.RootView.Build(view.Handlers{
		ToggleRecording: c.RecordingPresenter.Toggle,
		Screenshot:      c.StillPresenter.Take,
		Settings:        c.SettingsPresenter.Open,
		About:           a.about,
		Exit:            a.exitHandler,
	})
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.StatePresenter, a.scheduleUpdate)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if a.cfg.Debug {
		debug.StartRuntimeLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
		stats := debug.NewStatsReporter(5*time.Second, a.logger, c.Recorder.Stats, c.Recorder.Recording)
		c.Loop.Extra = append(c.Loop.Extra, func(now time.Time) { stats.Report(now) })
	}
	if a.cfg.Tray {
		a.startTray()
	}

	d := c.Recorder.Dimensions()
	c.Status.Info(fmt.Sprintf("Ready: display %dx%d, %d fps", d.Width, d.Height, c.Recorder.Settings().FrameRate))
	if err := c.Core.Encoder.Available(); err != nil {
		a.logger.Warn("ffmpeg unavailable", "error", err)
		c.Status.Info(fmt.Sprintf("Warning: %v; recording will fail until ffmpeg is installed", err))
	}

	a.scheduleUpdate()
	tk.App.Wait()
	return nil
}

func (a *App) startTray() {
	c := a.c
	t := tray.New(a.title, assets.TrayIcon(), a.logger)
	rec := t.AddItem("Start Recording", func() { c.Loop.Post(c.RecordingPresenter.Toggle) })
	t.AddItem("Screenshot", func() { c.Loop.Post(c.StillPresenter.Take) })
	t.AddSeparator()
	t.AddItem("Quit", func() { c.Loop.Post(a.exitHandler) })
	c.RecordingPresenter.AddView(tray.RecordingItem{Item: rec})
	t.Start()
	a.tray = t
}

func (a *App) about() {
	if a.c == nil {
		return
	}
	d := a.c.Recorder.Dimensions()
	a.c.Dialogs.ShowAbout(a.title, fmt.Sprintf("Screen recorder with cursor highlight.\nDisplay %dx%d, encoder %s.", d.Width, d.Height, a.cfg.FFmpegPath))
}

func (a *App) exitHandler() {
	// Finalise any running recording before the window goes away.
	if a.c != nil && a.c.Recorder != nil {
		_ = a.c.Recorder.Stop()
	}
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.tray.Stop()
	tk.Destroy(tk.App)
}

func (a *App) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = tk.TclAfter(tick, func() {
		defer recoverLog(a.logger, "ui tick panic")
		a.c.Loop.Tick()
	})
}
