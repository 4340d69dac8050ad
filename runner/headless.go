package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/firescreen-go/config"
	"github.com/soocke/firescreen-go/debug"
	"github.com/soocke/firescreen-go/domain/capture"
	"github.com/soocke/firescreen-go/domain/encoder"
	"github.com/soocke/firescreen-go/domain/recorder"
)

// HeadlessOptions select what the headless run does. Duration 0 records
// until ctx is cancelled.
type HeadlessOptions struct {
	RecordPath string
	Duration   time.Duration
	StillPath  string
}

// RunHeadless takes a still and/or records without Tk, driving the recorder
// from a single-goroutine loop.
func RunHeadless(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts HeadlessOptions) error {
	core, err := BuildCore(cfg, logger)
	if err != nil {
		return err
	}
	if opts.StillPath != "" {
		path, err := core.Still.Capture(opts.StillPath)
		if err != nil {
			return err
		}
		logger.Info("Screenshot saved", "path", path)
	}
	if opts.RecordPath == "" {
		return nil
	}
	if err := core.Encoder.Available(); err != nil {
		return fmt.Errorf("%w: %w", encoder.ErrSinkOpenFailed, err)
	}
	return record(ctx, core.Source, core.Locator, core.Encoder, cfg, logger, opts)
}

// collectStatus mirrors the status stream to the log and keeps errors for
// the caller.
type collectStatus struct {
	recorder.LogStatus
	mu   sync.Mutex
	errs []error
}

func (s *collectStatus) Error(err error) {
	s.LogStatus.Error(err)
	s.mu.Lock()
	s.errs = append(s.errs, err)
	s.mu.Unlock()
}

func (s *collectStatus) err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return errors.Join(s.errs...)
}

func record(ctx context.Context, src capture.Source, loc capture.Locator, opener encoder.Opener, cfg *config.Config, logger *slog.Logger, opts HeadlessOptions) error {
	loop := recorder.NewLoop(logger)
	defer loop.Close()

	status := &collectStatus{LogStatus: recorder.LogStatus{Logger: logger}}
	idle := make(chan struct{})
	var (
		rec    *recorder.Controller
		runErr error
	)
	loop.Do(func() {
		rec, runErr = recorder.New(recorder.Options{
			Source:    src,
			Locator:   loc,
			Opener:    opener,
			Scheduler: loop,
			Status:    status,
			Logger:    logger,
		}, cfg.Settings())
		if runErr != nil {
			return
		}
		var once sync.Once
		rec.AddListener(func(prev, next recorder.State) {
			if next == recorder.StateIdle {
				once.Do(func() { close(idle) })
			}
		})
		runErr = rec.Start(func() (string, bool) { return opts.RecordPath, true })
	})
	if runErr != nil {
		return runErr
	}

	var stop <-chan time.Time
	if opts.Duration > 0 {
		timer := time.NewTimer(opts.Duration)
		defer timer.Stop()
		stop = timer.C
	}
	var statsTick <-chan time.Time
	var stats *debug.StatsReporter
	if cfg.Debug {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		statsTick = t.C
		stats = debug.NewStatsReporter(5*time.Second, logger, rec.Stats, rec.Recording)
	}

wait:
	for {
		select {
		case <-ctx.Done():
			break wait
		case <-stop:
			break wait
		case <-idle:
			break wait
		case now := <-statsTick:
			loop.Do(func() { stats.Report(now) })
		}
	}

	var last recorder.Session
	loop.Do(func() {
		_ = rec.Stop()
		last = rec.LastSession()
	})
	if err := status.err(); err != nil {
		return err
	}
	logger.Info("recording finished", "path", last.Path, "frames", last.Frames)
	return nil
}
