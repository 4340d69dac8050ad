package recorder

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/soocke/firescreen-go/domain/capture"
	"github.com/soocke/firescreen-go/domain/compositor"
	"github.com/soocke/firescreen-go/domain/encoder"
)

// State enumerates the recording states.
type State int

const (
	StateIdle State = iota
	StateRecording
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	default:
		return "unknown"
	}
}

// StateListener is called after every state change.
type StateListener func(prev, next State)

// OutputSelector asks for an output path. ok=false means the user cancelled.
type OutputSelector func() (path string, ok bool)

// Session describes one recording from Start to Stop.
type Session struct {
	Path      string
	Codec     encoder.Codec
	FrameRate int
	Interval  time.Duration
	StartedAt time.Time
	Frames    int
}

// Options carries the collaborators of a Controller. Source, Opener and
// Scheduler are required.
type Options struct {
	Source    capture.Source
	Locator   capture.Locator
	Opener    encoder.Opener
	Scheduler Scheduler
	Status    Status
	Logger    *slog.Logger
	Now       func() time.Time
}

// Controller drives the capture loop: grab, locate cursor, composite and
// write once per tick, rescheduling itself with a fixed delay measured from
// the end of the previous tick. All methods must be called from the
// scheduler's timeline; nothing here is locked.
type Controller struct {
	source     capture.Source
	locator    capture.Locator
	opener     encoder.Opener
	sched      Scheduler
	status     Status
	logger     *slog.Logger
	now        func() time.Time
	compositor *compositor.Compositor

	dims     capture.Dimensions
	settings Settings

	// sink is non-nil iff session is non-nil.
	session  *Session
	sink     encoder.Sink
	cancel   func()
	starting bool

	last      Session
	stats     tickStats
	listeners []StateListener
}

// New validates settings, reads the display dimensions once and returns an
// idle controller.
func New(opts Options, settings Settings) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if opts.Source == nil || opts.Opener == nil || opts.Scheduler == nil {
		return nil, errors.New("recorder: source, opener and scheduler are required")
	}
	dims, err := opts.Source.Dimensions()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		source:     opts.Source,
		locator:    opts.Locator,
		opener:     opts.Opener,
		sched:      opts.Scheduler,
		status:     opts.Status,
		logger:     opts.Logger,
		now:        opts.Now,
		compositor: compositor.New(),
		dims:       dims,
		settings:   settings,
	}
	if c.status == nil {
		c.status = nopStatus{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c, nil
}

// AddListener registers l for state changes.
func (c *Controller) AddListener(l StateListener) { c.listeners = append(c.listeners, l) }

func (c *Controller) State() State {
	if c.session != nil {
		return StateRecording
	}
	return StateIdle
}

func (c *Controller) Recording() bool { return c.session != nil }

// Dimensions returns the display size read at construction.
func (c *Controller) Dimensions() capture.Dimensions { return c.dims }

// Session returns the active session.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// LastSession returns the most recently finished session.
func (c *Controller) LastSession() Session { return c.last }

func (c *Controller) Settings() Settings { return c.settings }

// ApplySettings replaces the settings. A running session picks them up on
// its next tick.
func (c *Controller) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.settings = s
	c.status.Info(fmt.Sprintf("Frame rate set to %d fps", s.FrameRate))
	return nil
}

// Stats reports tick statistics for the active or last session.
func (c *Controller) Stats() Stats {
	started := c.last.StartedAt
	if c.session != nil {
		started = c.session.StartedAt
	}
	return c.stats.snapshot(started, c.now())
}

// Toggle starts when idle and stops when recording.
func (c *Controller) Toggle(selectOutput OutputSelector) error {
	if c.Recording() {
		return c.Stop()
	}
	return c.Start(selectOutput)
}

// Start asks for an output path, opens the sink and schedules the first
// tick. It is a no-op while recording. A cancelled selection returns nil
// with no state change; format and open failures are reported and returned.
func (c *Controller) Start(selectOutput OutputSelector) error {
	if c.session != nil || c.starting {
		return nil
	}
	// The selector may run a nested UI loop; block re-entry meanwhile.
	c.starting = true
	defer func() { c.starting = false }()

	var (
		path string
		ok   bool
	)
	if selectOutput != nil {
		path, ok = selectOutput()
	}
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		c.logger.Debug("recording start cancelled")
		return nil
	}
	codec, err := encoder.Lookup(path)
	if err != nil {
		err = fmt.Errorf("cannot record to %s: %w", path, err)
		c.status.Error(err)
		return err
	}
	settings := c.settings
	sink, err := c.opener.Open(path, settings.FrameRate, c.dims)
	if err != nil {
		err = fmt.Errorf("cannot record to %s: %w", path, err)
		c.status.Error(err)
		return err
	}
	c.sink = sink
	c.session = &Session{
		Path:      path,
		Codec:     codec,
		FrameRate: settings.FrameRate,
		Interval:  settings.FrameInterval(),
		StartedAt: c.now(),
	}
	c.stats.reset()
	c.logger.Info("recording started", "path", path, "codec", codec.Tag, "fps", settings.FrameRate, "width", c.dims.Width, "height", c.dims.Height)
	c.status.Info(fmt.Sprintf("Recording started: %s (%s, %d fps)", path, codec.Container, settings.FrameRate))
	c.setState(StateIdle, StateRecording)
	c.schedule(0)
	return nil
}

// Stop cancels the pending tick and finalises the output. It is a no-op
// while idle. A finalisation error is reported and returned; the controller
// is idle either way.
func (c *Controller) Stop() error {
	if c.session == nil {
		return nil
	}
	sess, err := c.teardown()
	if err != nil {
		err = fmt.Errorf("finalising %s: %w", sess.Path, err)
		c.status.Error(err)
		return err
	}
	elapsed := c.now().Sub(sess.StartedAt).Round(100 * time.Millisecond)
	c.logger.Info("recording stopped", "path", sess.Path, "frames", sess.Frames, "elapsed", elapsed)
	c.status.Info(fmt.Sprintf("Recording stopped: %s (%d frames, %s)", sess.Path, sess.Frames, elapsed))
	return nil
}

func (c *Controller) schedule(d time.Duration) {
	c.cancel = c.sched.After(d, c.tick)
}

func (c *Controller) tick() {
	c.cancel = nil
	if c.session == nil || c.sink == nil {
		return
	}
	start := c.now()
	err := c.captureFrame()
	c.stats.observe(start, c.now().Sub(start), err == nil)
	if err != nil {
		c.fail(err)
		return
	}
	c.schedule(c.settings.FrameInterval())
}

func (c *Controller) captureFrame() error {
	raw, err := c.source.Grab(image.Rectangle{})
	if err != nil {
		if !errors.Is(err, capture.ErrCaptureFailed) {
			err = fmt.Errorf("%w: %w", capture.ErrCaptureFailed, err)
		}
		return err
	}
	var cursor *capture.Position
	if c.locator != nil {
		if pos, err := c.locator.Position(); err == nil {
			cursor = &pos
		} else {
			c.stats.cursorMisses++
			c.logger.Debug("cursor query failed, frame without marker", "error", err)
		}
	}
	s := c.settings
	frame, err := c.compositor.Composite(raw, cursor, s.Style())
	if err != nil {
		return fmt.Errorf("%w: %w", capture.ErrCaptureFailed, err)
	}
	defer c.compositor.Release(frame)
	if err := c.sink.Write(frame); err != nil {
		if !errors.Is(err, encoder.ErrWriteFailed) {
			err = fmt.Errorf("%w: %w", encoder.ErrWriteFailed, err)
		}
		return err
	}
	c.session.Frames++
	return nil
}

// fail ends the session after a runtime error and reports it once.
func (c *Controller) fail(cause error) {
	sess, closeErr := c.teardown()
	if closeErr != nil {
		c.logger.Warn("finalise after failure", "path", sess.Path, "error", closeErr)
	}
	c.logger.Error("recording aborted", "path", sess.Path, "frames", sess.Frames, "error", cause)
	c.status.Error(fmt.Errorf("recording stopped after %d frames: %w", sess.Frames, cause))
}

// teardown cancels the pending tick, closes the sink and clears the session.
func (c *Controller) teardown() (Session, error) {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	sess := *c.session
	err := c.sink.Close()
	c.sink = nil
	c.session = nil
	c.last = sess
	c.setState(StateRecording, StateIdle)
	return sess, err
}

func (c *Controller) setState(prev, next State) {
	if prev == next {
		return
	}
	c.logger.Debug("recorder state transition", "from", prev.String(), "to", next.String())
	for _, l := range c.listeners {
		l(prev, next)
	}
}
