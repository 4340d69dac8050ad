// Package still writes single full-resolution screenshots without the cursor
// marker.
package still

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/soocke/firescreen-go/domain/capture"
)

// ErrStillCaptureFailed wraps every failure of the still path.
var ErrStillCaptureFailed = errors.New("still: capture failed")

// DefaultExtension is appended when the chosen path has none.
const DefaultExtension = ".png"

// Window is the main window as seen by the still path.
type Window interface {
	Minimize()
	Restore()
}

// Selector asks for an output path. ok=false means the user cancelled.
type Selector func() (path string, ok bool)

// Capturer grabs the whole display and encodes it by file extension.
type Capturer struct {
	source    capture.Source
	clipboard Clipboard
	logger    *slog.Logger
	// settle gives the window manager time to hide a minimised window.
	settle time.Duration
}

// Option configures a Capturer.
type Option func(*Capturer)

// WithClipboard copies every saved still to cb as PNG.
func WithClipboard(cb Clipboard) Option { return func(c *Capturer) { c.clipboard = cb } }

// WithSettleDelay waits d after minimising before grabbing.
func WithSettleDelay(d time.Duration) Option { return func(c *Capturer) { c.settle = d } }

func New(source capture.Source, logger *slog.Logger, opts ...Option) *Capturer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Capturer{source: source, logger: logger}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Take minimises win when autoMinimize is set, asks for a path and saves the
// still. The window is restored on every path. A cancelled selection returns
// ("", nil).
func (c *Capturer) Take(selectOutput Selector, win Window, autoMinimize bool) (string, error) {
	if autoMinimize && win != nil {
		win.Minimize()
		defer win.Restore()
	}
	path, ok := "", false
	if selectOutput != nil {
		path, ok = selectOutput()
	}
	path = strings.TrimSpace(path)
	if !ok || path == "" {
		c.logger.Debug("screenshot cancelled")
		return "", nil
	}
	if autoMinimize && win != nil && c.settle > 0 {
		time.Sleep(c.settle)
	}
	return c.Capture(path)
}

// Capture grabs the display and writes it to path, returning the path
// actually written. A partially written file is removed on failure.
func (c *Capturer) Capture(path string) (string, error) {
	if filepath.Ext(path) == "" {
		path += DefaultExtension
	}
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrStillCaptureFailed, path, err)
	}
	if _, err := c.source.Dimensions(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStillCaptureFailed, err)
	}
	raw, err := c.source.Grab(image.Rectangle{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStillCaptureFailed, err)
	}
	if !raw.Valid() {
		return "", fmt.Errorf("%w: malformed frame %dx%d", ErrStillCaptureFailed, raw.Width, raw.Height)
	}
	img := raw.ToRGBA()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStillCaptureFailed, err)
	}
	if err := imaging.Encode(f, img, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: encode %s: %w", ErrStillCaptureFailed, path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("%w: %w", ErrStillCaptureFailed, err)
	}
	c.logger.Info("screenshot saved", "path", path, "format", format.String(), "width", img.Rect.Dx(), "height", img.Rect.Dy())
	c.copyToClipboard(img)
	return path, nil
}

func (c *Capturer) copyToClipboard(img image.Image) {
	if c.clipboard == nil {
		return
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		c.logger.Warn("clipboard encode failed", "error", err)
		return
	}
	if err := c.clipboard.WriteImage(buf.Bytes()); err != nil {
		c.logger.Warn("clipboard copy failed", "error", err)
	}
}
