package recorder

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/firescreen-go/domain/compositor"
)

// ErrInvalidConfiguration is returned for settings that must never reach the
// capture loop (frame rate or cursor size out of range).
var ErrInvalidConfiguration = errors.New("recorder: invalid configuration")

// Upper bounds accepted by Validate.
const (
	MaxFrameRate    = 120
	MaxCursorRadius = 200
)

// Settings are the user-tunable recording parameters. The controller owns
// the current value; the settings dialog replaces it wholesale on apply.
type Settings struct {
	FrameRate    int
	CursorRadius int
	CursorColor  compositor.RGB
	AutoMinimize bool
}

// DefaultSettings returns 20 fps with a green 10px cursor marker.
func DefaultSettings() Settings {
	return Settings{
		FrameRate:    20,
		CursorRadius: 10,
		CursorColor:  compositor.RGB{G: 255},
		AutoMinimize: false,
	}
}

// Validate rejects a frame rate outside 1..MaxFrameRate and a cursor radius
// outside 1..MaxCursorRadius.
func (s Settings) Validate() error {
	if s.FrameRate <= 0 || s.FrameRate > MaxFrameRate {
		return fmt.Errorf("%w: frame rate must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxFrameRate, s.FrameRate)
	}
	if s.CursorRadius <= 0 || s.CursorRadius > MaxCursorRadius {
		return fmt.Errorf("%w: cursor size must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxCursorRadius, s.CursorRadius)
	}
	return nil
}

// FrameInterval is the delay between ticks for these settings.
func (s Settings) FrameInterval() time.Duration { return FrameInterval(s.FrameRate) }

// Style returns the compositor style for the cursor marker.
func (s Settings) Style() compositor.Style {
	return compositor.Style{Radius: s.CursorRadius, Color: s.CursorColor}
}

// FrameInterval returns round(1000/fps) milliseconds. fps must be positive.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(math.Round(1000/float64(fps))) * time.Millisecond
}

// ParseSettings builds Settings from the text fields of the settings dialog,
// keeping colour and auto-minimise from base.
func ParseSettings(base Settings, frameRate, cursorRadius string) (Settings, error) {
	fps, err := strconv.Atoi(strings.TrimSpace(frameRate))
	if err != nil {
		return base, fmt.Errorf("%w: frame rate %q is not an integer", ErrInvalidConfiguration, strings.TrimSpace(frameRate))
	}
	radius, err := strconv.Atoi(strings.TrimSpace(cursorRadius))
	if err != nil {
		return base, fmt.Errorf("%w: cursor size %q is not an integer", ErrInvalidConfiguration, strings.TrimSpace(cursorRadius))
	}
	next := base
	next.FrameRate = fps
	next.CursorRadius = radius
	if err := next.Validate(); err != nil {
		return base, err
	}
	return next, nil
}
