//go:build !windows

package capture

import "github.com/go-vgo/robotgo"

type systemLocator struct{}

// NewLocator returns the pointer locator for the running platform. Only the
// Windows locator can fail with ErrCursorQueryFailed; this one always
// reports a position, so frames here always carry the marker.
func NewLocator() Locator { return systemLocator{} }

// Position never fails here; robotgo reports the origin when no display
// connection is available.
func (systemLocator) Position() (Position, error) {
	x, y := robotgo.GetMousePos()
	return Position{X: x, Y: y}, nil
}
