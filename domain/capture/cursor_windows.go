//go:build windows

package capture

import (
	"fmt"
	"unsafe"
)

var procGetCursorPos = user32.NewProc("GetCursorPos")

type point struct{ X, Y int32 }

type systemLocator struct{}

// NewLocator returns the pointer locator for the running platform. A failed
// GetCursorPos query yields ErrCursorQueryFailed and the frame has no marker.
func NewLocator() Locator { return systemLocator{} }

func (systemLocator) Position() (Position, error) {
	var pt point
	ok, _, e := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return Position{}, fmt.Errorf("%w: GetCursorPos: %v", ErrCursorQueryFailed, e)
	}
	return Position{X: int(pt.X), Y: int(pt.Y)}, nil
}
