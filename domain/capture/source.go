package capture

import (
	"fmt"
	"image"
	"strings"

	kscreen "github.com/kbinani/screenshot"
	vscreen "github.com/vova616/screenshot"
)

// Backend names accepted by NewSource.
const (
	BackendKbinani = "kbinani"
	BackendVova    = "vova616"
	BackendGDI     = "gdi"
)

// NewSource returns the display source for backend. An empty name selects
// the default kbinani backend.
func NewSource(backend string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendKbinani:
		return kbinaniSource{}, nil
	case BackendVova:
		return vovaSource{}, nil
	case BackendGDI:
		return newGDISource()
	default:
		return nil, fmt.Errorf("capture: unknown backend %q", backend)
	}
}

// kbinaniSource captures display 0, which the library reports as the primary.
type kbinaniSource struct{}

func (kbinaniSource) Dimensions() (Dimensions, error) {
	if kscreen.NumActiveDisplays() == 0 {
		return Dimensions{}, fmt.Errorf("%w: no active displays", ErrDisplayUnavailable)
	}
	b := kscreen.GetDisplayBounds(0)
	d := Dimensions{Width: b.Dx(), Height: b.Dy()}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: bounds %v", ErrDisplayUnavailable, b)
	}
	return d, nil
}

func (kbinaniSource) Grab(region image.Rectangle) (RawFrame, error) {
	if region.Empty() {
		if kscreen.NumActiveDisplays() == 0 {
			return RawFrame{}, fmt.Errorf("%w: no active displays", ErrCaptureFailed)
		}
		region = kscreen.GetDisplayBounds(0)
	}
	img, err := kscreen.CaptureRect(region)
	if err != nil {
		return RawFrame{}, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	return FromRGBA(img), nil
}

// vovaSource uses the screenshot package the detection bot was built on.
type vovaSource struct{}

func (vovaSource) Dimensions() (Dimensions, error) {
	r, err := vscreen.ScreenRect()
	if err != nil {
		return Dimensions{}, fmt.Errorf("%w: %w", ErrDisplayUnavailable, err)
	}
	d := Dimensions{Width: r.Dx(), Height: r.Dy()}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: bounds %v", ErrDisplayUnavailable, r)
	}
	return d, nil
}

func (vovaSource) Grab(region image.Rectangle) (RawFrame, error) {
	if region.Empty() {
		r, err := vscreen.ScreenRect()
		if err != nil {
			return RawFrame{}, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
		}
		region = r
	}
	img, err := vscreen.CaptureRect(region)
	if err != nil {
		return RawFrame{}, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	return FromRGBA(img), nil
}
