package capture

import (
	"errors"
	"image"
)

var (
	// ErrDisplayUnavailable is returned when the primary display cannot be queried.
	ErrDisplayUnavailable = errors.New("capture: display unavailable")
	// ErrCaptureFailed wraps any platform error raised while grabbing pixels.
	ErrCaptureFailed = errors.New("capture: screen grab failed")
	// ErrCursorQueryFailed is returned when the pointer position cannot be read.
	ErrCursorQueryFailed = errors.New("capture: cursor query failed")
)

// Dimensions is the pixel size of the primary display. It is read once at
// startup and assumed stable for the process lifetime.
type Dimensions struct {
	Width  int
	Height int
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool { return d.Width > 0 && d.Height > 0 }

// Rect returns the full-display rectangle anchored at the origin.
func (d Dimensions) Rect() image.Rectangle { return image.Rect(0, 0, d.Width, d.Height) }

// Layout names the byte order of a RawFrame pixel.
type Layout int

const (
	LayoutRGBA Layout = iota
	LayoutBGRA
)

func (l Layout) String() string {
	switch l {
	case LayoutRGBA:
		return "rgba"
	case LayoutBGRA:
		return "bgra"
	default:
		return "unknown"
	}
}

// RawFrame is a 4-channel snapshot in the backend's native byte order. The
// fourth channel is alpha or padding and carries no meaning.
type RawFrame struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
	Layout Layout
}

// Empty reports whether the frame holds no pixels.
func (f RawFrame) Empty() bool { return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0 }

// Dimensions returns the frame size.
func (f RawFrame) Dimensions() Dimensions { return Dimensions{Width: f.Width, Height: f.Height} }

// Valid reports whether Pix is large enough for Width, Height and Stride.
func (f RawFrame) Valid() bool {
	if f.Empty() || f.Stride < f.Width*4 {
		return false
	}
	return len(f.Pix) >= (f.Height-1)*f.Stride+f.Width*4
}

// FromRGBA wraps img without copying. Sub-images are handled through the
// image's own stride and origin.
func FromRGBA(img *image.RGBA) RawFrame {
	if img == nil {
		return RawFrame{}
	}
	b := img.Bounds()
	return RawFrame{Pix: img.Pix, Stride: img.Stride, Width: b.Dx(), Height: b.Dy(), Layout: LayoutRGBA}
}

// ToRGBA copies the frame into a new opaque RGBA image anchored at the origin.
func (f RawFrame) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	if !f.Valid() {
		return dst
	}
	ri, bi := 0, 2
	if f.Layout == LayoutBGRA {
		ri, bi = 2, 0
	}
	for y := 0; y < f.Height; y++ {
		src := f.Pix[y*f.Stride : y*f.Stride+f.Width*4]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+f.Width*4]
		for i := 0; i < len(src); i += 4 {
			row[i+0] = src[i+ri]
			row[i+1] = src[i+1]
			row[i+2] = src[i+bi]
			row[i+3] = 0xFF
		}
	}
	return dst
}

// Source produces raw snapshots of the primary display. Implementations
// acquire and release their OS handles inside each call so Grab can be
// invoked tens of times per second without leaking.
type Source interface {
	Dimensions() (Dimensions, error)
	// Grab captures region; the zero rectangle selects the full primary display.
	Grab(region image.Rectangle) (RawFrame, error)
}

// Position is a screen-absolute pointer location.
type Position struct {
	X int
	Y int
}

// Locator reports the current pointer position.
type Locator interface {
	Position() (Position, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func() (Position, error)

func (f LocatorFunc) Position() (Position, error) { return f() }
