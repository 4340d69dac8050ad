package compositor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/firescreen-go/domain/capture"
)

// ErrMalformedFrame is returned when a RawFrame's buffer does not match its
// declared geometry.
var ErrMalformedFrame = errors.New("compositor: malformed raw frame")

// RGB is the canonical colour order used by the compositor, the settings and
// the colour picker.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// ParseHex parses "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("compositor: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("compositor: invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Style describes the cursor marker.
type Style struct {
	Radius int
	Color  RGB
}

// Frame is a packed 3-channel RGB image; Pix has exactly Width*Height*3 bytes.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// Stride is the byte length of one row.
func (f Frame) Stride() int { return f.Width * 3 }

// Empty reports whether the frame holds no pixels.
func (f Frame) Empty() bool { return f.Width <= 0 || f.Height <= 0 || len(f.Pix) == 0 }

// At returns the colour at (x, y). Out-of-range coordinates return black.
func (f Frame) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return RGB{}
	}
	i := (y*f.Width + x) * 3
	return RGB{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2]}
}

// Composite reduces raw to RGB and draws a filled disc of style at cursor.
// A nil cursor draws no marker. The result depends only on its inputs.
func Composite(raw capture.RawFrame, cursor *capture.Position, style Style) (Frame, error) {
	if !raw.Valid() {
		return Frame{}, fmt.Errorf("%w: %dx%d stride=%d len=%d", ErrMalformedFrame, raw.Width, raw.Height, raw.Stride, len(raw.Pix))
	}
	out := Frame{Pix: make([]byte, raw.Width*raw.Height*3), Width: raw.Width, Height: raw.Height}
	compositeInto(out, raw, cursor, style)
	return out, nil
}

// Compositor is Composite with pooled output buffers. Frames it returns
// should be handed back with Release once the sink has consumed them.
type Compositor struct {
	pool framePool
}

// New returns a ready Compositor.
func New() *Compositor { return &Compositor{} }

func (c *Compositor) Composite(raw capture.RawFrame, cursor *capture.Position, style Style) (Frame, error) {
	if !raw.Valid() {
		return Frame{}, fmt.Errorf("%w: %dx%d stride=%d len=%d", ErrMalformedFrame, raw.Width, raw.Height, raw.Stride, len(raw.Pix))
	}
	out := c.pool.acquire(raw.Width, raw.Height)
	compositeInto(out, raw, cursor, style)
	return out, nil
}

// Release returns f's buffer to the pool. f must not be used afterwards.
func (c *Compositor) Release(f Frame) { c.pool.recycle(f) }

func compositeInto(dst Frame, raw capture.RawFrame, cursor *capture.Position, style Style) {
	reduce(dst, raw)
	if cursor != nil {
		drawDisc(dst, cursor.X, cursor.Y, style.Radius, style.Color)
	}
}

// reduce drops the fourth channel and reorders to RGB.
func reduce(dst Frame, raw capture.RawFrame) {
	ri, bi := 0, 2
	if raw.Layout == capture.LayoutBGRA {
		ri, bi = 2, 0
	}
	w := raw.Width
	for y := 0; y < raw.Height; y++ {
		src := raw.Pix[y*raw.Stride : y*raw.Stride+w*4]
		row := dst.Pix[y*w*3 : (y+1)*w*3]
		for s, d := 0, 0; s < len(src); s, d = s+4, d+3 {
			row[d+0] = src[s+ri]
			row[d+1] = src[s+1]
			row[d+2] = src[s+bi]
		}
	}
}

// drawDisc fills every pixel with dx²+dy² <= r², clipped to the frame.
func drawDisc(f Frame, cx, cy, r int, c RGB) {
	if r <= 0 {
		return
	}
	x0, x1 := max(cx-r, 0), min(cx+r, f.Width-1)
	y0, y1 := max(cy-r, 0), min(cy+r, f.Height-1)
	if x0 > x1 || y0 > y1 {
		return
	}
	rr := r * r
	for y := y0; y <= y1; y++ {
		dy := y - cy
		for x := x0; x <= x1; x++ {
			dx := x - cx
			if dx*dx+dy*dy > rr {
				continue
			}
			i := (y*f.Width + x) * 3
			f.Pix[i+0] = c.R
			f.Pix[i+1] = c.G
			f.Pix[i+2] = c.B
		}
	}
}
