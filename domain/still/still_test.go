package still

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/soocke/firescreen-go/domain/capture"
)

type fakeDisplay struct {
	w, h  int
	err   error
	grabs int
}

func (d *fakeDisplay) Dimensions() (capture.Dimensions, error) {
	return capture.Dimensions{Width: d.w, Height: d.h}, d.err
}

func (d *fakeDisplay) Grab(image.Rectangle) (capture.RawFrame, error) {
	d.grabs++
	if d.err != nil {
		return capture.RawFrame{}, d.err
	}
	img := image.NewRGBA(image.Rect(0, 0, d.w, d.h))
	for y := 0; y < d.h; y++ {
		for x := 0; x < d.w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return capture.FromRGBA(img), nil
}

type fakeWindow struct{ minimized, restored int }

func (w *fakeWindow) Minimize() { w.minimized++ }
func (w *fakeWindow) Restore()  { w.restored++ }

type fakeClipboard struct{ data []byte }

func (c *fakeClipboard) WriteImage(b []byte) error { c.data = b; return nil }

func TestCapture_FullResolutionNoMarker(t *testing.T) {
	d := &fakeDisplay{w: 1920, h: 1080}
	out := filepath.Join(t.TempDir(), "shot.png")
	got, err := New(d, nil).Capture(out)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got != out {
		t.Fatalf("path %q", got)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1920 || b.Dy() != 1080 {
		t.Fatalf("bounds %v", b)
	}
	// Pixels match the display exactly, so nothing was drawn over them.
	for _, p := range []image.Point{{0, 0}, {960, 540}, {100, 50}} {
		r, g, b, _ := img.At(p.X, p.Y).RGBA()
		if uint8(r>>8) != uint8(p.X) || uint8(g>>8) != uint8(p.Y) || uint8(b>>8) != 7 {
			t.Fatalf("pixel %v = %d,%d,%d", p, r>>8, g>>8, b>>8)
		}
	}
}

func TestCapture_DefaultExtensionAndFormats(t *testing.T) {
	dir := t.TempDir()
	d := &fakeDisplay{w: 16, h: 9}
	c := New(d, nil)
	got, err := c.Capture(filepath.Join(dir, "noext"))
	if err != nil || filepath.Ext(got) != ".png" {
		t.Fatalf("got %q err=%v", got, err)
	}
	for _, name := range []string{"a.jpg", "b.JPEG", "c.bmp", "d.tif", "e.gif"} {
		p := filepath.Join(dir, name)
		if _, err := c.Capture(p); err != nil {
			t.Fatalf("Capture(%s): %v", name, err)
		}
		img, err := imaging.Open(p)
		if err != nil {
			t.Fatalf("reopen %s: %v", name, err)
		}
		if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
			t.Fatalf("%s bounds %v", name, img.Bounds())
		}
	}
}

func TestCapture_Failures(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(&fakeDisplay{w: 4, h: 4}, nil).Capture(filepath.Join(dir, "x.webp")); !errors.Is(err, ErrStillCaptureFailed) {
		t.Fatalf("unsupported extension: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x.webp")); !os.IsNotExist(err) {
		t.Fatalf("file created for unsupported extension")
	}
	d := &fakeDisplay{err: capture.ErrDisplayUnavailable}
	if _, err := New(d, nil).Capture(filepath.Join(dir, "y.png")); !errors.Is(err, ErrStillCaptureFailed) || !errors.Is(err, capture.ErrDisplayUnavailable) {
		t.Fatalf("display error: %v", err)
	}
	if _, err := New(&fakeDisplay{w: 4, h: 4}, nil).Capture(filepath.Join(dir, "missing", "z.png")); !errors.Is(err, ErrStillCaptureFailed) {
		t.Fatalf("bad dir: %v", err)
	}
}

func TestTake_MinimizeRestoreAndCancel(t *testing.T) {
	d := &fakeDisplay{w: 4, h: 4}
	w := &fakeWindow{}
	c := New(d, nil)
	path, err := c.Take(func() (string, bool) { return "", false }, w, true)
	if path != "" || err != nil {
		t.Fatalf("cancel: %q %v", path, err)
	}
	if w.minimized != 1 || w.restored != 1 || d.grabs != 0 {
		t.Fatalf("cancel: minimized=%d restored=%d grabs=%d", w.minimized, w.restored, d.grabs)
	}

	out := filepath.Join(t.TempDir(), "s.png")
	if _, err := c.Take(func() (string, bool) { return out, true }, w, false); err != nil {
		t.Fatalf("Take: %v", err)
	}
	if w.minimized != 1 || w.restored != 1 || d.grabs != 1 {
		t.Fatalf("no-minimize: minimized=%d restored=%d grabs=%d", w.minimized, w.restored, d.grabs)
	}
}

func TestCapture_CopiesToClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	c := New(&fakeDisplay{w: 3, h: 2}, nil, WithClipboard(cb))
	if _, err := c.Capture(filepath.Join(t.TempDir(), "c.jpg")); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if len(cb.data) < 8 || string(cb.data[1:4]) != "PNG" {
		t.Fatalf("clipboard did not receive a PNG")
	}
}
