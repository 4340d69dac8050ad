package capture

import (
	"image"
	"image/color"
	"testing"
)

func TestRawFrame_ToRGBA_SwapsBGRA(t *testing.T) {
	f := RawFrame{
		Pix:    []byte{10, 20, 30, 0, 40, 50, 60, 0},
		Stride: 8,
		Width:  2,
		Height: 1,
		Layout: LayoutBGRA,
	}
	img := f.ToRGBA()
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 30, G: 20, B: 10, A: 255}) {
		t.Fatalf("pixel 0: got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 60, G: 50, B: 40, A: 255}) {
		t.Fatalf("pixel 1: got %v", got)
	}
}

func TestFromRGBA_SubImageKeepsStride(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(3, 4, color.RGBA{R: 1, G: 2, B: 3, A: 4})
	sub := src.SubImage(image.Rect(3, 4, 6, 8)).(*image.RGBA)
	f := FromRGBA(sub)
	if f.Width != 3 || f.Height != 4 || f.Stride != 40 {
		t.Fatalf("unexpected frame geometry %dx%d stride=%d", f.Width, f.Height, f.Stride)
	}
	if !f.Valid() {
		t.Fatalf("sub-image frame should be valid")
	}
	if got := f.ToRGBA().RGBAAt(0, 0); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("origin pixel: got %v", got)
	}
}

func TestRawFrame_Valid(t *testing.T) {
	cases := []struct {
		name string
		f    RawFrame
		want bool
	}{
		{"empty", RawFrame{}, false},
		{"short stride", RawFrame{Pix: make([]byte, 16), Stride: 4, Width: 2, Height: 2}, false},
		{"short pix", RawFrame{Pix: make([]byte, 12), Stride: 8, Width: 2, Height: 2}, false},
		{"exact", RawFrame{Pix: make([]byte, 16), Stride: 8, Width: 2, Height: 2}, true},
	}
	for _, tc := range cases {
		if got := tc.f.Valid(); got != tc.want {
			t.Errorf("%s: Valid()=%v want %v", tc.name, got, tc.want)
		}
	}
}

func TestNewSource_UnknownBackend(t *testing.T) {
	if _, err := NewSource("vnc"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
	for _, name := range []string{"", "kbinani", "KBINANI", " vova616 "} {
		if src, err := NewSource(name); err != nil || src == nil {
			t.Fatalf("NewSource(%q): src=%v err=%v", name, src, err)
		}
	}
}
