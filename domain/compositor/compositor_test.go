package compositor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/soocke/firescreen-go/domain/capture"
)

// patternFrame returns a w x h raw frame with a deterministic gradient.
func patternFrame(w, h int, layout capture.Layout) capture.RawFrame {
	pix := make([]byte, w*h*4)
	for i := range pix {
		pix[i] = byte(i * 7)
	}
	return capture.RawFrame{Pix: pix, Stride: w * 4, Width: w, Height: h, Layout: layout}
}

var green = Style{Radius: 3, Color: RGB{G: 255}}

func TestComposite_ReducesChannelsToRGB(t *testing.T) {
	raw := capture.RawFrame{Pix: []byte{1, 2, 3, 99, 4, 5, 6, 99}, Stride: 8, Width: 2, Height: 1, Layout: capture.LayoutBGRA}
	out, err := Composite(raw, nil, green)
	if err != nil {
		t.Fatalf("composite: %v", err)
	}
	want := []byte{3, 2, 1, 6, 5, 4}
	if !bytes.Equal(out.Pix, want) {
		t.Fatalf("bgra reduce: got %v want %v", out.Pix, want)
	}

	raw.Layout = capture.LayoutRGBA
	out, _ = Composite(raw, nil, green)
	want = []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(out.Pix, want) {
		t.Fatalf("rgba reduce: got %v want %v", out.Pix, want)
	}
}

func TestComposite_Deterministic(t *testing.T) {
	raw := patternFrame(32, 24, capture.LayoutBGRA)
	pos := &capture.Position{X: 10, Y: 12}
	a, _ := Composite(raw, pos, green)
	b, _ := Composite(raw, pos, green)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("identical inputs produced different frames")
	}
	c := New()
	pooled, _ := c.Composite(raw, pos, green)
	if !bytes.Equal(a.Pix, pooled.Pix) {
		t.Fatalf("pooled compositor differs from Composite")
	}
	c.Release(pooled)
	// Reused buffer must be fully overwritten.
	again, _ := c.Composite(raw, pos, green)
	if !bytes.Equal(a.Pix, again.Pix) {
		t.Fatalf("recycled buffer leaked previous content")
	}
}

func TestComposite_DrawsFilledDisc(t *testing.T) {
	raw := capture.RawFrame{Pix: make([]byte, 20*20*4), Stride: 80, Width: 20, Height: 20}
	out, _ := Composite(raw, &capture.Position{X: 10, Y: 10}, green)
	for _, p := range [][2]int{{10, 10}, {13, 10}, {7, 10}, {10, 13}, {10, 7}, {12, 12}} {
		if got := out.At(p[0], p[1]); got != green.Color {
			t.Errorf("pixel %v inside disc: got %v", p, got)
		}
	}
	for _, p := range [][2]int{{13, 13}, {7, 7}, {14, 10}, {10, 6}} {
		if got := out.At(p[0], p[1]); got != (RGB{}) {
			t.Errorf("pixel %v outside disc was painted: %v", p, got)
		}
	}
}

func TestComposite_ClipsAtEdges(t *testing.T) {
	raw := capture.RawFrame{Pix: make([]byte, 10*10*4), Stride: 40, Width: 10, Height: 10}
	out, err := Composite(raw, &capture.Position{X: 0, Y: 9}, Style{Radius: 4, Color: RGB{R: 255}})
	if err != nil {
		t.Fatalf("composite: %v", err)
	}
	if got := out.At(0, 9); got != (RGB{R: 255}) {
		t.Fatalf("corner pixel not painted: %v", got)
	}
	if got := out.At(4, 9); got != (RGB{R: 255}) {
		t.Fatalf("edge pixel at radius not painted: %v", got)
	}
	if got := out.At(5, 9); got != (RGB{}) {
		t.Fatalf("pixel beyond radius painted: %v", got)
	}
}

func TestComposite_CursorFarOutsideLeavesFrameUntouched(t *testing.T) {
	raw := patternFrame(16, 16, capture.LayoutRGBA)
	plain, _ := Composite(raw, nil, green)
	for _, pos := range []capture.Position{
		{X: -green.Radius - 1, Y: 5},
		{X: 16 + green.Radius, Y: 5},
		{X: 5, Y: -100},
		{X: 5, Y: 16 + green.Radius},
		{X: -1 << 20, Y: 1 << 20},
	} {
		p := pos
		out, err := Composite(raw, &p, green)
		if err != nil {
			t.Fatalf("composite %v: %v", pos, err)
		}
		if !bytes.Equal(out.Pix, plain.Pix) {
			t.Fatalf("cursor at %v modified the frame", pos)
		}
	}
}

func TestComposite_RejectsMalformedFrame(t *testing.T) {
	raw := capture.RawFrame{Pix: make([]byte, 8), Stride: 8, Width: 2, Height: 2}
	if _, err := Composite(raw, nil, green); !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2B3c")
	if err != nil || c != (RGB{R: 0x1a, G: 0x2b, B: 0x3c}) {
		t.Fatalf("ParseHex: got %v err=%v", c, err)
	}
	if c.Hex() != "#1a2b3c" {
		t.Fatalf("Hex round trip: %s", c.Hex())
	}
	for _, bad := range []string{"", "#12345", "#gg0000", "1234567"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}
