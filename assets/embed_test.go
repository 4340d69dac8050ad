package assets

import (
	"bytes"
	"testing"
)

func TestIconImage(t *testing.T) {
	img, err := IconImage()
	if err != nil {
		t.Fatalf("IconImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Fatalf("bounds %v", b)
	}
}

func TestIconICOWrapsPNG(t *testing.T) {
	if len(IconICO) < 22 || !bytes.Equal(IconICO[:4], []byte{0, 0, 1, 0}) {
		t.Fatalf("bad ico header")
	}
	if !bytes.Equal(IconICO[22:], IconPNG) {
		t.Fatalf("ico payload differs from png")
	}
}
