//go:build windows

package capture

// GDI backend. Every Grab takes the screen DC, creates a memory DC and a
// top-down 32-bit DIB, BitBlts into it, copies the BGRA bytes into a Go
// slice and releases all GDI objects before returning.

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	smCxScreen   = 0
	smCyScreen   = 1
	srccopy      = 0x00CC0020
	captureblt   = 0x40000000
	dibRGBColors = 0
	biRgb        = 0
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	gdi32                  = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC              = user32.NewProc("GetDC")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procCreateCompatibleDC = gdi32.NewProc("CreateCompatibleDC")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procSelectObject       = gdi32.NewProc("SelectObject")
	procBitBlt             = gdi32.NewProc("BitBlt")
	procCreateDIBSection   = gdi32.NewProc("CreateDIBSection")
	procDeleteObject       = gdi32.NewProc("DeleteObject")
)

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	_      [4]byte // one RGBQUAD placeholder (unused for 32-bit)
}

type gdiSource struct{}

func newGDISource() (Source, error) { return gdiSource{}, nil }

func (gdiSource) Dimensions() (Dimensions, error) {
	d := Dimensions{Width: int(systemMetric(smCxScreen)), Height: int(systemMetric(smCyScreen))}
	if !d.Valid() {
		return Dimensions{}, fmt.Errorf("%w: GetSystemMetrics w=%d h=%d", ErrDisplayUnavailable, d.Width, d.Height)
	}
	return d, nil
}

func (s gdiSource) Grab(region image.Rectangle) (RawFrame, error) {
	d, err := s.Dimensions()
	if err != nil {
		return RawFrame{}, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	screen := d.Rect()
	if region.Empty() {
		region = screen
	}
	r := region.Intersect(screen)
	if r.Empty() {
		return RawFrame{}, fmt.Errorf("%w: region %v outside screen %v", ErrCaptureFailed, region, screen)
	}
	return grabRect(r)
}

// grabRect returns the pixels of r in native BGRA order.
func grabRect(r image.Rectangle) (RawFrame, error) {
	w, h := r.Dx(), r.Dy()

	screenDC, _, e := procGetDC.Call(0)
	if screenDC == 0 {
		return RawFrame{}, fmt.Errorf("%w: GetDC: %v", ErrCaptureFailed, e)
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, e := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return RawFrame{}, fmt.Errorf("%w: CreateCompatibleDC: %v", ErrCaptureFailed, e)
	}
	defer procDeleteDC.Call(memDC)

	var bi bitmapInfo
	bi.Header.BiSize = uint32(unsafe.Sizeof(bi.Header))
	bi.Header.BiWidth = int32(w)
	bi.Header.BiHeight = -int32(h) // top-down
	bi.Header.BiPlanes = 1
	bi.Header.BiBitCount = 32
	bi.Header.BiCompression = biRgb
	bi.Header.BiSizeImage = uint32(w * h * 4)

	var bits unsafe.Pointer
	bmp, _, e := procCreateDIBSection.Call(memDC, uintptr(unsafe.Pointer(&bi)), dibRGBColors, uintptr(unsafe.Pointer(&bits)), 0, 0)
	if bmp == 0 {
		return RawFrame{}, fmt.Errorf("%w: CreateDIBSection: %v", ErrCaptureFailed, e)
	}
	defer procDeleteObject.Call(bmp)

	prev, _, e := procSelectObject.Call(memDC, bmp)
	if prev == 0 || prev == ^uintptr(0) {
		return RawFrame{}, fmt.Errorf("%w: SelectObject: %v", ErrCaptureFailed, e)
	}
	defer procSelectObject.Call(memDC, prev)

	ok, _, e := procBitBlt.Call(memDC, 0, 0, uintptr(w), uintptr(h), screenDC, uintptr(r.Min.X), uintptr(r.Min.Y), srccopy|captureblt)
	if ok == 0 {
		return RawFrame{}, fmt.Errorf("%w: BitBlt %v: %v", ErrCaptureFailed, r, e)
	}

	n := w * h * 4
	pix := make([]byte, n)
	copy(pix, unsafe.Slice((*byte)(bits), n))
	return RawFrame{Pix: pix, Stride: w * 4, Width: w, Height: h, Layout: LayoutBGRA}, nil
}

func systemMetric(idx int) int32 {
	v, _, _ := procGetSystemMetrics.Call(uintptr(idx))
	return int32(v)
}
