package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"runtime"
)

// IconPNG contains the raw PNG bytes of the application icon.
//
//go:embed icon.png
var IconPNG []byte

// IconICO wraps the same icon for the Windows tray.
//
//go:embed icon.ico
var IconICO []byte

// TrayIcon returns the icon bytes in the format the platform tray expects.
func TrayIcon() []byte {
	if runtime.GOOS == "windows" {
		return IconICO
	}
	return IconPNG
}

// IconImage decodes the embedded PNG into an image.Image.
func IconImage() (image.Image, error) {
	if len(IconPNG) == 0 {
		return nil, fmt.Errorf("embedded icon.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(IconPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
