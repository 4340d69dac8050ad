package still

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard receives PNG-encoded stills.
type Clipboard interface {
	WriteImage(png []byte) error
}

// SystemClipboard writes to the OS clipboard. The backend is initialised on
// first use.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

func (c *SystemClipboard) WriteImage(png []byte) error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.initErr = fmt.Errorf("clipboard unavailable: %w", err)
		}
	})
	if c.initErr != nil {
		return c.initErr
	}
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
