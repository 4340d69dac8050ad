package model

import (
	"fmt"
	"time"
)

// FormatClock renders d as mm:ss, switching to h:mm:ss past an hour.
func FormatClock(d time.Duration) string {
	seconds := int(d.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	h, m, sec := seconds/3600, (seconds/60)%60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}
