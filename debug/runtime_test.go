//go:build linux || darwin

package debug

import "testing"

func TestProcessRSS(t *testing.T) {
	rss, err := processRSS()
	if err != nil {
		t.Fatalf("processRSS: %v", err)
	}
	if rss == 0 {
		t.Fatalf("rss is zero")
	}
}
