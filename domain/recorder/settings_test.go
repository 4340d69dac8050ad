package recorder

import (
	"errors"
	"testing"
	"time"
)

func TestFrameInterval(t *testing.T) {
	cases := []struct {
		fps  int
		want time.Duration
	}{
		{20, 50 * time.Millisecond},
		{30, 33 * time.Millisecond},
		{60, 17 * time.Millisecond},
		{1, time.Second},
		{3, 333 * time.Millisecond},
		{0, 0},
	}
	for _, c := range cases {
		if got := FrameInterval(c.fps); got != c.want {
			t.Errorf("FrameInterval(%d)=%v want %v", c.fps, got, c.want)
		}
	}
}

func TestParseSettings(t *testing.T) {
	base := DefaultSettings()
	base.AutoMinimize = true
	got, err := ParseSettings(base, " 30 ", "5")
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if got.FrameRate != 30 || got.CursorRadius != 5 || !got.AutoMinimize || got.CursorColor != base.CursorColor {
		t.Fatalf("unexpected %+v", got)
	}
	for _, in := range [][2]string{{"abc", "5"}, {"30", "x"}, {"0", "5"}, {"30", "-1"}, {"121", "5"}, {"30", "201"}, {"", ""}} {
		out, err := ParseSettings(base, in[0], in[1])
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("ParseSettings(%q,%q) err=%v", in[0], in[1], err)
		}
		if out != base {
			t.Errorf("ParseSettings(%q,%q) changed settings", in[0], in[1])
		}
	}
}

func TestSettingsValidate_Bounds(t *testing.T) {
	cases := []struct {
		fps, radius int
		ok          bool
	}{
		{1, 1, true},
		{MaxFrameRate, MaxCursorRadius, true},
		{MaxFrameRate + 1, 10, false},
		{20, MaxCursorRadius + 1, false},
		{200, 300, false},
		{0, 10, false},
		{20, 0, false},
	}
	for _, c := range cases {
		s := DefaultSettings()
		s.FrameRate, s.CursorRadius = c.fps, c.radius
		err := s.Validate()
		if c.ok && err != nil {
			t.Errorf("Validate(%d,%d): %v", c.fps, c.radius, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("Validate(%d,%d) err=%v", c.fps, c.radius, err)
		}
	}
}
