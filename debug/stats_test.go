package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/soocke/firescreen-go/domain/recorder"
)

func TestStatsReporter_Throttles(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	active := true
	r := NewStatsReporter(time.Second, logger, func() recorder.Stats {
		return recorder.Stats{Ticks: 7, Frames: 6}
	}, func() bool { return active })

	base := time.Unix(0, 0)
	if !r.Report(base) {
		t.Fatalf("first report suppressed")
	}
	if r.Report(base.Add(500 * time.Millisecond)) {
		t.Fatalf("report inside interval")
	}
	if !r.Report(base.Add(time.Second)) {
		t.Fatalf("report after interval suppressed")
	}
	active = false
	if r.Report(base.Add(5 * time.Second)) {
		t.Fatalf("report while idle")
	}
	if n := strings.Count(buf.String(), `"recorder-stats"`); n != 2 {
		t.Fatalf("logged %d lines", n)
	}
	if !strings.Contains(buf.String(), `"frames":6`) {
		t.Fatalf("missing frames field: %s", buf.String())
	}
}
