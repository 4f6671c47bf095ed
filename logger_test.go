package meshwarp

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should not be enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	e := NewEngine(monoMeasurer{}, DefaultConfig())
	obj := hello()
	e.Grid(obj)
	obj.X = 40
	e.Grid(obj)
	e.Detach(obj)

	out := buf.String()
	for _, want := range []string{"meshwarp: rebuild", "meshwarp: translate", "dx=40", "meshwarp: detach"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventRebuild, "rebuild"},
		{EventRescale, "rescale"},
		{EventRestore, "restore"},
		{EventDetach, "detach"},
		{EventDragStart, "drag-start"},
		{EventDrag, "drag"},
		{EventDragEnd, "drag-end"},
		{EventReset, "reset"},
		{EventType(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
