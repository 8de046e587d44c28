package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixedLogger(out *bytes.Buffer, level Level) Logger {
	l := New(out, level).(*logfmtLogger)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLoggerWritesLogfmt(t *testing.T) {
	var out bytes.Buffer
	logger := fixedLogger(&out, Debug).With(F("cmd", "decode"))
	logger.Info("decoded", F("input", "4433555 555666#"), F("key", '7'), F("ok", true), F("count", 3))

	want := `ts=2024-01-02T03:04:05Z level=info msg=decoded cmd=decode input="4433555 555666#" key=7 ok=true count=3` + "\n"
	if got := out.String(); got != want {
		t.Fatalf("unexpected line:\ngot= %q\nwant=%q", got, want)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var out bytes.Buffer
	logger := fixedLogger(&out, Warn)
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("failed", F("err", errors.New("boom now")))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[1], `err="boom now"`) {
		t.Fatalf("expected quoted error, got %q", lines[1])
	}
	if logger.Enabled(Info) || !logger.Enabled(Error) {
		t.Fatalf("unexpected Enabled results")
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	if logger.Enabled(Error) {
		t.Fatalf("nop logger should not be enabled")
	}
	logger.With(F("a", 1)).Error("ignored")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw   string
		want  Level
		known bool
	}{
		{raw: "debug", want: Debug, known: true},
		{raw: " INFO ", want: Info, known: true},
		{raw: "warning", want: Warn, known: true},
		{raw: "error", want: Error, known: true},
		{raw: "loud", want: Info, known: false},
	}
	for _, tt := range tests {
		got, known := ParseLevel(tt.raw)
		if got != tt.want || known != tt.known {
			t.Fatalf("ParseLevel(%q): got=(%v,%v) want=(%v,%v)", tt.raw, got, known, tt.want, tt.known)
		}
	}
}
