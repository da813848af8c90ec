package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(LevelWarning)

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Error("shown %d", 3)

	s := buf.String()
	if strings.Contains(s, "hidden") {
		t.Errorf("debug message written at info level: %q", s)
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", s)
	}
	if !strings.HasPrefix(lines[0], "I ") || !strings.HasSuffix(lines[0], "shown 2") {
		t.Errorf("unexpected info line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "E ") || !strings.HasSuffix(lines[1], "shown 3") {
		t.Errorf("unexpected error line %q", lines[1])
	}

	buf.Reset()
	SetLevel(LevelNone)
	Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("output at level none: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	var tests = []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warning", LevelWarning},
		{"warn", LevelWarning},
		{"error", LevelError},
		{"none", LevelNone},
	}
	for _, tt := range tests {
		l, err := ParseLevel(tt.name)
		if err != nil {
			t.Error(err)
		}
		if l != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, l, tt.want)
		}
	}

	if _, err := ParseLevel("verbose"); err == nil {
		t.Errorf("unknown level accepted")
	}
}
