package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "production")

	Info("deal loaded", "id", 7)
	Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
	if entry["msg"] != "deal loaded" || entry["id"] != float64(7) {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestTestEnvOnlyWarnings(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "test")

	Info("quiet")
	Warn("loud", "k", "v")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Errorf("info should be filtered, got %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Errorf("warning missing from %q", out)
	}
}
