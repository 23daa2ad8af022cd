package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInit_WritesJSONLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "test.log")
	if err := Init(p); err != nil {
		t.Fatalf("Init: %v", err)
	}
	var errOut bytes.Buffer
	SetOutput(&errOut)
	defer SetOutput(os.Stderr)

	Info("search done", zap.Int("items", 3))
	Error("boom")
	Close()

	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 log lines, got %d: %q", len(lines), string(b))
	}
	if !strings.Contains(lines[0], `"msg":"search done"`) || !strings.Contains(lines[0], `"items":3`) {
		t.Fatalf("unexpected first line: %s", lines[0])
	}
	if !strings.Contains(errOut.String(), "boom") {
		t.Fatalf("error should be mirrored to stderr, got %q", errOut.String())
	}
}

func TestDebug_OnlyMirroredWhenVerbose(t *testing.T) {
	var errOut bytes.Buffer
	SetOutput(&errOut)
	defer SetOutput(os.Stderr)
	defer SetVerbose(false)

	SetVerbose(false)
	Debug("quiet")
	if errOut.Len() != 0 {
		t.Fatalf("debug should be silent, got %q", errOut.String())
	}
	SetVerbose(true)
	Debug("loud")
	if !strings.Contains(errOut.String(), "loud") {
		t.Fatalf("debug should be mirrored when verbose, got %q", errOut.String())
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath("/cfg")
	if got != filepath.Join("/cfg", "logs", "clipsearch.log") {
		t.Fatalf("DefaultPath = %q", got)
	}
}

func TestError_NoColourWhenNotTerminal(t *testing.T) {
	var errOut bytes.Buffer
	SetOutput(&errOut)
	defer SetOutput(os.Stderr)

	Error("plain failure")
	if errOut.String() != "plain failure\n" {
		t.Fatalf("expected uncoloured line, got %q", errOut.String())
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	SetOutput(f)
	Error("to file")
	b, _ := os.ReadFile(f.Name())
	if strings.Contains(string(b), "\x1b[") {
		t.Fatalf("regular file should not get escape codes: %q", string(b))
	}
}
