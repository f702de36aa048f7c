package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/term"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "nested", "namemate.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("to file")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("[INFO] to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("hidden")) {
		t.Errorf("debug line written without verbose: %s", string(b))
	}
	if !bytes.Contains(b, []byte("[DEBUG] shown")) {
		t.Errorf("verbose debug line missing: %s", string(b))
	}
}

func TestLogger_ErrorGoesToErrWriter(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	l.out, l.errOut = &out, &errOut

	l.Warn("careful")
	l.Error("broken: %s", "report.pdf")

	if !strings.Contains(out.String(), "[WARN] careful") {
		t.Errorf("stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] broken: report.pdf") {
		t.Errorf("stderr: %q", errOut.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Errorf("error leaked to stdout: %q", out.String())
	}
}

func TestLogger_FileStaysPlainWhenColored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(t.TempDir(), "run.log")
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { term.Configure(config.ColorNever) })
	var out bytes.Buffer
	l.out = &out

	l.Success("Renamed: a.png -> ports.png")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("terminal line not colored: %q", out.String())
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if strings.Contains(string(b), "\x1b[") || !strings.Contains(string(b), "[SUCCESS] Renamed: a.png -> ports.png") {
		t.Errorf("log file content: %q", string(b))
	}
}
