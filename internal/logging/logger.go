// Package logging provides the leveled logger shared by every stage of a
// run. Lines go to the terminal (colored tags when enabled) and, when
// configured, to a plain-text log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/srinivassivaratri/namemate/internal/config"
	"github.com/srinivassivaratri/namemate/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

type level struct {
	tag    string
	style  lipgloss.Style
	stderr bool
}

var (
	levelInfo    = level{"INFO", term.Info, false}
	levelSuccess = level{"SUCCESS", term.Success, false}
	levelWarn    = level{"WARN", term.Warn, false}
	levelError   = level{"ERROR", term.Error, true}
	levelDebug   = level{"DEBUG", term.Debug, false}
)

// Logger writes timestamped "[LEVEL] text" lines. Safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	file   io.WriteCloser
}

// NewLogger configures terminal colors from cfg and opens cfg.LogFile for
// appending when set, creating its directory. Close releases the file.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{out: os.Stdout, errOut: os.Stderr}
	if cfg.LogFile == "" {
		return l, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	l.file = f
	return l, nil
}

// Close closes the log file, if any. Later lines reach the terminal only.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) write(lv level, format string, args []interface{}) {
	text := fmt.Sprintf(format, args...)
	ts := time.Now().Format(timeLayout)
	tag := "[" + lv.tag + "]"

	l.mu.Lock()
	defer l.mu.Unlock()
	w := l.out
	if lv.stderr {
		w = l.errOut
	}
	fmt.Fprintf(w, "%s %s %s\n", ts, term.Paint(lv.style, tag), text)
	if l.file != nil {
		fmt.Fprintf(l.file, "%s %s %s\n", ts, tag, text)
	}
}

func (l *Logger) Info(format string, args ...interface{})    { l.write(levelInfo, format, args) }
func (l *Logger) Success(format string, args ...interface{}) { l.write(levelSuccess, format, args) }
func (l *Logger) Warn(format string, args ...interface{})    { l.write(levelWarn, format, args) }

// Error writes to stderr.
func (l *Logger) Error(format string, args ...interface{}) { l.write(levelError, format, args) }

// Debug is a no-op unless verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if verbose {
		l.write(levelDebug, format, args)
	}
}
