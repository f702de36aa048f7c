package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// CommandRunner runs an external tool and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs tools with os/exec. Stderr is captured for classification;
// when Verbose is set it is also tee'd to os.Stderr in real time.
type ExecRunner struct {
	Verbose bool
}

// Run implements [CommandRunner].
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	if r.Verbose {
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return nil, &ToolError{
			Tool:   filepath.Base(name),
			Stderr: stderr.String(),
			Kind:   classifyStderr(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}
