// Package pdf wraps the external tools and the parser used to ingest PDF uploads:
// an antivirus scan, a ghostscript rewrite and plain-text extraction.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed.
const waitDelay = 2 * time.Second

// runResult is the outcome of one external command.
type runResult struct {
	exitCode int
	output   string
}

// run executes name with args under timeout. A non-zero exit is reported in
// runResult, not as an error; err is set when the command could not run or timed out.
func run(ctx context.Context, timeout time.Duration, name string, args ...string) (runResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	res := runResult{output: strings.TrimSpace(out.String())}
	if ctx.Err() != nil {
		return res, fmt.Errorf("%s: %w", name, ctx.Err())
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.exitCode = exitErr.ExitCode()
		return res, nil
	default:
		return res, fmt.Errorf("%s: %w", name, err)
	}
}

// tail keeps the last n bytes of tool output for error messages.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
