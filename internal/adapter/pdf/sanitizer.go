package pdf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// Sanitizer rewrites a PDF through ghostscript's pdfwrite device, which drops
// scripts, embedded files and malformed objects.
type Sanitizer struct {
	command string
	timeout time.Duration
}

// NewSanitizer creates a Sanitizer.
func NewSanitizer(command string, timeout time.Duration) *Sanitizer {
	return &Sanitizer{command: command, timeout: timeout}
}

// Sanitize writes a clean copy of in to out. A file ghostscript cannot
// rewrite is reported as domain.ErrUnprocessable.
func (s *Sanitizer) Sanitize(ctx context.Context, in, out string) error {
	res, err := run(ctx, s.timeout, s.command,
		"-sDEVICE=pdfwrite",
		"-dSAFER",
		"-dBATCH",
		"-dNOPAUSE",
		"-dQUIET",
		"-o", out,
		in,
	)
	if err != nil {
		return fmt.Errorf("sanitize: %w", err)
	}
	if res.exitCode != 0 {
		return fmt.Errorf("sanitize: %s exited with %d: %s: %w",
			s.command, res.exitCode, tail(res.output, 256), domain.ErrUnprocessable)
	}

	info, err := os.Stat(out)
	if err != nil {
		return fmt.Errorf("sanitize: output: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("sanitize: empty output: %w", domain.ErrUnprocessable)
	}
	return nil
}
