package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

// ErrInfected is returned when the antivirus reports a threat.
var ErrInfected = errors.New("file is infected")

// Scanner runs a clamscan-compatible antivirus on a file.
// Exit code 0 means clean, 1 means a virus was found, anything else is a failure.
type Scanner struct {
	command string
	timeout time.Duration
}

// NewScanner creates a Scanner.
func NewScanner(command string, timeout time.Duration) *Scanner {
	return &Scanner{command: command, timeout: timeout}
}

// Scan checks path. An infected file yields ErrInfected wrapped with domain.ErrUnprocessable.
func (s *Scanner) Scan(ctx context.Context, path string) error {
	res, err := run(ctx, s.timeout, s.command, "--no-summary", "--infected", path)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	switch res.exitCode {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("scan: %w: %w", ErrInfected, domain.ErrUnprocessable)
	default:
		return fmt.Errorf("scan: %s exited with %d: %s", s.command, res.exitCode, tail(res.output, 256))
	}
}
