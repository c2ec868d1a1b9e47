// Package clipboard is the boundary to the system clipboard. It only ever
// writes; nothing in ytguide reads the clipboard back.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	atotto "github.com/atotto/clipboard"
)

// ErrWriteFailed is the ClipboardWriteFailed error kind. Every failure a
// Writer reports wraps it.
var ErrWriteFailed = errors.New("clipboard write failed")

// Writer puts text on the system clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System writes through github.com/atotto/clipboard, falling back to
// platform tools where atotto has no backend.
type System struct {
	// Timeout bounds one write. Zero means only ctx applies.
	Timeout time.Duration

	write func(string) error
}

// NewSystem returns a System writer with the given per-write timeout.
func NewSystem(timeout time.Duration) *System {
	return &System{Timeout: timeout, write: writeAll}
}

// Available reports whether atotto found a clipboard backend.
func Available() bool {
	return !atotto.Unsupported
}

// WriteText copies text verbatim. The underlying write cannot be
// interrupted, so on cancellation the result is abandoned and the error is
// returned immediately.
func (s *System) WriteText(ctx context.Context, text string) error {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	write := s.write
	if write == nil {
		write = writeAll
	}

	done := make(chan error, 1)
	go func() {
		done <- write(text)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrWriteFailed, ctx.Err())
	}
}
