package clipboard

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSystem_WriteTextPassesPayloadVerbatim(t *testing.T) {
	var got string
	s := &System{write: func(text string) error {
		got = text
		return nil
	}}

	payload := "pip install --upgrade pip selenium loguru\n\ttabs  and  spaces"
	if err := s.WriteText(context.Background(), payload); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got != payload {
		t.Errorf("written %q, want %q", got, payload)
	}
}

func TestSystem_WriteTextFailures(t *testing.T) {
	block := func(release <-chan struct{}) func(string) error {
		return func(string) error {
			<-release
			return nil
		}
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name     string
		timeout  time.Duration
		ctx      context.Context
		write    func(release <-chan struct{}) func(string) error
		contains string
	}{
		{
			name: "writer error",
			ctx:  context.Background(),
			write: func(<-chan struct{}) func(string) error {
				return func(string) error { return errors.New("permission denied") }
			},
			contains: "permission denied",
		},
		{
			name:     "timeout",
			timeout:  10 * time.Millisecond,
			ctx:      context.Background(),
			write:    block,
			contains: context.DeadlineExceeded.Error(),
		},
		{
			name:     "cancelled context",
			ctx:      cancelled,
			write:    block,
			contains: context.Canceled.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := make(chan struct{})
			defer close(release)

			s := &System{Timeout: tt.timeout, write: tt.write(release)}
			err := s.WriteText(tt.ctx, "x")
			if !errors.Is(err, ErrWriteFailed) {
				t.Fatalf("error = %v, want ErrWriteFailed", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestWriterFunc(t *testing.T) {
	var calls int
	var w Writer = WriterFunc(func(ctx context.Context, text string) error {
		calls++
		return nil
	})

	if err := w.WriteText(context.Background(), "a"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
