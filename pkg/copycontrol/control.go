// Package copycontrol implements the copy button attached to every code
// sample: a two-state machine (Idle, Copied) that writes its payload to the
// clipboard and drops back to Idle ResetDelay after the last successful copy.
package copycontrol

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ytguide/pkg/clipboard"
	"ytguide/pkg/logger"
	"ytguide/pkg/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ResetDelay is how long the Copied acknowledgment stays up.
const ResetDelay = 2000 * time.Millisecond

const (
	LabelCopy   = "Copy"
	LabelCopied = "Copied!"
)

// State of a control
type State int

const (
	Idle State = iota
	Copied
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Copied:
		return "copied"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Label is the button text shown for the state.
func (s State) Label() string {
	if s == Copied {
		return LabelCopied
	}
	return LabelCopy
}

type Option func(*Control)

// WithClock replaces the timer source.
func WithClock(clock Clock) Option {
	return func(c *Control) {
		c.clock = clock
	}
}

// WithLogger sets the diagnostic sink for write failures.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Control) {
		c.log = log
	}
}

// WithLanguage sets the display-language tag of the payload.
func WithLanguage(language string) Option {
	return func(c *Control) {
		if language != "" {
			c.language = language
		}
	}
}

// Control owns one payload, its state and at most one pending reset.
type Control struct {
	id       string
	payload  string
	language string
	writer   clipboard.Writer
	clock    Clock
	log      zerolog.Logger

	// activating serializes Activate calls; mu guards everything below.
	activating sync.Mutex

	mu        sync.Mutex
	state     State
	timer     Timer
	gen       uint64
	closed    bool
	observers []func(State)

	// pending holds transitions not yet delivered to observers, in the order
	// they happened. delivering is set while one goroutine drains it.
	pending    []State
	delivering bool
}

// New mounts a control for payload. The payload is copied verbatim on every
// activation.
func New(payload string, writer clipboard.Writer, opts ...Option) *Control {
	c := &Control{
		id:       uuid.NewString(),
		payload:  payload,
		language: models.DefaultLanguage,
		writer:   writer,
		clock:    realClock{},
		log:      logger.GetLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("control", c.id).Str("language", c.language).Logger()
	return c
}

func (c *Control) ID() string {
	return c.id
}

func (c *Control) Payload() string {
	return c.payload
}

func (c *Control) Language() string {
	return c.language
}

// State returns the current state.
func (c *Control) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Label returns the button text for the current state.
func (c *Control) Label() string {
	return c.State().Label()
}

// OnChange registers fn to be called after every state transition. Calls
// happen outside the control's lock, one at a time and in transition order,
// from the activating goroutine or the reset timer. fn must not call
// Activate.
func (c *Control) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.observers = append(c.observers, fn)
}

// Activate makes one attempt to copy the payload and returns the resulting
// state. A failed write leaves the state as it was and is only logged. A
// successful write while already Copied restarts the reset window.
func (c *Control) Activate(ctx context.Context) State {
	c.activating.Lock()
	defer c.activating.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Idle
	}
	c.mu.Unlock()

	err := c.write(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.log.Debug().Msg("control closed during clipboard write, result dropped")
		return Idle
	}

	if err != nil {
		state := c.state
		c.mu.Unlock()
		c.log.Error().
			Err(err).
			Str("kind", "ClipboardWriteFailed").
			Int("bytes", len(c.payload)).
			Msg("Failed to copy text")
		return state
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	changed := c.state != Copied
	c.state = Copied
	c.timer = c.clock.AfterFunc(ResetDelay, func() { c.expire(gen) })
	drain := changed && c.publish(Copied)
	c.mu.Unlock()

	c.log.Debug().Bool("restarted", !changed).Msg("copied to clipboard")
	if drain {
		c.drain()
	}
	return Copied
}

// Close tears the control down: the pending reset is cancelled and results
// of writes still in flight are ignored. Close is idempotent.
func (c *Control) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.pending = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.observers = nil
}

// write calls the clipboard writer, turning a panic in it into an error so
// nothing escapes the control.
func (c *Control) write(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", clipboard.ErrWriteFailed, r)
		}
	}()
	if c.writer == nil {
		return fmt.Errorf("%w: no clipboard writer", clipboard.ErrWriteFailed)
	}
	return c.writer.WriteText(ctx, c.payload)
}

func (c *Control) expire(gen uint64) {
	c.mu.Lock()
	// A newer activation or a teardown owns the state now.
	if c.closed || gen != c.gen || c.state != Copied {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	c.timer = nil
	drain := c.publish(Idle)
	c.mu.Unlock()

	if drain {
		c.drain()
	}
}

// publish queues s for observers and reports whether the caller must drain
// the queue. c.mu must be held.
func (c *Control) publish(s State) bool {
	if len(c.observers) == 0 {
		return false
	}
	c.pending = append(c.pending, s)
	if c.delivering {
		return false
	}
	c.delivering = true
	return true
}

// drain delivers queued transitions until none are left. A transition
// published while another goroutine is draining is delivered by that
// goroutine, after the ones before it.
func (c *Control) drain() {
	for {
		c.mu.Lock()
		if c.closed || len(c.pending) == 0 {
			c.pending = nil
			c.delivering = false
			c.mu.Unlock()
			return
		}
		s := c.pending[0]
		c.pending = c.pending[1:]
		observers := c.snapshotObservers()
		c.mu.Unlock()

		notify(observers, s)
	}
}

func (c *Control) snapshotObservers() []func(State) {
	if len(c.observers) == 0 {
		return nil
	}
	out := make([]func(State), len(c.observers))
	copy(out, c.observers)
	return out
}

func notify(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}
