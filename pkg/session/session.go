// Package session runs the interactive terminal view of the guide: the page
// is shown once, then typed commands press the copy buttons.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"ytguide/pkg/copycontrol"
	"ytguide/pkg/filter"
	"ytguide/pkg/models"
	"ytguide/pkg/render"

	"github.com/chzyer/readline"
)

// LineReader yields one input line per call. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// ContextFunc bounds a single copy.
type ContextFunc func() (context.Context, context.CancelFunc)

// Session drives a mounted page from typed commands.
type Session struct {
	page *render.Page
	doc  models.Page
	in   LineReader
	out  io.Writer
	ctx  ContextFunc

	mu sync.Mutex
}

// New prepares a session. doc supplies the header and the steps used to
// resolve queries; page must be mounted from the same steps.
func New(page *render.Page, doc models.Page, in LineReader, out io.Writer, ctx ContextFunc) *Session {
	if ctx == nil {
		ctx = func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		}
	}
	return &Session{page: page, doc: doc, in: in, out: out, ctx: ctx}
}

// Run shows the page and processes commands until quit, end of input or ctx
// cancellation.
func (s *Session) Run(ctx context.Context) error {
	for _, code := range render.CodeBlocks(s.page.Blocks) {
		code := code
		control, ok := s.page.Control(code.ID)
		if !ok {
			continue
		}
		control.OnChange(func(state copycontrol.State) {
			s.printf("%s  %s\n", render.ButtonLabel(state.Label()), describe(code.ID))
		})
	}

	s.show()
	s.help()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := s.in.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if quit := s.handle(strings.TrimSpace(line)); quit {
			return nil
		}
	}
}

func (s *Session) handle(input string) (quit bool) {
	if input == "" {
		return false
	}

	fields := strings.Fields(input)
	cmd := strings.ToLower(fields[0])
	rest := strings.Join(fields[1:], " ")

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?", "h":
		s.help()
	case "show", "list", "ls":
		s.show()
	case "s", "script", "nested":
		s.copy(rest, true)
	case "c", "copy":
		s.copy(rest, false)
	default:
		s.copy(input, false)
	}
	return false
}

func (s *Session) copy(query string, nested bool) {
	if query == "" {
		s.printf("Which step? Type a step number, e.g. 1\n")
		return
	}

	matches := filter.MatchSteps(query, s.doc.Steps)
	if len(matches) != 1 {
		if len(matches) == 0 {
			s.printf("No step matches %q. Try: %s\n", query, strings.Join(filter.Suggest(query, s.doc.Steps, 2), ", "))
		} else {
			s.printf("%q matches more than one step; use its number\n", query)
		}
		return
	}
	step := matches[0]

	id := render.CodeID(step.Ordinal)
	if _, ok := s.page.Control(id); nested || !ok {
		id = render.NestedID(step.Ordinal)
	}
	control, ok := s.page.Control(id)
	if !ok {
		s.printf("Step %s has nothing to copy\n", step.Ordinal)
		return
	}

	ctx, cancel := s.ctx()
	defer cancel()

	// Success is reported through OnChange; a restart inside the window
	// keeps the state, so acknowledge it here.
	before := control.State()
	if after := control.Activate(ctx); after == copycontrol.Copied && before == copycontrol.Copied {
		s.printf("%s  %s\n", render.ButtonLabel(after.Label()), describe(id))
	}
}

func (s *Session) show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = render.WriteText(s.out, s.doc, s.page.Blocks, render.TextOptions{
		Label: s.page.Label,
		Hints: true,
	})
	fmt.Fprintln(s.out)
}

func (s *Session) help() {
	s.printf("Commands: <step> copy a step's command · s <step> copy its embedded block · show · help · quit\n")
}

func (s *Session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func describe(id string) string {
	switch {
	case strings.HasSuffix(id, "-nested"):
		return "step " + strings.TrimSuffix(strings.TrimPrefix(id, "step-"), "-nested") + " (embedded block)"
	case strings.HasSuffix(id, "-code"):
		return "step " + strings.TrimSuffix(strings.TrimPrefix(id, "step-"), "-code")
	default:
		return id
	}
}
