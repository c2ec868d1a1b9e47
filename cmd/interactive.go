package cmd

import (
	"context"
	"os"
	"os/signal"

	"ytguide/pkg/errors"
	"ytguide/pkg/guide"
	"ytguide/pkg/logger"
	"ytguide/pkg/session"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

var interactiveCmd = NewCommand(
	"interactive",
	"Browse the guide and copy samples from a prompt",
	`Show the guide with a live copy button next to every code sample, then
read commands from a prompt. Typing a step number copies its command; the
button switches to "Copied!" and returns to "Copy" two seconds later.
Copying again inside that window restarts the two seconds.`,
).WithExample(`  ytguide interactive
  ytguide> 1
  ytguide> s 3
  ytguide> quit`).
	WithAliases("i", "tui").
	WithArgsValidation(0, 0).
	WithRun(runInteractive).
	Build()

func runInteractive(cmd *cobra.Command, args []string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ytguide> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, "Failed to start interactive prompt", err)
	}
	defer rl.Close()

	// Log lines from timers must not tear the prompt.
	logger.SetOutput(rl.Stderr())
	defer logger.SetOutput(os.Stderr)

	page := MountGuide()
	defer page.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return session.New(page, guide.Page(), rl, rl.Stdout(), GetContext).Run(ctx)
}
