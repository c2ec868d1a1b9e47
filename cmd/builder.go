package cmd

import (
	"fmt"

	"ytguide/pkg/copycontrol"
	"ytguide/pkg/guide"
	"ytguide/pkg/logger"
	"ytguide/pkg/render"

	"github.com/spf13/cobra"
)

type CommandBuilder struct {
	cmd *cobra.Command
}

func NewCommand(name, short, long string) *CommandBuilder {
	return &CommandBuilder{
		cmd: &cobra.Command{
			Use:     name,
			Short:   short,
			Long:    long,
			Example: "",
		},
	}
}

func (b *CommandBuilder) WithExample(example string) *CommandBuilder {
	b.cmd.Example = example
	return b
}

func (b *CommandBuilder) WithAliases(aliases ...string) *CommandBuilder {
	b.cmd.Aliases = aliases
	return b
}

func (b *CommandBuilder) WithRun(fn func(cmd *cobra.Command, args []string) error) *CommandBuilder {
	b.cmd.RunE = fn
	return b
}

// WithPage mounts the guide before fn runs and unmounts it afterwards, so
// every copy control and its timer is torn down when the command returns.
func (b *CommandBuilder) WithPage(fn func(cmd *cobra.Command, args []string, page *render.Page) error) *CommandBuilder {
	b.cmd.RunE = func(cmd *cobra.Command, args []string) error {
		page := MountGuide()
		defer page.Close()
		return fn(cmd, args, page)
	}
	return b
}

func (b *CommandBuilder) WithArgsValidation(minArgs, maxArgs int) *CommandBuilder {
	b.cmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) < minArgs {
			return fmt.Errorf("requires at least %d argument(s)", minArgs)
		}
		if maxArgs >= 0 && len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d argument(s), received %d", maxArgs, len(args))
		}
		return nil
	}
	return b
}

func (b *CommandBuilder) Build() *cobra.Command {
	return b.cmd
}

// MountGuide renders the guide and mounts one copy control per code sample
// against the system clipboard.
func MountGuide() *render.Page {
	writer := systemClipboard()
	log := logger.GetLogger()
	return render.Mount(render.Render(guide.Steps()), func(code render.CodeBlock) *copycontrol.Control {
		control := copycontrol.New(code.Text, writer,
			copycontrol.WithLanguage(code.Language),
			copycontrol.WithLogger(log.With().Str("sample", code.ID).Logger()),
		)
		logger.Debug().Str("sample", code.ID).Str("control", control.ID()).Msg("copy control mounted")
		return control
	})
}

func AddCommands(parent *cobra.Command, children ...*cobra.Command) {
	for _, child := range children {
		parent.AddCommand(child)
	}
}
