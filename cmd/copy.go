package cmd

import (
	"fmt"

	"ytguide/pkg/errors"
	"ytguide/pkg/render"

	"github.com/spf13/cobra"
)

var copyNestedFlag bool

var copyCmd = NewCommand(
	"copy <step>",
	"Copy a step's code sample to the clipboard",
	`Copy the code sample of a step to the system clipboard, exactly as shown.
The step is named by its number or by part of its title. Steps that embed a
separate block (the script in step 3) copy that block when they have no
command of their own, or when --nested is given.

A failed clipboard write is logged and leaves the button at "Copy"; run the
command again to retry.`,
).WithExample(`  # Copy the pip install command
  ytguide copy 1

  # Copy the whole script
  ytguide copy python`).
	WithArgsValidation(1, 1).
	WithPage(runCopy).
	Build()

func runCopy(cmd *cobra.Command, args []string, page *render.Page) error {
	step, err := resolveStep(args[0])
	if err != nil {
		return err
	}

	id, ok := sampleID(step.Ordinal, page, copyNestedFlag)
	if !ok {
		return errors.NoCodeSampleError(step.Ordinal)
	}
	control, _ := page.Control(id)

	ctx, cancel := GetContext()
	defer cancel()

	if IsDryRun() {
		PrintDryRunAction("copy to clipboard", map[string]string{
			"step":     step.Ordinal,
			"language": control.Language(),
			"bytes":    fmt.Sprintf("%d", len(control.Payload())),
		})
		return nil
	}

	if !clipboardAvailable() {
		return errors.ClipboardUnavailableError()
	}

	state := control.Activate(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "%s  step %s: %s\n", render.ButtonLabel(state.Label()), step.Ordinal, step.Title)
	return nil
}

// sampleID picks the code sample of a step on the page: its own command
// unless nested is requested or it has none.
func sampleID(ordinal string, page *render.Page, nested bool) (string, bool) {
	if !nested {
		if _, ok := page.Control(render.CodeID(ordinal)); ok {
			return render.CodeID(ordinal), true
		}
	}
	if _, ok := page.Control(render.NestedID(ordinal)); ok {
		return render.NestedID(ordinal), true
	}
	return "", false
}

func init() {
	copyCmd.Flags().BoolVar(&copyNestedFlag, "nested", false, "Copy the step's embedded block instead of its command")
}
