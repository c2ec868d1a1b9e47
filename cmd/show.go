package cmd

import (
	"strings"

	"ytguide/pkg/errors"
	"ytguide/pkg/filter"
	"ytguide/pkg/guide"
	"ytguide/pkg/models"
	"ytguide/pkg/render"

	"github.com/spf13/cobra"
)

var showCmd = NewCommand(
	"show [step]",
	"Show the setup guide",
	`Render the setup guide. With a step argument (ordinal or part of a title)
only that step is shown. --format selects text, json, yaml, markdown or html.`,
).WithExample(`  # Full guide in the terminal
  ytguide show

  # Only the browser launch step
  ytguide show browser

  # Standalone HTML page
  ytguide show --format html > guide.html`).
	WithArgsValidation(0, 1).
	WithRun(runShow).
	Build()

func runShow(cmd *cobra.Command, args []string) error {
	ow, err := NewOutputWriter(outputFormat, cmd.OutOrStdout())
	if err != nil {
		return errors.ValidationError(err.Error())
	}

	page := guide.Page()
	if len(args) == 1 {
		step, err := resolveStep(args[0])
		if err != nil {
			return err
		}
		page.Steps = []models.Step{step}
	}

	blocks := render.Render(page.Steps)
	if err := ow.WritePage(page, blocks, render.TextOptions{}); err != nil {
		return errors.NewWithError(errors.ExitCodeGeneral, errors.ErrMsgRenderFailed, err)
	}
	return nil
}

// resolveStep finds the one step a user query names.
func resolveStep(query string) (models.Step, error) {
	if step, ok := guide.Lookup(query); ok {
		return step, nil
	}

	steps := guide.Steps()
	matches := filter.MatchSteps(query, steps)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Step{}, errors.StepNotFoundError(query, filter.Suggest(query, steps, 0))
	default:
		ordinals := make([]string, 0, len(matches))
		for _, m := range matches {
			ordinals = append(ordinals, m.Ordinal+" ("+m.Title+")")
		}
		return models.Step{}, errors.NewWithSuggestion(
			errors.ExitCodeValidation,
			"'"+query+"' matches more than one step",
			"Use a step number instead:\n  - "+strings.Join(ordinals, "\n  - "),
		)
	}
}
