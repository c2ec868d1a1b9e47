package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ytguide/pkg/errors"
	"ytguide/pkg/guide"
	"ytguide/pkg/logger"

	"github.com/spf13/cobra"
)

var scriptOutput string
var scriptForce bool

var scriptCmd = NewCommand(
	"script",
	"Save the skipper script to a file",
	`Write the embedded `+guide.ScriptName+` to disk (step 3 of the guide), or to
stdout with -o -. The file is written as plain text and is not made
executable; ytguide never runs it.`,
).WithExample(`  # Save into the current directory
  ytguide script

  # Save somewhere else, replacing an existing copy
  ytguide script -o ~/bin/` + guide.ScriptName + ` --force

  # Print it
  ytguide script -o -`).
	WithArgsValidation(0, 0).
	WithRun(runScript).
	Build()

func runScript(cmd *cobra.Command, args []string) error {
	target := scriptOutput
	if target == "" {
		target = cfg.Script.OutputPath
	}
	if target == "" {
		target = guide.ScriptName
	}

	if target == "-" {
		_, err := io.WriteString(cmd.OutOrStdout(), guide.Script())
		return err
	}

	return writeScript(cmd.OutOrStdout(), target)
}

func writeScript(out io.Writer, target string) error {
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		target = filepath.Join(target, guide.ScriptName)
		if _, statErr := os.Stat(target); statErr == nil {
			if err := confirmOverwrite(target); err != nil {
				return err
			}
		}
	case err == nil:
		if err := confirmOverwrite(target); err != nil {
			return err
		}
	case !os.IsNotExist(err):
		return errors.FileError(errors.ErrMsgScriptWriteFailed, err)
	}

	if IsDryRun() {
		PrintDryRunAction("write script", map[string]string{
			"path":  target,
			"bytes": fmt.Sprintf("%d", len(guide.Script())),
		})
		return nil
	}

	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.FileError(errors.ErrMsgScriptWriteFailed, err)
		}
	}
	if err := os.WriteFile(target, []byte(guide.Script()), 0644); err != nil {
		return errors.FileError(errors.ErrMsgScriptWriteFailed, err)
	}

	logger.Info().Str("path", target).Msg("script written")
	fmt.Fprintf(out, "✓ Saved %s\n", target)
	return nil
}

func confirmOverwrite(target string) error {
	if scriptForce || IsDryRun() {
		return nil
	}
	ok, err := ConfirmPrompt(fmt.Sprintf("%s exists. Overwrite", target))
	if err != nil || !ok {
		return errors.CancelledError("write script")
	}
	return nil
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptOutput, "output", "o", "", "Destination file or directory, - for stdout (default ./"+guide.ScriptName+")")
	scriptCmd.Flags().BoolVar(&scriptForce, "force", false, "Overwrite an existing file without asking")
}
