package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"ytguide/pkg/clipboard"
	"ytguide/pkg/completions"
	"ytguide/pkg/config"
	"ytguide/pkg/errors"
	"ytguide/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var cfg = config.Default()

var clipboardTimeout time.Duration
var outputFormat string
var dryRunFlag bool
var assumeYesFlag bool
var noColorFlag bool
var logLevel string

var rootCmd = &cobra.Command{
	Use:   "ytguide",
	Short: "YouTube Ad Skipper setup guide",
	Long: `Shows the setup guide for the YouTube ad skipper script: the steps, the
commands to run and the script itself, each copyable to the clipboard.
The guide can be read in the terminal, browsed interactively or served as a
web page. The script is only displayed and saved, never run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("YTGUIDE_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		if !cmd.Flags().Changed("format") {
			outputFormat = cfg.Display.Format
		}
		if cmd.Flags().Changed("clipboard-timeout") {
			cfg.Clipboard.Timeout = clipboardTimeout
		}
		if noColorFlag || !cfg.ColorEnabled() {
			color.NoColor = true
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ytguide version %s\n", ver)
		fmt.Fprintf(out, "Built: %s\n", bt)
		fmt.Fprintf(out, "Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// GetContext returns a context bounded by the clipboard timeout, for one
// copy operation.
func GetContext() (context.Context, context.CancelFunc) {
	timeout := cfg.Clipboard.Timeout
	if timeout <= 0 {
		timeout = config.DefaultClipboardTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// systemClipboard and clipboardAvailable are swapped in tests.
var systemClipboard = func() clipboard.Writer {
	return clipboard.NewSystem(cfg.Clipboard.Timeout)
}

var clipboardAvailable = clipboard.Available

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().DurationVar(&clipboardTimeout, "clipboard-timeout", config.DefaultClipboardTimeout, "Timeout for a clipboard write (e.g., 500ms, 5s)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", config.DefaultOutputFormat, "Output format (text, json, yaml, markdown, html)")
	rootCmd.PersistentFlags().BoolVar(&dryRunFlag, "dry-run", false, "Show what would be done without making changes")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error, off)")

	completions.RegisterCompletions(rootCmd)
}
