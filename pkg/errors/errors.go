package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"ytguide/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeValidation    ExitCode = 3
	ExitCodeNotFound      ExitCode = 4
	ExitCodeFileOperation ExitCode = 5
	ExitCodeClipboard     ExitCode = 6
	ExitCodeServer        ExitCode = 7
	ExitCodeCancellation  ExitCode = 8
)

// Standardized error messages for consistent user-facing errors
const (
	ErrMsgScriptWriteFailed = "Failed to write script file"
	ErrMsgRenderFailed      = "Failed to render guide"
	ErrMsgServeFailed       = "Failed to serve guide"
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

// HandleReturn logs the error, prints it to stderr and returns the exit code
// the caller should terminate with.
func HandleReturn(err error) ExitCode {
	return handleTo(os.Stderr, err)
}

func handleTo(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	var exitCode ExitCode = ExitCodeGeneral
	var message string
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Message
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logger.Error().Err(e.Underlying).Msg(e.Message)
			message = e.Error()
		} else {
			logger.Error().Msg(e.Message)
		}
	} else {
		message = err.Error()
		logger.Error().Msg(message)
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(w, line)
				continue
			}
			if strings.HasPrefix(line, "  -") {
				cyan.Fprintln(w, line)
			} else {
				fmt.Fprintln(w, "           "+line)
			}
		}
	}

	fmt.Fprintln(w)

	return exitCode
}

func StepNotFoundError(ordinal string, available []string) *Error {
	suggestionText := "Use 'ytguide show' to list the steps."
	if len(available) > 0 {
		suggestionText = "Available steps:\n"
		for _, s := range available {
			suggestionText += fmt.Sprintf("  - %s\n", s)
		}
	}
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("Step '%s' not found", ordinal),
		Suggestion: strings.TrimRight(suggestionText, "\n"),
	}
}

func NoCodeSampleError(ordinal string) *Error {
	return &Error{
		Code:       ExitCodeNotFound,
		Message:    fmt.Sprintf("Step '%s' has no code sample to copy", ordinal),
		Suggestion: "Try --nested for steps that embed a separate code block.",
	}
}

func ClipboardUnavailableError() *Error {
	return &Error{
		Code:       ExitCodeClipboard,
		Message:    "No system clipboard available",
		Suggestion: "Install wl-clipboard, xclip or xsel, or print the sample with 'ytguide show <step>'.",
	}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check your configuration file (ytguide config path) or the YTGUIDE_* environment variables.",
	}
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func FileError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeFileOperation,
		Message:    message,
		Underlying: err,
	}
}

func CancelledError(operation string) *Error {
	return &Error{
		Code:       ExitCodeCancellation,
		Message:    fmt.Sprintf("Operation cancelled: %s", operation),
		Suggestion: "The operation was interrupted. No changes were made.",
	}
}
