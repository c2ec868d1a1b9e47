package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
)

const (
	responseYes = "yes"
	responseY   = "y"
)

// promptInput is where confirmations are read from; tests replace it.
var promptInput io.Reader = os.Stdin

// IsDryRun returns true if dry-run mode is enabled
func IsDryRun() bool {
	return dryRunFlag
}

// IsAssumeYes returns true if we should skip confirmation prompts
func IsAssumeYes() bool {
	return assumeYesFlag
}

// PrintDryRunAction prints a dry-run action with details
func PrintDryRunAction(action string, details map[string]string) {
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan)

	_, _ = yellow.Fprintf(color.Output, "[DRY-RUN] Would %s:\n", action)

	keys := make([]string, 0, len(details))
	for key := range details {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		_, _ = cyan.Fprintf(color.Output, "  %s: ", key)
		fmt.Fprintln(color.Output, details[key])
	}
}

// ConfirmPrompt asks the user for confirmation
func ConfirmPrompt(message string) (bool, error) {
	if IsAssumeYes() {
		return true, nil
	}

	yellow := color.New(color.FgYellow)
	_, _ = yellow.Fprintf(color.Output, "%s [y/N]: ", message)

	reader := bufio.NewReader(promptInput)
	response, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && response != "") {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == responseY || response == responseYes, nil
}
