package completions

import (
	"fmt"
	"strings"

	"ytguide/pkg/guide"

	"github.com/spf13/cobra"
)

type Completer struct{}

func NewCompleter() *Completer {
	return &Completer{}
}

// CompleteSteps offers step ordinals, with titles as descriptions. Steps
// without a copyable sample are left out when codeOnly is set.
func (c *Completer) CompleteSteps(codeOnly bool) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var items []string
		for _, s := range guide.Steps() {
			_, hasCode := s.CodeSample()
			_, hasNested := s.NestedCode()
			if codeOnly && !hasCode && !hasNested {
				continue
			}
			items = append(items, fmt.Sprintf("%s\t%s", s.Ordinal, s.Title))
		}
		return c.filterPrefix(items, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

func (c *Completer) CompleteFormat(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := []string{"text", "json", "yaml", "markdown", "html"}
	results := c.filterPrefix(formats, toComplete)

	for i, format := range results {
		results[i] = fmt.Sprintf("%s\t%s", format, getFormatDescription(format))
	}

	return results, cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteLogLevel(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	levels := []string{"debug", "info", "warn", "error", "off"}
	return c.filterPrefix(levels, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) filterPrefix(items []string, prefix string) []string {
	var result []string
	for _, item := range items {
		itemName := strings.Split(item, "\t")[0]
		if strings.HasPrefix(strings.ToLower(itemName), strings.ToLower(prefix)) {
			result = append(result, item)
		}
	}
	return result
}

func getFormatDescription(format string) string {
	switch format {
	case "text":
		return "Colored terminal rendering"
	case "json":
		return "Rendered steps as JSON"
	case "yaml":
		return "Rendered steps as YAML"
	case "markdown":
		return "Markdown document"
	case "html":
		return "Standalone HTML page with copy buttons"
	default:
		return ""
	}
}

// RegisterCompletions wires flag completions shared by every command.
func RegisterCompletions(rootCmd *cobra.Command) {
	completer := NewCompleter()

	_ = rootCmd.RegisterFlagCompletionFunc("format", completer.CompleteFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", completer.CompleteLogLevel)

	if copyCmd, _, _ := rootCmd.Find([]string{"copy"}); copyCmd != nil && copyCmd != rootCmd {
		copyCmd.ValidArgsFunction = completer.CompleteSteps(true)
	}
	if showCmd, _, _ := rootCmd.Find([]string{"show"}); showCmd != nil && showCmd != rootCmd {
		showCmd.ValidArgsFunction = completer.CompleteSteps(false)
	}
}
