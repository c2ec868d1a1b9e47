package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"ytguide/pkg/models"
	"ytguide/pkg/render"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	// FormatText is the default colored terminal rendering
	FormatText OutputFormat = "text"
	// FormatJSON outputs the rendered blocks as JSON
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs the rendered blocks as YAML
	FormatYAML OutputFormat = "yaml"
	// FormatMarkdown outputs a Markdown document
	FormatMarkdown OutputFormat = "markdown"
	// FormatHTML outputs a standalone HTML page
	FormatHTML OutputFormat = "html"
)

// OutputWriter handles structured output formatting
type OutputWriter struct {
	format OutputFormat
	writer io.Writer
}

// NewOutputWriter creates a new output writer with the specified format
func NewOutputWriter(format string, w io.Writer) (*OutputWriter, error) {
	f := OutputFormat(format)
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown, FormatHTML:
	case "":
		f = FormatText
	default:
		return nil, fmt.Errorf("unknown format %q (valid: %v)", format, ValidFormats())
	}
	return &OutputWriter{
		format: f,
		writer: w,
	}, nil
}

// IsStructured returns true if the format is JSON or YAML
func (w *OutputWriter) IsStructured() bool {
	return w.format == FormatJSON || w.format == FormatYAML
}

// Write outputs data in a structured format. Text, Markdown and HTML are
// page renderings; use WritePage for them.
func (w *OutputWriter) Write(data interface{}) error {
	switch w.format {
	case FormatJSON:
		encoder := json.NewEncoder(w.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)
	case FormatYAML:
		encoder := yaml.NewEncoder(w.writer)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(data)
	default:
		return fmt.Errorf("format %q is not a structured format", w.format)
	}
}

// pageOutput is the structured form of a rendered page.
type pageOutput struct {
	Title   string         `json:"title" yaml:"title"`
	Tagline string         `json:"tagline" yaml:"tagline"`
	Section string         `json:"section" yaml:"section"`
	Steps   []render.Block `json:"steps" yaml:"steps"`
	Footer  string         `json:"footer" yaml:"footer"`
}

// WritePage renders the page in the configured format.
func (w *OutputWriter) WritePage(page models.Page, blocks []render.Block, opts render.TextOptions) error {
	if w.IsStructured() {
		return w.Write(pageOutput{
			Title:   page.Title,
			Tagline: page.Tagline,
			Section: page.Section,
			Steps:   blocks,
			Footer:  page.Footer,
		})
	}

	switch w.format {
	case FormatMarkdown:
		return render.WriteMarkdown(w.writer, page, blocks)
	case FormatHTML:
		return render.WriteHTML(w.writer, page, blocks, render.HTMLOptions{Interactive: true})
	default:
		return render.WriteText(w.writer, page, blocks, opts)
	}
}

// ValidFormats returns a list of valid output formats
func ValidFormats() []string {
	return []string{"text", "json", "yaml", "markdown", "html"}
}
