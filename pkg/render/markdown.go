package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"ytguide/pkg/models"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// WriteMarkdown renders the page as HTML and converts it to Markdown, so
// both outputs come from one template.
func WriteMarkdown(w io.Writer, page models.Page, blocks []Block) error {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, page, blocks, HTMLOptions{}); err != nil {
		return err
	}

	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)

	markdown, err := conv.ConvertString(buf.String())
	if err != nil {
		return fmt.Errorf("failed to convert guide to markdown: %w", err)
	}

	_, err = io.WriteString(w, strings.TrimSpace(markdown)+"\n")
	return err
}
