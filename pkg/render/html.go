package render

import (
	"embed"
	"html/template"
	"io"

	"ytguide/pkg/copycontrol"
	"ytguide/pkg/models"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// HTMLOptions controls HTML rendering.
type HTMLOptions struct {
	// Interactive adds styling and the browser-side copy buttons. Without it
	// the output is a bare document suitable for conversion.
	Interactive bool
}

type pageData struct {
	Page         models.Page
	Blocks       []Block
	Interactive  bool
	ResetDelayMS int64
	LabelCopy    string
	LabelCopied  string
}

type stepData struct {
	pageData
	Block Block
}

type codeData struct {
	Interactive bool
	LabelCopy   string
	Block       *CodeBlock
}

func (d pageData) With(b Block) stepData {
	return stepData{pageData: d, Block: b}
}

func (d stepData) Code(c *CodeBlock) codeData {
	return codeData{Interactive: d.Interactive, LabelCopy: d.LabelCopy, Block: c}
}

// WriteHTML renders the page as a standalone HTML document.
func WriteHTML(w io.Writer, page models.Page, blocks []Block, opts HTMLOptions) error {
	data := pageData{
		Page:         page,
		Blocks:       blocks,
		Interactive:  opts.Interactive,
		ResetDelayMS: copycontrol.ResetDelay.Milliseconds(),
		LabelCopy:    copycontrol.LabelCopy,
		LabelCopied:  copycontrol.LabelCopied,
	}
	return pageTemplate.ExecuteTemplate(w, "page", data)
}
