// Package render turns guide steps into display blocks and writes those
// blocks as terminal text, HTML or Markdown.
package render

import "ytguide/pkg/models"

// CodeBlock is a displayed code sample. ID is stable per page and names the
// copy control attached to it.
type CodeBlock struct {
	ID       string `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Language string `json:"language" yaml:"language"`
}

// NestedBlock is the rendered form of a step's nested content.
type NestedBlock struct {
	Kind models.ContentKind `json:"kind" yaml:"kind"`
	Code *CodeBlock         `json:"code,omitempty" yaml:"code,omitempty"`
}

// Block is one rendered step. Nil/empty optional parts are omitted by every
// writer.
type Block struct {
	Ordinal     string       `json:"ordinal" yaml:"ordinal"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Code        *CodeBlock   `json:"code,omitempty" yaml:"code,omitempty"`
	Nested      *NestedBlock `json:"nested,omitempty" yaml:"nested,omitempty"`
	Note        string       `json:"note,omitempty" yaml:"note,omitempty"`
}

// CodeID is the ID of a step's own code sample.
func CodeID(ordinal string) string {
	return "step-" + ordinal + "-code"
}

// NestedID is the ID of a step's nested code sample.
func NestedID(ordinal string) string {
	return "step-" + ordinal + "-nested"
}

// Render maps steps to blocks one to one, keeping order. It has no side
// effects and never fails.
func Render(steps []models.Step) []Block {
	blocks := make([]Block, 0, len(steps))
	for _, s := range steps {
		b := Block{
			Ordinal:     s.Ordinal,
			Title:       s.Title,
			Description: s.Description,
			Note:        s.Note,
		}
		if sample, ok := s.CodeSample(); ok {
			b.Code = &CodeBlock{
				ID:       CodeID(s.Ordinal),
				Text:     sample.Text,
				Language: sample.LanguageOrDefault(),
			}
		}
		if s.Nested != nil {
			switch s.Nested.Kind {
			case models.ContentCode:
				if sample, ok := s.NestedCode(); ok {
					b.Nested = &NestedBlock{
						Kind: models.ContentCode,
						Code: &CodeBlock{
							ID:       NestedID(s.Ordinal),
							Text:     sample.Text,
							Language: sample.LanguageOrDefault(),
						},
					}
				}
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// CodeBlocks lists every code sample of the blocks in display order: a
// step's own sample before its nested one.
func CodeBlocks(blocks []Block) []CodeBlock {
	var out []CodeBlock
	for _, b := range blocks {
		if b.Code != nil {
			out = append(out, *b.Code)
		}
		if b.Nested != nil && b.Nested.Code != nil {
			out = append(out, *b.Nested.Code)
		}
	}
	return out
}
