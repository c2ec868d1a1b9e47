package models

// DefaultLanguage is the display-language tag used when a code sample does
// not name one.
const DefaultLanguage = "bash"

// ContentKind tags the composite a step may embed below its description
type ContentKind string

const (
	ContentNone ContentKind = ""
	ContentCode ContentKind = "code"
)

// CodeSample is a copyable block of text with a display-language hint
type CodeSample struct {
	Text     string `json:"text" yaml:"text"`
	Language string `json:"language" yaml:"language"`
}

// LanguageOrDefault returns the language tag, falling back to DefaultLanguage
func (c CodeSample) LanguageOrDefault() string {
	if c.Language == "" {
		return DefaultLanguage
	}
	return c.Language
}

// Content is the nested composite of a step. Kind selects which field is
// meaningful; ContentCode is the only kind the guide uses.
type Content struct {
	Kind ContentKind `json:"kind" yaml:"kind"`
	Code CodeSample  `json:"code" yaml:"code"`
}

// Step is one static instructional record. Code, Note and Nested are
// optional; empty values mean the part is absent.
type Step struct {
	Ordinal     string   `json:"ordinal" yaml:"ordinal"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Code        string   `json:"code,omitempty" yaml:"code,omitempty"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty"`
	Note        string   `json:"note,omitempty" yaml:"note,omitempty"`
	Nested      *Content `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// HasCode reports whether the step carries its own code sample
func (s Step) HasCode() bool {
	return s.Code != ""
}

// CodeSample returns the step's own code sample and whether it exists
func (s Step) CodeSample() (CodeSample, bool) {
	if !s.HasCode() {
		return CodeSample{}, false
	}
	return CodeSample{Text: s.Code, Language: s.Language}, true
}

// NestedCode returns the nested code sample and whether it exists
func (s Step) NestedCode() (CodeSample, bool) {
	if s.Nested == nil || s.Nested.Kind != ContentCode || s.Nested.Code.Text == "" {
		return CodeSample{}, false
	}
	return s.Nested.Code, true
}

// Page is the complete static document: header, steps and footer
type Page struct {
	Title   string `json:"title" yaml:"title"`
	Tagline string `json:"tagline" yaml:"tagline"`
	Section string `json:"section" yaml:"section"`
	Steps   []Step `json:"steps" yaml:"steps"`
	Footer  string `json:"footer" yaml:"footer"`
}
