package render

import (
	"bytes"
	"context"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"ytguide/pkg/clipboard"
	"ytguide/pkg/copycontrol"
	"ytguide/pkg/guide"
	"ytguide/pkg/models"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

func init() {
	color.NoColor = true
}

func fourSteps() []models.Step {
	return []models.Step{
		{Ordinal: "1", Title: "One", Description: "first", Code: "echo one"},
		{Ordinal: "2", Title: "Two", Description: "second", Code: "echo two", Note: "careful"},
		{Ordinal: "3", Title: "Three", Description: "third", Nested: &models.Content{
			Kind: models.ContentCode,
			Code: models.CodeSample{Text: "print('x')\n", Language: "python"},
		}},
		{Ordinal: "4", Title: "Four", Description: "fourth"},
	}
}

var okWriter = clipboard.WriterFunc(func(context.Context, string) error { return nil })

func TestRender_KeepsOrderAndOrdinals(t *testing.T) {
	blocks := Render(fourSteps())
	if len(blocks) != 4 {
		t.Fatalf("len(blocks) = %d, want 4", len(blocks))
	}

	titles := []string{"One", "Two", "Three", "Four"}
	for i, b := range blocks {
		if want := string(rune('1' + i)); b.Ordinal != want {
			t.Errorf("block %d ordinal = %q, want %q", i, b.Ordinal, want)
		}
		if b.Title != titles[i] {
			t.Errorf("block %d title = %q, want %q", i, b.Title, titles[i])
		}
	}
}

func TestRender_OptionalParts(t *testing.T) {
	blocks := Render(fourSteps())

	first := blocks[0]
	if first.Code == nil {
		t.Fatal("step 1 lost its code")
	}
	if first.Code.Text != "echo one" || first.Code.Language != "bash" || first.Code.ID != CodeID("1") {
		t.Errorf("step 1 code = %+v", *first.Code)
	}
	if first.Nested != nil || first.Note != "" {
		t.Error("step 1 gained optional parts")
	}

	if blocks[1].Note != "careful" {
		t.Errorf("step 2 note = %q", blocks[1].Note)
	}

	third := blocks[2]
	if third.Code != nil {
		t.Error("step 3 gained code")
	}
	if third.Nested == nil || third.Nested.Code == nil {
		t.Fatal("step 3 lost its nested code")
	}
	if third.Nested.Kind != models.ContentCode || third.Nested.Code.Language != "python" || third.Nested.Code.ID != NestedID("3") {
		t.Errorf("step 3 nested = %+v / %+v", *third.Nested, *third.Nested.Code)
	}

	if b := blocks[3]; b.Code != nil || b.Nested != nil || b.Note != "" {
		t.Errorf("step 4 gained optional parts: %+v", b)
	}
}

func TestRender_IgnoresUnknownOrEmptyNestedContent(t *testing.T) {
	blocks := Render([]models.Step{
		{Ordinal: "1", Title: "t", Description: "d", Nested: &models.Content{Kind: "video"}},
		{Ordinal: "2", Title: "t", Description: "d", Nested: &models.Content{Kind: models.ContentCode}},
	})
	for _, b := range blocks {
		if b.Nested != nil {
			t.Errorf("step %s rendered nested content %+v", b.Ordinal, *b.Nested)
		}
	}
}

func TestRender_IsPure(t *testing.T) {
	steps := fourSteps()
	first := Render(steps)
	second := Render(steps)
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same steps twice differs")
	}
	if !reflect.DeepEqual(steps, fourSteps()) {
		t.Error("Render modified its input")
	}
	if got := Render(nil); len(got) != 0 {
		t.Errorf("Render(nil) = %v", got)
	}
}

func newPage(t *testing.T, blocks []Block, cb clipboard.Writer) (*Page, *[]string) {
	t.Helper()
	var mounted []string
	p := Mount(blocks, func(code CodeBlock) *copycontrol.Control {
		mounted = append(mounted, code.ID)
		return copycontrol.New(code.Text, cb,
			copycontrol.WithLanguage(code.Language),
			copycontrol.WithLogger(zerolog.Nop()),
		)
	})
	t.Cleanup(p.Close)
	return p, &mounted
}

func TestMount_OneControlPerCodeSample(t *testing.T) {
	p, mounted := newPage(t, Render(fourSteps()), okWriter)

	want := []string{CodeID("1"), CodeID("2"), NestedID("3")}
	if !reflect.DeepEqual(*mounted, want) {
		t.Errorf("mounted %q, want %q", *mounted, want)
	}

	c, ok := p.Control(NestedID("3"))
	if !ok {
		t.Fatal("no control for the nested sample")
	}
	if c.Language() != "python" || c.Payload() != "print('x')\n" {
		t.Errorf("nested control = %q %q", c.Language(), c.Payload())
	}
	if _, ok := p.Control(CodeID("4")); ok {
		t.Error("step without code got a control")
	}
}

func TestMount_StepWithoutCodeOrNoteCreatesNoControl(t *testing.T) {
	blocks := Render([]models.Step{{Ordinal: "1", Title: "Only", Description: "text"}})
	_, mounted := newPage(t, blocks, nil)

	if len(*mounted) != 0 {
		t.Errorf("mounted %q, want none", *mounted)
	}

	var buf bytes.Buffer
	tw := &textWriter{w: &buf}
	writeBlocks(tw, blocks, TextOptions{})
	if tw.err != nil {
		t.Fatal(tw.err)
	}
	if got := buf.String(); got != "(1) Only\n    text\n" {
		t.Errorf("rendered %q", got)
	}
}

func TestPage_CloseTearsDownControls(t *testing.T) {
	p, _ := newPage(t, Render(fourSteps()), okWriter)

	c, ok := p.Control(CodeID("1"))
	if !ok {
		t.Fatal("no control for step 1")
	}
	if got := c.Activate(context.Background()); got != copycontrol.Copied {
		t.Fatalf("Activate = %v, want copied", got)
	}
	if got := p.Label(CodeID("1")); got != copycontrol.LabelCopied {
		t.Errorf("label = %q, want %q", got, copycontrol.LabelCopied)
	}

	p.Close()
	p.Close()

	if _, ok := p.Control(CodeID("1")); ok {
		t.Error("control still reachable after Close")
	}
	if got := p.Label(CodeID("1")); got != copycontrol.LabelCopy {
		t.Errorf("label after Close = %q", got)
	}
	if got := c.Activate(context.Background()); got != copycontrol.Idle {
		t.Errorf("Activate after Close = %v, want idle", got)
	}
}

func TestWriteText_ShowsLabelsAndOptionalParts(t *testing.T) {
	var buf bytes.Buffer
	labels := func(id string) string {
		if id == CodeID("2") {
			return copycontrol.LabelCopied
		}
		return copycontrol.LabelCopy
	}

	page := models.Page{Title: "Guide", Tagline: "tag", Section: "Setup", Footer: "bye"}
	if err := WriteText(&buf, page, Render(fourSteps()), TextOptions{Label: labels, Hints: true}); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Guide\ntag\n") || !strings.HasSuffix(out, "bye\n") {
		t.Errorf("header or footer missing:\n%s", out)
	}
	for _, want := range []string{
		"(1) One",
		"│ echo one",
		"⧉ Copy",
		"✓ Copied!",
		"careful",
		`(type "s 3" to copy)`,
		"│ print('x')",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	order := []string{"(1) One", "(2) Two", "(3) Three", "(4) Four"}
	for i := 1; i < len(order); i++ {
		if strings.Index(out, order[i-1]) > strings.Index(out, order[i]) {
			t.Errorf("%q rendered after %q", order[i-1], order[i])
		}
	}
}

func TestWriteHTML_Interactive(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, guide.Page(), Render(guide.Steps()), HTMLOptions{Interactive: true}); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>YouTube Ad Skipper Guide</title>",
		`data-target="step-1-code"`,
		`<code id="step-1-code" class="language-bash">pip install --upgrade pip selenium loguru</code>`,
		`class="language-python"`,
		"navigator.clipboard.writeText",
		"clearTimeout(timer)",
		"queue = queue.then(activate)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !regexp.MustCompile(`RESET_DELAY_MS = +2000 *;`).MatchString(out) {
		t.Error("reset delay is not 2000 ms")
	}
	if strings.Contains(out, "busy") {
		t.Error("clicks during a write must be queued, not dropped")
	}
	if got := strings.Count(out, `class="copy"`); got != 4 {
		t.Errorf("copy buttons = %d, want 4", got)
	}
	if got := strings.Count(out, `<div class="ordinal">`); got != 4 {
		t.Errorf("ordinal badges = %d, want 4", got)
	}
}

func TestWriteHTML_EscapesPayload(t *testing.T) {
	var buf bytes.Buffer
	blocks := Render([]models.Step{{Ordinal: "1", Title: "t", Description: "d", Code: `echo "<b>" && exit`}})
	if err := WriteHTML(&buf, models.Page{}, blocks, HTMLOptions{}); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "echo &#34;&lt;b&gt;&#34; &amp;&amp; exit") {
		t.Errorf("payload not escaped:\n%s", out)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, `class="copy"`) {
		t.Error("static page carries copy buttons")
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, guide.Page(), Render(guide.Steps())); err != nil {
		t.Fatalf("WriteMarkdown: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# YouTube Ad Skipper Guide",
		"Step 1: Install Prerequisites",
		"Step 4: Run the Skipper Script",
		"pip install --upgrade pip selenium loguru",
		"```",
		"def setup_logging():",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(out, "navigator.clipboard") {
		t.Error("markdown carries the copy script")
	}
}

func TestCodeBlocks_Order(t *testing.T) {
	var ids []string
	for _, c := range CodeBlocks(Render(fourSteps())) {
		ids = append(ids, c.ID)
	}
	want := []string{"step-1-code", "step-2-code", "step-3-nested"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}
}

func TestPage_ControlsResetIndependently(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the real reset delay")
	}
	p, _ := newPage(t, Render(fourSteps()), okWriter)

	one, _ := p.Control(CodeID("1"))
	two, _ := p.Control(CodeID("2"))
	one.Activate(context.Background())

	if one.State() != copycontrol.Copied || two.State() != copycontrol.Idle {
		t.Fatalf("states = %v, %v; want copied, idle", one.State(), two.State())
	}

	deadline := time.Now().Add(copycontrol.ResetDelay + 2*time.Second)
	for one.State() != copycontrol.Idle {
		if time.Now().After(deadline) {
			t.Fatal("control did not reset")
		}
		time.Sleep(50 * time.Millisecond)
	}
}
