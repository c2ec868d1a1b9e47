package render

import (
	"sync"

	"ytguide/pkg/copycontrol"
)

// ControlFactory mounts a copy control for one code sample.
type ControlFactory func(code CodeBlock) *copycontrol.Control

// Page is a mounted set of blocks: one live control per code sample.
type Page struct {
	Blocks []Block

	mu       sync.Mutex
	order    []string
	controls map[string]*copycontrol.Control
	closed   bool
}

// Mount creates one control per code sample. Blocks without code samples
// get none.
func Mount(blocks []Block, factory ControlFactory) *Page {
	p := &Page{
		Blocks:   blocks,
		controls: make(map[string]*copycontrol.Control),
	}
	for _, code := range CodeBlocks(blocks) {
		p.order = append(p.order, code.ID)
		p.controls[code.ID] = factory(code)
	}
	return p
}

// Control returns the control mounted for the code sample id.
func (p *Page) Control(id string) (*copycontrol.Control, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, false
	}
	c, ok := p.controls[id]
	return c, ok
}

// Label returns the current button label of the control for id, or the idle
// label when there is none.
func (p *Page) Label(id string) string {
	if c, ok := p.Control(id); ok {
		return c.Label()
	}
	return copycontrol.LabelCopy
}

// Close unmounts the page, tearing down every control and its timer.
func (p *Page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for _, id := range p.order {
		p.controls[id].Close()
	}
}
