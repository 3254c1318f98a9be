package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfall/engine"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	world     *engine.World
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing world
func NewRenderOrchestrator(world *engine.World) *RenderOrchestrator {
	return &RenderOrchestrator{
		world:     world,
		buffer:    NewRenderBuffer(0, 0),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Compose runs every visible renderer into the buffer for a width x height view
func (o *RenderOrchestrator) Compose(width, height int) *RenderBuffer {
	if w, h := o.buffer.Size(); w != width || h != height {
		o.buffer.Resize(width, height)
	} else {
		o.buffer.Clear()
	}

	ctx := NewRenderContext(o.world, width, height)
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}
	return o.buffer
}

// RenderFrame composes and flushes the frame into the screen rectangle at (x, y)
func (o *RenderOrchestrator) RenderFrame(screen tcell.Screen, x, y, width, height int) {
	o.Compose(width, height).Flush(screen, x, y)
}
