package gallery

import "github.com/google/uuid"

const DefaultHighlightColor uint32 = 0x798cb2

// Target is a mesh that can be highlighted by changing its emissive color.
type Target interface {
	ID() uuid.UUID
	Emissive() uint32
	SetEmissive(color uint32)
}

// Highlighter highlights at most one Target at a time and remembers the
// emissive color it had before, so it can be put back.
type Highlighter struct {
	color    uint32
	current  Target
	previous uint32
}

func NewHighlighter(color uint32) *Highlighter {
	return &Highlighter{
		color: color,
	}
}

// Current returns the highlighted target, or nil.
func (h *Highlighter) Current() Target {
	return h.current
}

// Hover highlights target, restoring the previously hovered one first.
// Hovering the target that is already highlighted does nothing.
func (h *Highlighter) Hover(target Target) {
	if target == nil {
		h.Clear()
		return
	}
	if h.current != nil && h.current.ID() == target.ID() {
		return
	}
	h.Clear()
	h.current = target
	h.previous = target.Emissive()
	target.SetEmissive(h.color)
}

// Clear restores the emissive color of the highlighted target.
func (h *Highlighter) Clear() {
	if h.current == nil {
		return
	}
	h.current.SetEmissive(h.previous)
	h.current = nil
	h.previous = 0
}

// Release forgets the highlighted target without touching it. Used when
// the target has been removed from the scene.
func (h *Highlighter) Release() {
	h.current = nil
	h.previous = 0
}
