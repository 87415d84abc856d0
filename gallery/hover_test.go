package gallery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTarget struct {
	id       uuid.UUID
	emissive uint32
	sets     int
}

func newFakeTarget(emissive uint32) *fakeTarget {
	return &fakeTarget{id: uuid.New(), emissive: emissive}
}

func (t *fakeTarget) ID() uuid.UUID { return t.id }

func (t *fakeTarget) Emissive() uint32 { return t.emissive }

func (t *fakeTarget) SetEmissive(color uint32) {
	t.sets++
	t.emissive = color
}

func TestHighlighterHoverAndClear(t *testing.T) {
	h := NewHighlighter(DefaultHighlightColor)
	target := newFakeTarget(0x111111)

	h.Hover(target)
	assert.Equal(t, DefaultHighlightColor, target.emissive)
	assert.Equal(t, Target(target), h.Current())

	h.Clear()
	assert.Equal(t, uint32(0x111111), target.emissive)
	assert.Nil(t, h.Current())
}

func TestHighlighterMoveBetweenTargets(t *testing.T) {
	h := NewHighlighter(0xff0000)
	first := newFakeTarget(0x000001)
	second := newFakeTarget(0x000002)

	h.Hover(first)
	h.Hover(second)
	assert.Equal(t, uint32(0x000001), first.emissive)
	assert.Equal(t, uint32(0xff0000), second.emissive)

	h.Hover(first)
	assert.Equal(t, uint32(0xff0000), first.emissive)
	assert.Equal(t, uint32(0x000002), second.emissive)

	h.Clear()
	assert.Equal(t, uint32(0x000001), first.emissive)
	assert.Equal(t, uint32(0x000002), second.emissive)
}

func TestHighlighterHoverSameTargetKeepsPrevious(t *testing.T) {
	h := NewHighlighter(0xff0000)
	target := newFakeTarget(0x333333)

	h.Hover(target)
	h.Hover(target)
	h.Hover(target)
	assert.Equal(t, 1, target.sets)

	h.Clear()
	assert.Equal(t, uint32(0x333333), target.emissive)
}

func TestHighlighterSameIDDifferentWrapper(t *testing.T) {
	h := NewHighlighter(0xff0000)
	target := newFakeTarget(0x444444)
	h.Hover(target)

	// a raycast returns a fresh wrapper around the same mesh
	wrapper := &fakeTarget{id: target.id, emissive: target.emissive}
	h.Hover(wrapper)
	assert.Equal(t, 0, wrapper.sets)

	h.Clear()
	assert.Equal(t, uint32(0x444444), target.emissive)
}

func TestHighlighterHoverNilClears(t *testing.T) {
	h := NewHighlighter(0xff0000)
	target := newFakeTarget(0x555555)
	h.Hover(target)
	h.Hover(nil)
	assert.Equal(t, uint32(0x555555), target.emissive)
	assert.Nil(t, h.Current())
}

func TestHighlighterRelease(t *testing.T) {
	h := NewHighlighter(0xff0000)
	target := newFakeTarget(0x666666)
	h.Hover(target)
	h.Release()
	assert.Nil(t, h.Current())
	assert.Equal(t, uint32(0xff0000), target.emissive)

	h.Clear()
	assert.Equal(t, 1, target.sets)
}
