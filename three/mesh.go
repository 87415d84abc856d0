//go:build js

package three

import (
	"syscall/js"

	"github.com/google/uuid"

	"github.com/nobonobo/memory-land/gallery"
)

const userDataID = "galleryID"

var (
	_ gallery.Mesh   = (*Mesh)(nil)
	_ gallery.Target = (*Mesh)(nil)
)

// Mesh wraps a THREE.Mesh that belongs to the gallery.
type Mesh struct {
	value js.Value
	id    uuid.UUID
}

func newMesh(id uuid.UUID, value js.Value) *Mesh {
	value.Get("userData").Set(userDataID, id.String())
	return &Mesh{
		value: value,
		id:    id,
	}
}

// WrapMesh returns the gallery mesh for a scene object picked by a
// raycast. ok is false for objects the gallery did not create.
func WrapMesh(value js.Value) (*Mesh, bool) {
	if !value.Truthy() {
		return nil, false
	}
	raw := value.Get("userData").Get(userDataID)
	if raw.Type() != js.TypeString {
		return nil, false
	}
	id, err := uuid.Parse(raw.String())
	if err != nil {
		return nil, false
	}
	return &Mesh{
		value: value,
		id:    id,
	}, true
}

func (m *Mesh) Value() js.Value {
	return m.value
}

func (m *Mesh) ID() uuid.UUID {
	return m.id
}

func (m *Mesh) Emissive() uint32 {
	return uint32(m.value.Get("material").Get("emissive").Call("getHex").Int())
}

func (m *Mesh) SetEmissive(color uint32) {
	m.value.Get("material").Get("emissive").Call("setHex", color)
}

func (m *Mesh) Dispose() {
	m.value.Get("geometry").Call("dispose")
	m.value.Get("material").Call("dispose")
}
