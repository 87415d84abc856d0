//go:build js

package three

import (
	"syscall/js"

	"github.com/nobonobo/memory-land/gallery"
)

// Picker finds the gallery mesh under the pointer.
type Picker struct {
	raycaster js.Value
	pointer   js.Value
	camera    js.Value
	scene     js.Value
}

func NewPicker(camera, scene js.Value) *Picker {
	return &Picker{
		raycaster: New("Raycaster"),
		pointer:   New("Vector2"),
		camera:    camera,
		scene:     scene,
	}
}

// Pick casts a ray through the client coordinates of event and returns the
// nearest hit that the gallery owns. Hits on other scene objects are skipped.
func (p *Picker) Pick(event js.Value) (*Mesh, bool) {
	x, y := gallery.PointerNDC(
		event.Get("clientX").Float(),
		event.Get("clientY").Float(),
		window.Get("innerWidth").Float(),
		window.Get("innerHeight").Float(),
	)
	p.pointer.Call("set", x, y)
	p.raycaster.Call("setFromCamera", p.pointer, p.camera)

	hits := p.raycaster.Call("intersectObjects", p.scene.Get("children"), false)
	for i := range hits.Length() {
		if mesh, ok := WrapMesh(hits.Index(i).Get("object")); ok {
			return mesh, true
		}
	}
	return nil, false
}
