//go:build js

package three

import (
	"fmt"
	"log/slog"
	"syscall/js"

	"github.com/google/uuid"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/memory-land/gallery"
	"github.com/nobonobo/memory-land/schema"
)

var _ gallery.Scene = (*Scene)(nil)

// Scene adds gallery meshes to a THREE.Scene.
type Scene struct {
	value js.Value
}

func NewScene(value js.Value) *Scene {
	return &Scene{
		value: value,
	}
}

func (s *Scene) Attach(id uuid.UUID, mesh gallery.Mesh) {
	m, ok := mesh.(*Mesh)
	if !ok {
		slog.Error("Cannot attach foreign mesh",
			slog.String("id", id.String()),
			slog.String("type", fmt.Sprintf("%T", mesh)),
		)
		return
	}
	s.value.Call("add", m.value)
}

func (s *Scene) Detach(id uuid.UUID, mesh gallery.Mesh) {
	if m, ok := mesh.(*Mesh); ok {
		s.value.Call("remove", m.value)
	}
}

func ToVec3(value js.Value) dprec.Vec3 {
	return dprec.NewVec3(
		value.Get("x").Float(),
		value.Get("y").Float(),
		value.Get("z").Float(),
	)
}

func ToEuler(value js.Value) schema.Euler {
	return schema.NewEuler(
		dprec.Radians(value.Get("x").Float()),
		dprec.Radians(value.Get("y").Float()),
		dprec.Radians(value.Get("z").Float()),
	)
}

// SetVec3 copies v into a THREE.Vector3 such as object.position.
func SetVec3(target js.Value, v dprec.Vec3) {
	target.Call("set", v.X, v.Y, v.Z)
}

// SetEuler copies e into a THREE.Euler such as object.rotation.
func SetEuler(target js.Value, e schema.Euler) {
	target.Call("set", e.X().Radians(), e.Y().Radians(), e.Z().Radians())
}
