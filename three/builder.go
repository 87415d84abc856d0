//go:build js

package three

import (
	"fmt"
	"syscall/js"

	"github.com/google/uuid"

	"github.com/nobonobo/memory-land/gallery"
	"github.com/nobonobo/memory-land/schema"
)

var _ gallery.Builder = (*Builder)(nil)

// Builder creates meshes for gallery objects. Text meshes wait for the
// font, every other type completes synchronously.
type Builder struct {
	fonts   *FontCache
	fontURL string
}

func NewBuilder(fonts *FontCache, fontURL string) *Builder {
	return &Builder{
		fonts:   fonts,
		fontURL: fontURL,
	}
}

func (b *Builder) Build(id uuid.UUID, object schema.Object, done func(gallery.Mesh, error)) {
	switch object.Type {
	case schema.ObjectTypeSphere:
		done(b.mesh(id, object, New("SphereGeometry", 0.6)), nil)
	case schema.ObjectTypeBox:
		done(b.mesh(id, object, New("BoxGeometry", 1, 1, 1)), nil)
	case schema.ObjectTypeText:
		b.fonts.Load(b.fontURL, func(font js.Value, err error) {
			if err != nil {
				done(nil, err)
				return
			}
			geometry := Addon("TextGeometry").New(object.Text, map[string]any{
				"font":           font,
				"size":           1,
				"height":         0.5,
				"curveSegments":  12,
				"bevelEnabled":   true,
				"bevelThickness": 0.03,
				"bevelSize":      0.02,
				"bevelSegments":  5,
			})
			geometry.Call("center")
			done(b.mesh(id, object, geometry), nil)
		})
	default:
		done(nil, fmt.Errorf("%w: %q", gallery.ErrUnknownType, object.Type))
	}
}

func (b *Builder) mesh(id uuid.UUID, object schema.Object, geometry js.Value) *Mesh {
	material := New("MeshStandardMaterial", map[string]any{
		"color":     object.Color,
		"roughness": 0.5,
		"metalness": 0.1,
	})
	value := New("Mesh", geometry, material)
	SetVec3(value.Get("position"), object.Position.Vec3())
	SetEuler(value.Get("rotation"), object.Rotation)
	return newMesh(id, value)
}
