package gallery

import (
	"github.com/google/uuid"

	"github.com/nobonobo/memory-land/schema"
)

// Mesh is a rendered gallery object.
type Mesh interface {
	// Dispose releases the geometry and material of the mesh.
	Dispose()
}

// Scene attaches and detaches meshes to whatever is being rendered.
type Scene interface {
	Attach(id uuid.UUID, mesh Mesh)
	Detach(id uuid.UUID, mesh Mesh)
}

// Builder creates meshes for objects. Build may complete asynchronously
// but done must be called exactly once, on the goroutine that owns the
// gallery.
type Builder interface {
	Build(id uuid.UUID, object schema.Object, done func(Mesh, error))
}

// Prompter asks the user for the text of a text object.
// ok is false when the prompt was cancelled.
type Prompter interface {
	Prompt(message string) (text string, ok bool)
}

// Store is a string key value store such as the browser local storage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
