// Package gallery keeps track of the objects a user has placed in the
// memory gallery, pairs each of them with exactly one rendered mesh and
// persists them to a Store.
package gallery

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/mokiat/gog/opt"
	"github.com/mokiat/gomath/dprec"

	"github.com/nobonobo/memory-land/schema"
)

const DefaultStorageKey = "galleryObjects"

const textPrompt = "Enter Text"

var (
	ErrUnknownType = errors.New("unknown object type")
	ErrEmptyText   = errors.New("empty text")
)

type Info struct {
	Scene    Scene
	Builder  Builder
	Store    Store
	Prompter Prompter

	// StorageKey defaults to DefaultStorageKey.
	StorageKey opt.T[string]

	// RandomColor picks the color of objects added without one.
	RandomColor func() uint32

	Logger *slog.Logger
}

// Entry is an object that has a mesh attached to the scene.
type Entry struct {
	ID     uuid.UUID
	Object schema.Object
	Mesh   Mesh
}

type Gallery struct {
	scene       Scene
	builder     Builder
	store       Store
	prompter    Prompter
	storageKey  string
	randomColor func() uint32
	logger      *slog.Logger

	selectedType schema.ObjectType

	// order holds ids of both attached and pending objects.
	order   []uuid.UUID
	entries map[uuid.UUID]*Entry
	pending map[uuid.UUID]schema.Object
}

func New(info Info) *Gallery {
	storageKey := DefaultStorageKey
	if info.StorageKey.Specified {
		storageKey = info.StorageKey.Value
	}
	randomColor := info.RandomColor
	if randomColor == nil {
		randomColor = func() uint32 {
			return rand.Uint32N(0xFFFFFF)
		}
	}
	logger := info.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Gallery{
		scene:       info.Scene,
		builder:     info.Builder,
		store:       info.Store,
		prompter:    info.Prompter,
		storageKey:  storageKey,
		randomColor: randomColor,
		logger:      logger,

		selectedType: schema.ObjectTypeText,

		entries: make(map[uuid.UUID]*Entry),
		pending: make(map[uuid.UUID]schema.Object),
	}
}

func (g *Gallery) SelectedType() schema.ObjectType {
	return g.selectedType
}

// SetSelectedType sets the type used by subsequent AddObject calls.
// The value is not validated here; AddObject rejects unknown types.
func (g *Gallery) SetSelectedType(objectType schema.ObjectType) {
	g.selectedType = objectType
}

// AddObject requests a new object of the selected type. Text objects without
// text ask the Prompter unless loading is set. The object is attached and,
// unless loading, saved once its mesh is built; for text that happens after
// the font arrives.
func (g *Gallery) AddObject(position dprec.Vec3, rotation schema.Euler, text opt.T[string], color opt.T[uint32], loading bool) (uuid.UUID, error) {
	object := schema.Object{
		Type:     g.selectedType,
		Position: schema.NewVec3(position),
		Rotation: rotation,
	}

	switch object.Type {
	case schema.ObjectTypeText:
		var value string
		if text.Specified {
			value = text.Value
		}
		if value == "" && !loading && g.prompter != nil {
			value, _ = g.prompter.Prompt(textPrompt)
		}
		if value == "" {
			return uuid.Nil, ErrEmptyText
		}
		object.Text = value
	case schema.ObjectTypeSphere, schema.ObjectTypeBox:
	default:
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownType, object.Type)
	}

	if color.Specified {
		object.Color = color.Value & 0xFFFFFF
	} else {
		object.Color = g.randomColor()
	}

	id := uuid.New()
	g.order = append(g.order, id)
	g.pending[id] = object

	g.logger.Debug("Adding object",
		slog.String("id", id.String()),
		slog.String("type", object.Type),
		slog.Any("position", object.Position),
		slog.Any("rotation", object.Rotation),
		slog.Int("color", int(object.Color)),
	)
	g.builder.Build(id, object, func(mesh Mesh, err error) {
		g.complete(id, mesh, err, loading)
	})
	return id, nil
}

func (g *Gallery) complete(id uuid.UUID, mesh Mesh, err error, loading bool) {
	object, ok := g.pending[id]
	if !ok {
		if mesh != nil {
			mesh.Dispose()
		}
		return
	}
	delete(g.pending, id)

	if err != nil {
		g.order = slices.DeleteFunc(g.order, func(candidate uuid.UUID) bool {
			return candidate == id
		})
		g.logger.Error("Failed to build object",
			slog.String("id", id.String()),
			slog.String("type", object.Type),
			slog.String("error", err.Error()),
		)
		if !loading {
			g.save()
		}
		return
	}

	g.scene.Attach(id, mesh)
	g.entries[id] = &Entry{
		ID:     id,
		Object: object,
		Mesh:   mesh,
	}
	g.logger.Info("Object added",
		slog.String("id", id.String()),
		slog.String("type", object.Type),
	)

	if !loading {
		g.save()
	}
}

// RemoveObject detaches and disposes the mesh of the object with the given
// id, drops its record and saves. It reports whether the object existed.
func (g *Gallery) RemoveObject(id uuid.UUID) bool {
	entry, ok := g.entries[id]
	if !ok {
		return false
	}
	g.scene.Detach(id, entry.Mesh)
	entry.Mesh.Dispose()
	delete(g.entries, id)
	g.order = slices.DeleteFunc(g.order, func(candidate uuid.UUID) bool {
		return candidate == id
	})
	g.logger.Info("Object removed",
		slog.String("id", id.String()),
		slog.String("type", entry.Object.Type),
	)
	g.save()
	return true
}

// Lookup returns the attached object with the given id.
func (g *Gallery) Lookup(id uuid.UUID) (Entry, bool) {
	entry, ok := g.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Objects returns the attached objects in placement order.
func (g *Gallery) Objects() []Entry {
	result := make([]Entry, 0, len(g.entries))
	for _, id := range g.order {
		if entry, ok := g.entries[id]; ok {
			result = append(result, *entry)
		}
	}
	return result
}

// Len returns the number of attached objects.
func (g *Gallery) Len() int {
	return len(g.entries)
}

// PendingLen returns the number of objects whose meshes are still being built.
func (g *Gallery) PendingLen() int {
	return len(g.pending)
}

// SaveObjects writes all objects to the store. Objects that are still being
// built are included so that a slow font download does not drop them.
func (g *Gallery) SaveObjects() error {
	records := make([]schema.Object, 0, len(g.order))
	for _, id := range g.order {
		if entry, ok := g.entries[id]; ok {
			records = append(records, entry.Object)
		} else if object, ok := g.pending[id]; ok {
			records = append(records, object)
		}
	}
	data, err := schema.Encode(records)
	if err != nil {
		return err
	}
	if err := g.store.Set(g.storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save objects: %w", err)
	}
	g.logger.Debug("Objects saved",
		slog.String("key", g.storageKey),
		slog.Int("count", len(records)),
	)
	return nil
}

func (g *Gallery) save() {
	if err := g.SaveObjects(); err != nil {
		g.logger.Error("Failed to save objects",
			slog.String("error", err.Error()),
		)
	}
}

// LoadObjects replays every stored object through AddObject without saving
// and returns how many were requested. The selected type is reset to text
// afterwards in all cases. A missing key is not an error.
func (g *Gallery) LoadObjects() (int, error) {
	defer g.SetSelectedType(schema.ObjectTypeText)

	value, ok := g.store.Get(g.storageKey)
	if !ok {
		return 0, nil
	}
	objects, err := schema.Decode([]byte(value))
	if err != nil {
		return 0, fmt.Errorf("failed to load objects: %w", err)
	}

	count := 0
	for _, object := range objects {
		g.SetSelectedType(object.Type)
		_, err := g.AddObject(object.Position.Vec3(), object.Rotation, opt.V(object.Text), opt.V(object.Color), true)
		if err != nil {
			g.logger.Warn("Skipping stored object",
				slog.String("type", object.Type),
				slog.String("error", err.Error()),
			)
			continue
		}
		count++
	}
	g.logger.Info("Objects loaded",
		slog.String("key", g.storageKey),
		slog.Int("count", count),
	)
	return count, nil
}
