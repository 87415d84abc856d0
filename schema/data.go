package schema

import (
	"encoding/json"
	"fmt"

	"github.com/mokiat/gomath/dprec"
)

type ObjectType = string

const (
	ObjectTypeText   ObjectType = "text"
	ObjectTypeSphere ObjectType = "sphere"
	ObjectTypeBox    ObjectType = "box"
)

// Object is a placed gallery object as it is kept in local storage.
type Object struct {
	Type     ObjectType `json:"type"`
	Text     string     `json:"text,omitempty"`
	Position Vec3       `json:"position"`
	Rotation Euler      `json:"rotation"`
	Color    uint32     `json:"color"`
}

// Vec3 encodes as a three element array.
type Vec3 [3]float64

func NewVec3(v dprec.Vec3) Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Vec3() dprec.Vec3 {
	return dprec.NewVec3(v[0], v[1], v[2])
}

// Euler holds XYZ rotation angles in radians.
type Euler [3]float64

func NewEuler(x, y, z dprec.Angle) Euler {
	return Euler{x.Radians(), y.Radians(), z.Radians()}
}

func (e Euler) X() dprec.Angle { return dprec.Radians(e[0]) }
func (e Euler) Y() dprec.Angle { return dprec.Radians(e[1]) }
func (e Euler) Z() dprec.Angle { return dprec.Radians(e[2]) }

// UnmarshalJSON accepts both [x, y, z] and the three.js [x, y, z, order] form.
// The order element is ignored; rotations are always XYZ.
func (e *Euler) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("euler: %w", err)
	}
	if len(raw) != 3 && len(raw) != 4 {
		return fmt.Errorf("euler: expected 3 or 4 elements, got %d", len(raw))
	}
	for i := range 3 {
		if err := json.Unmarshal(raw[i], &e[i]); err != nil {
			return fmt.Errorf("euler element %d: %w", i, err)
		}
	}
	return nil
}

// Decode parses a stored gallery. Empty input and JSON null both yield no objects.
func Decode(data []byte) ([]Object, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var objects []Object
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("failed to decode objects: %w", err)
	}
	return objects, nil
}

func Encode(objects []Object) ([]byte, error) {
	if objects == nil {
		objects = []Object{}
	}
	data, err := json.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("failed to encode objects: %w", err)
	}
	return data, nil
}
