// Package earth describes the layered, rotating Earth scene independently
// of the renderer.
package earth

import (
	"github.com/mokiat/gomath/dprec"
)

// AxialTilt is applied to the group holding all globe layers.
var AxialTilt = dprec.Degrees(-23.4)

type MaterialKind int

const (
	// MaterialStandard is lit by the sun.
	MaterialStandard MaterialKind = iota
	// MaterialBasic ignores lighting.
	MaterialBasic
	// MaterialFresnel is the atmospheric rim glow.
	MaterialFresnel
)

type Layer struct {
	Name     string
	Material MaterialKind

	// Texture and AlphaMap are file names relative to the asset base.
	Texture  string
	AlphaMap string

	// Opacity below 1 makes the layer transparent and additive.
	Opacity float64
	Scale   float64

	// Spin is added to Angle on every frame.
	Spin  dprec.Angle
	Angle dprec.Angle
}

func (l *Layer) Transparent() bool {
	return l.Opacity < 1
}

type Globe struct {
	Tilt   dprec.Angle
	Layers []*Layer
}

// NewGlobe returns the surface, night lights, clouds and glow layers in
// the order they are added to the scene.
func NewGlobe() *Globe {
	return &Globe{
		Tilt: AxialTilt,
		Layers: []*Layer{
			{
				Name:     "surface",
				Material: MaterialStandard,
				Texture:  "earthmap1k.jpg",
				Opacity:  1,
				Scale:    1,
				Spin:     dprec.Radians(0.002),
			},
			{
				Name:     "lights",
				Material: MaterialBasic,
				Texture:  "earthlights1k.jpg",
				Opacity:  1,
				Scale:    1,
				Spin:     dprec.Radians(0.002),
			},
			{
				Name:     "clouds",
				Material: MaterialStandard,
				Texture:  "earthcloudmap.jpg",
				AlphaMap: "earthcloudmaptrans.jpg",
				Opacity:  0.8,
				Scale:    1.003,
				Spin:     dprec.Radians(0.0025),
			},
			{
				Name:     "glow",
				Material: MaterialFresnel,
				Opacity:  1,
				Scale:    1.01,
				Spin:     dprec.Radians(0.002),
			},
		},
	}
}

// Layer returns the layer with the given name, or nil.
func (g *Globe) Layer(name string) *Layer {
	for _, layer := range g.Layers {
		if layer.Name == name {
			return layer
		}
	}
	return nil
}

// Advance rotates every layer by its spin. Called once per frame.
func (g *Globe) Advance() {
	for _, layer := range g.Layers {
		layer.Angle += layer.Spin
	}
}
