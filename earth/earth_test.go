package earth

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGlobe(t *testing.T) {
	globe := NewGlobe()
	assert.InDelta(t, -23.4, globe.Tilt.Degrees(), 1e-9)

	tcs := []struct {
		name        string
		material    MaterialKind
		scale       float64
		spin        float64
		transparent bool
	}{
		{name: "surface", material: MaterialStandard, scale: 1, spin: 0.002},
		{name: "lights", material: MaterialBasic, scale: 1, spin: 0.002},
		{name: "clouds", material: MaterialStandard, scale: 1.003, spin: 0.0025, transparent: true},
		{name: "glow", material: MaterialFresnel, scale: 1.01, spin: 0.002},
	}
	require.Len(t, globe.Layers, len(tcs))
	for i, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			layer := globe.Layers[i]
			assert.Equal(t, tc.name, layer.Name)
			assert.Equal(t, tc.material, layer.Material)
			assert.Equal(t, tc.scale, layer.Scale)
			assert.InDelta(t, tc.spin, layer.Spin.Radians(), 1e-12)
			assert.Equal(t, tc.transparent, layer.Transparent())
			assert.Zero(t, layer.Angle.Radians())
		})
	}
	assert.Equal(t, "earthcloudmaptrans.jpg", globe.Layer("clouds").AlphaMap)
	assert.Nil(t, globe.Layer("moon"))
}

func TestGlobeAdvance(t *testing.T) {
	globe := NewGlobe()
	for range 100 {
		globe.Advance()
	}
	assert.InDelta(t, 0.2, globe.Layer("surface").Angle.Radians(), 1e-9)
	assert.InDelta(t, 0.2, globe.Layer("lights").Angle.Radians(), 1e-9)
	assert.InDelta(t, 0.25, globe.Layer("clouds").Angle.Radians(), 1e-9)
	assert.InDelta(t, 0.2, globe.Layer("glow").Angle.Radians(), 1e-9)
}

func TestGenerateStarfield(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	stars := GenerateStarfield(rng, 2000)
	require.Len(t, stars, 2000)

	for _, star := range stars {
		p := star.Position
		radius := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		assert.GreaterOrEqual(t, radius, StarMinRadius-1e-9)
		assert.Less(t, radius, StarMaxRadius+1e-9)

		h, s, _ := star.Color.Hsl()
		if s > 0 {
			assert.InDelta(t, 216, h, 1)
		}
	}
}

func TestGenerateStarfieldDeterministic(t *testing.T) {
	a := GenerateStarfield(rand.New(rand.NewPCG(7, 7)), 10)
	b := GenerateStarfield(rand.New(rand.NewPCG(7, 7)), 10)
	assert.Equal(t, a, b)
	assert.Empty(t, GenerateStarfield(rand.New(rand.NewPCG(7, 7)), 0))
}

func TestStarBuffers(t *testing.T) {
	stars := GenerateStarfield(rand.New(rand.NewPCG(3, 4)), 5)
	positions, colors := StarBuffers(stars)
	require.Len(t, positions, 15)
	require.Len(t, colors, 15)
	assert.Equal(t, float32(stars[2].Position.Y), positions[7])
	for _, c := range colors {
		assert.GreaterOrEqual(t, c, float32(0))
		assert.LessOrEqual(t, c, float32(1))
	}
}

func TestDefaultFresnel(t *testing.T) {
	f := DefaultFresnel()
	assert.Equal(t, uint32(0x0088ff), f.RimColor)
	assert.Equal(t, uint32(0), f.FacingColor)
	assert.Equal(t, 0.1, f.Bias)
	assert.Equal(t, 1.0, f.Scale)
	assert.Equal(t, 4.0, f.Power)
	assert.Contains(t, FresnelVertexShader, "fresnelPower")
	assert.Contains(t, FresnelFragmentShader, "vReflectionFactor")
}
