package earth

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mokiat/gomath/dprec"
)

const (
	StarMinRadius = 25.0
	StarMaxRadius = 50.0

	starHue        = 0.6 * 360
	starSaturation = 0.2
)

type Star struct {
	Position dprec.Vec3
	Color    colorful.Color
}

// GenerateStarfield scatters count stars uniformly over directions on a
// shell between StarMinRadius and StarMaxRadius. Colors are pale blue
// with random lightness.
func GenerateStarfield(rng *rand.Rand, count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		radius := StarMinRadius + rng.Float64()*(StarMaxRadius-StarMinRadius)
		u := rng.Float64()
		v := rng.Float64()
		theta := 2 * math.Pi * u
		phi := math.Acos(2*v - 1)
		stars[i] = Star{
			Position: dprec.NewVec3(
				radius*math.Sin(phi)*math.Cos(theta),
				radius*math.Sin(phi)*math.Sin(theta),
				radius*math.Cos(phi),
			),
			Color: colorful.Hsl(starHue, starSaturation, rng.Float64()),
		}
	}
	return stars
}

// StarBuffers flattens stars into position and RGB arrays suitable for
// BufferGeometry attributes.
func StarBuffers(stars []Star) (positions, colors []float32) {
	positions = make([]float32, 0, len(stars)*3)
	colors = make([]float32, 0, len(stars)*3)
	for _, star := range stars {
		positions = append(positions,
			float32(star.Position.X),
			float32(star.Position.Y),
			float32(star.Position.Z),
		)
		c := star.Color.Clamped()
		colors = append(colors, float32(c.R), float32(c.G), float32(c.B))
	}
	return positions, colors
}
