package gallery

import (
	"testing"

	"github.com/mokiat/gomath/dprec"
	"github.com/stretchr/testify/assert"
)

func TestPlacement(t *testing.T) {
	tcs := []struct {
		name     string
		camera   dprec.Vec3
		forward  dprec.Vec3
		distance float64
		want     dprec.Vec3
	}{
		{
			name:     "default camera",
			camera:   dprec.NewVec3(0, 0, 5),
			forward:  dprec.NewVec3(0, 0, -1),
			distance: DefaultPlaceDistance,
			want:     dprec.NewVec3(0, 0, 1),
		},
		{
			name:     "forward is normalized",
			camera:   dprec.NewVec3(1, 1, 1),
			forward:  dprec.NewVec3(10, 0, 0),
			distance: 4,
			want:     dprec.NewVec3(5, 1, 1),
		},
		{
			name:     "diagonal",
			camera:   dprec.ZeroVec3(),
			forward:  dprec.NewVec3(0, 3, 4),
			distance: 5,
			want:     dprec.NewVec3(0, 3, 4),
		},
		{
			name:     "zero forward stays at camera",
			camera:   dprec.NewVec3(2, 3, 4),
			forward:  dprec.ZeroVec3(),
			distance: 4,
			want:     dprec.NewVec3(2, 3, 4),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Placement(tc.camera, tc.forward, tc.distance)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
			assert.InDelta(t, tc.want.Z, got.Z, 1e-9)
		})
	}
}

func TestPointerNDC(t *testing.T) {
	tcs := []struct {
		name          string
		x, y          float64
		width, height float64
		wantX, wantY  float64
	}{
		{name: "center", x: 400, y: 300, width: 800, height: 600, wantX: 0, wantY: 0},
		{name: "top left", x: 0, y: 0, width: 800, height: 600, wantX: -1, wantY: 1},
		{name: "bottom right", x: 800, y: 600, width: 800, height: 600, wantX: 1, wantY: -1},
		{name: "quarter", x: 200, y: 450, width: 800, height: 600, wantX: -0.5, wantY: -0.5},
		{name: "empty viewport", x: 10, y: 10, width: 0, height: 0, wantX: 0, wantY: 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			x, y := PointerNDC(tc.x, tc.y, tc.width, tc.height)
			assert.InDelta(t, tc.wantX, x, 1e-9)
			assert.InDelta(t, tc.wantY, y, 1e-9)
		})
	}
}
