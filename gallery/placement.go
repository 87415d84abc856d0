package gallery

import "github.com/mokiat/gomath/dprec"

const DefaultPlaceDistance = 4.0

// Placement returns the point distance units in front of the camera.
func Placement(cameraPosition, forward dprec.Vec3, distance float64) dprec.Vec3 {
	if forward == (dprec.Vec3{}) {
		return cameraPosition
	}
	return dprec.Vec3Sum(cameraPosition, dprec.Vec3Prod(dprec.UnitVec3(forward), distance))
}

// PointerNDC converts client pixel coordinates to normalized device
// coordinates, with y pointing up.
func PointerNDC(clientX, clientY, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return clientX/width*2 - 1, -(clientY/height)*2 + 1
}
