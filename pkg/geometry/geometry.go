package geometry

import (
	"YogaPoseAPI/internal/entity"
	"errors"
	"math"
)

// Vectors shorter than this are considered zero-length, making the angle
// undefined.
const epsilon = 1e-6

var ErrDegenerateGeometry = errors.New("degenerate geometry: zero-length vector")

// AngleAtVertex returns the angle in degrees formed at vertex by p1 and p2,
// always in [0, 180]. The computation runs in 3D when all three points carry
// a Z coordinate, otherwise in 2D. Fails with ErrDegenerateGeometry when
// either limb vector is shorter than epsilon.
func AngleAtVertex(p1, vertex, p2 entity.Point) (float64, error) {
	v1x := p1.X - vertex.X
	v1y := p1.Y - vertex.Y
	v2x := p2.X - vertex.X
	v2y := p2.Y - vertex.Y

	var v1z, v2z float64
	if p1.Z != nil && vertex.Z != nil && p2.Z != nil {
		v1z = *p1.Z - *vertex.Z
		v2z = *p2.Z - *vertex.Z
	}

	mag1 := math.Sqrt(v1x*v1x + v1y*v1y + v1z*v1z)
	mag2 := math.Sqrt(v2x*v2x + v2y*v2y + v2z*v2z)
	if mag1 < epsilon || mag2 < epsilon {
		return 0, ErrDegenerateGeometry
	}

	cos := (v1x*v2x + v1y*v2y + v1z*v2z) / (mag1 * mag2)

	// Floating point can push the quotient a hair past [-1, 1].
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi, nil
}

// Distance returns the Euclidean distance between two points in the
// detector's normalized space. 3D when both points carry Z, else 2D.
func Distance(p1, p2 entity.Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y

	var dz float64
	if p1.Z != nil && p2.Z != nil {
		dz = *p1.Z - *p2.Z
	}

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
