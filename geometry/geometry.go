// Package geometry provides the primitives behind visibility queries on a
// 2D integer grid: straight-line distance between grid points, clockwise
// bearings and circular-sector membership tests.
package geometry

import (
	"math"

	"github.com/rodneylab/neighbours/util"
)

// verticalEpsilon is the threshold below which the vertical delta between
// two points is treated as zero when computing a bearing.
const verticalEpsilon = 1e-10

// Point is a position on the integer grid.
type Point struct {
	X int32
	Y int32
}

// Distance returns the Euclidean distance between two grid points. It is
// always defined, and zero when the points coincide.
func Distance(p1 Point, p2 Point) float64 {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Bearing returns the angular position of p2 as seen from p1, in radians,
// in the range [0, 2π). A bearing of zero means p2 is directly above p1
// (same x, greater y) and the angle increases clockwise, so east is π/2,
// south is π and west is 3π/2. Axis-aligned offsets produce those cardinal
// values exactly.
//
// When the two points are horizontally aligned the bearing is π/2 for a
// point to the right and 3π/2 otherwise. Coincident points fall into the
// same branch and resolve to 3π/2; that value is arbitrary and callers
// should not rely on it.
func Bearing(p1 Point, p2 Point) float64 {
	dx := float64(p2.X - p1.X)
	dy := float64(p2.Y - p1.Y)

	if util.Abs(dy) < verticalEpsilon {
		if dx > 0 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}

	theta := math.Atan(dx / dy)

	if dy >= 0 {
		if dx >= 0 {
			return theta
		}
		return 2*math.Pi + theta
	}
	return math.Pi + theta
}
