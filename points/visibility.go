package points

import (
	"github.com/rodneylab/neighbours/geometry"
	"github.com/rodneylab/neighbours/util"
)

// CloseNeighbours returns the members of neighbourhood that point can see:
// those lying strictly within radius units of it and inside the sector
// sweeping halfAngle degrees either side of the direction it faces.
// halfAngle should be between zero and 180 degrees. point itself is never
// included; candidates are matched by number, so any entry sharing point's
// number is skipped. Results keep neighbourhood order.
func CloseNeighbours(point Point, halfAngle uint32, radius uint32, neighbourhood []Point) []Point {
	sector := geometry.Sector{
		Center:    point.Direction.Bearing(),
		HalfAngle: util.DegreesToRadians(float64(halfAngle)),
	}

	var result []Point
	for _, neighbour := range neighbourhood {
		if neighbour.Number == point.Number {
			continue
		}
		if geometry.Distance(point.Pos(), neighbour.Pos()) >= float64(radius) {
			continue
		}
		if sector.Contains(geometry.Bearing(point.Pos(), neighbour.Pos())) {
			result = append(result, neighbour)
		}
	}
	return result
}

// VisibleFromNeighbours finds the point numbered number in neighbourhood and
// returns its close neighbours for the given half angle (degrees) and
// radius. The result is empty when no point carries that number. Numbers are
// not checked for uniqueness; the first match is used.
func VisibleFromNeighbours(number uint32, halfAngle uint32, radius uint32, neighbourhood []Point) []Point {
	for _, candidate := range neighbourhood {
		if candidate.Number == number {
			return CloseNeighbours(candidate, halfAngle, radius, neighbourhood)
		}
	}
	return nil
}
