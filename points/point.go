package points

import (
	"fmt"

	"github.com/rodneylab/neighbours/geometry"
)

// Point is a numbered grid position facing one of the four compass
// directions. Numbers identify points in visibility queries and are expected
// to be unique within a collection, though nothing enforces that.
type Point struct {
	X         int32     `json:"x"`
	Y         int32     `json:"y"`
	Number    uint32    `json:"number"`
	Direction Direction `json:"direction"`
}

// Pos returns the point's grid position.
func (p Point) Pos() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("#%d (%d, %d) facing %s", p.Number, p.X, p.Y, p.Direction)
}
