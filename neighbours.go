// Package neighbours answers visibility queries over numbered points on a
// 2D integer grid. Each point faces one of the four compass directions, and
// a query returns the other points lying strictly inside a given radius and
// within a chosen angle either side of the direction faced.
package neighbours

import (
	"io"

	"github.com/rodneylab/neighbours/points"
	"github.com/rodneylab/neighbours/pointsio"
)

// VisiblePoints loads the points file at path and returns the points visible
// from the point numbered number: those strictly within radius units of it
// and no more than halfAngle degrees either side of the direction it faces.
// halfAngle should be between zero and 180 degrees. The result is empty when
// no point carries the given number.
func VisiblePoints(path string, number uint32, halfAngle uint32, radius uint32) ([]points.Point, error) {
	universe, err := pointsio.ReadPointsFile(path)
	if err != nil {
		return nil, err
	}
	return points.VisibleFromNeighbours(number, halfAngle, radius, universe), nil
}

// VisiblePointsFromReader answers the same query as VisiblePoints over a
// points document read from r.
func VisiblePointsFromReader(r io.Reader, number uint32, halfAngle uint32, radius uint32) ([]points.Point, error) {
	universe, err := pointsio.ReadPoints(r)
	if err != nil {
		return nil, err
	}
	return points.VisibleFromNeighbours(number, halfAngle, radius, universe), nil
}
