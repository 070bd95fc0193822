// Package testcommon holds fixtures shared by tests across the module.
package testcommon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rodneylab/neighbours/points"
)

// FourPointUniverse returns a small hand-checked universe used for
// visibility tests. Point 20 at (2, 12) faces west with points 5 and 6
// inside its half circle at radius 10; point 19 faces south and sees only
// point 5 within 60 degrees at radius 30.
func FourPointUniverse() []points.Point {
	return []points.Point{
		{X: 8, Y: 6, Number: 5, Direction: points.North},
		{X: 6, Y: 19, Number: 6, Direction: points.East},
		{X: 28, Y: 26, Number: 19, Direction: points.South},
		{X: 2, Y: 12, Number: 20, Direction: points.West},
	}
}

// TwentyPointUniverse matches pointsio/testdata/valid_points.json. Point 1
// sits at (20, 20) facing north with ten other points strictly inside
// radius 20, exactly one of which lies within 45 degrees of north. Point 12
// is 20.0 units from point 1, on the radius itself.
func TwentyPointUniverse() []points.Point {
	return []points.Point{
		{X: 20, Y: 20, Number: 1, Direction: points.North},
		{X: 20, Y: 30, Number: 2, Direction: points.South},
		{X: 30, Y: 20, Number: 3, Direction: points.West},
		{X: 20, Y: 5, Number: 4, Direction: points.East},
		{X: 8, Y: 6, Number: 5, Direction: points.North},
		{X: 6, Y: 19, Number: 6, Direction: points.East},
		{X: 35, Y: 25, Number: 7, Direction: points.South},
		{X: 30, Y: 5, Number: 8, Direction: points.West},
		{X: 5, Y: 25, Number: 9, Direction: points.North},
		{X: 36, Y: 20, Number: 10, Direction: points.East},
		{X: 12, Y: 10, Number: 11, Direction: points.South},
		{X: 40, Y: 20, Number: 12, Direction: points.West},
		{X: 50, Y: 50, Number: 13, Direction: points.North},
		{X: 0, Y: 0, Number: 14, Direction: points.East},
		{X: 45, Y: 10, Number: 15, Direction: points.South},
		{X: 0, Y: 12, Number: 16, Direction: points.West},
		{X: 55, Y: 30, Number: 17, Direction: points.North},
		{X: 20, Y: 45, Number: 18, Direction: points.South},
		{X: 60, Y: 55, Number: 19, Direction: points.East},
		{X: 10, Y: 48, Number: 20, Direction: points.West},
	}
}

// WritePointsFile writes doc to a points.json file under a test temp
// directory and returns its path.
func WritePointsFile(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.json")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("error writing points fixture: %v", err)
	}
	return path
}
