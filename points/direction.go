// Package points models numbered, direction-facing points on a 2D integer
// grid and answers visibility queries over collections of them.
package points

import (
	"encoding/json"
	"fmt"
	"math"
)

// Direction is the compass direction a point faces.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the direction name as used in points files.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// Bearing returns the direction as a clockwise bearing in radians, with
// north at zero. Values outside the four compass directions map to zero.
func (d Direction) Bearing() float64 {
	switch d {
	case East:
		return math.Pi / 2
	case South:
		return math.Pi
	case West:
		return 3 * math.Pi / 2
	default:
		return 0
	}
}

// ParseDirection maps a direction name from a points file to its Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "North":
		return North, nil
	case "East":
		return East, nil
	case "South":
		return South, nil
	case "West":
		return West, nil
	}
	return 0, fmt.Errorf("unknown direction %q", name)
}

// MarshalJSON encodes the direction as its name.
func (d Direction) MarshalJSON() ([]byte, error) {
	switch d {
	case North, East, South, West:
		return json.Marshal(d.String())
	default:
		return nil, fmt.Errorf("unknown direction %d", int(d))
	}
}

// UnmarshalJSON decodes a direction name.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := ParseDirection(name)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
