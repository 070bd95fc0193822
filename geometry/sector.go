package geometry

import (
	"math"
)

// Sector describes a circular sector by its centre bearing and half-angle,
// both in radians. The sector spans [Center-HalfAngle, Center+HalfAngle]
// with both bounds included, wrapping across the 0/2π seam where needed.
// HalfAngle is expected to be between zero and π.
type Sector struct {
	Center    float64
	HalfAngle float64
}

// Contains reports whether bearing lies within the sector. The two halves
// either side of the centre are checked independently so that each can wrap
// across the 0/2π seam on its own. A half-angle of π accepts every bearing;
// a half-angle of zero accepts only the centre itself.
func (s Sector) Contains(bearing float64) bool {
	return s.insideLeft(bearing) || s.insideRight(bearing)
}

// insideLeft checks the half sweeping counter-clockwise from the centre,
// [Center-HalfAngle, Center].
func (s Sector) insideLeft(bearing float64) bool {
	lower := s.Center - s.HalfAngle
	if lower < 0 {
		// lower bound wraps through 0 radians
		return (lower+2*math.Pi <= bearing && bearing <= 2*math.Pi) ||
			(0 <= bearing && bearing <= s.Center)
	}
	return lower <= bearing && bearing <= s.Center
}

// insideRight checks the half sweeping clockwise from the centre,
// [Center, Center+HalfAngle].
func (s Sector) insideRight(bearing float64) bool {
	upper := s.Center + s.HalfAngle
	if upper >= 2*math.Pi {
		// upper bound wraps through 2π radians
		return (s.Center <= bearing && bearing <= 2*math.Pi) ||
			(0 <= bearing && bearing <= upper-2*math.Pi)
	}
	return s.Center <= bearing && bearing <= upper
}
