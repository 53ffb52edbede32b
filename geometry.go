// seehuhn.de/go/penplot - pen plotter drawings from geometric primitives
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package penplot

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a location on the drawing surface.
type Point = vec.Vec2

// Polar converts polar coordinates around the centre (cx, cy) into
// a point.  The angle a is given in radians.  Negative radii and angles
// outside [0, 2π) are allowed.
func Polar(cx, cy, r, a float64) Point {
	return Point{
		X: cx + r*math.Cos(a),
		Y: cy + r*math.Sin(a),
	}
}

// frac returns the fractional part of x in [0, 1), also for negative x.
func frac(x float64) float64 {
	return x - math.Floor(x)
}
