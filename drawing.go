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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Path is one continuous pen-down stroke.
type Path []Point

// Drawing is an ordered list of paths.  The order of the paths is the order
// in which a plotter draws them.
type Drawing []Path

// Clone returns a deep copy of d.
func (d Drawing) Clone() Drawing {
	if d == nil {
		return nil
	}
	res := make(Drawing, len(d))
	for i, p := range d {
		res[i] = append(Path(nil), p...)
	}
	return res
}

// NumPoints returns the total number of points in all paths.
func (d Drawing) NumPoints() int {
	n := 0
	for _, p := range d {
		n += len(p)
	}
	return n
}

// Bounds returns the smallest axis-aligned rectangle containing all points
// of the drawing.  The second return value is false if the drawing has no
// points.
func (d Drawing) Bounds() (rect.Rect, bool) {
	var b rect.Rect
	first := true
	for _, p := range d {
		for _, pt := range p {
			if first {
				b = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				first = false
				continue
			}
			b.LLx = min(b.LLx, pt.X)
			b.LLy = min(b.LLy, pt.Y)
			b.URx = max(b.URx, pt.X)
			b.URy = max(b.URy, pt.Y)
		}
	}
	return b, !first
}

// PenTravel returns the distance the pen travels while lifted, when the
// drawing is plotted in order, starting and ending at the origin.
func (d Drawing) PenTravel() float64 {
	var total float64
	var pos vec.Vec2
	for _, p := range d {
		if len(p) == 0 {
			continue
		}
		total += p[0].Sub(pos).Length()
		pos = p[len(p)-1]
	}
	if len(d) > 0 {
		total += pos.Length()
	}
	return total
}

// Transform returns a copy of d with the affine transformation m applied to
// every point.
func (d Drawing) Transform(m matrix.Matrix) Drawing {
	res := make(Drawing, len(d))
	for i, p := range d {
		q := make(Path, len(p))
		for j, pt := range p {
			q[j] = Apply(m, pt)
		}
		res[i] = q
	}
	return res
}

// Iter returns the drawing as a path for the geom packages.  Each path
// starts with a MoveTo command, followed by LineTo commands for the
// remaining points.
func (d Drawing) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range d {
			for i := range p {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				if !yield(cmd, p[i:i+1]) {
					return
				}
			}
		}
	}
}

// Apply maps the point p using the affine transformation m.
func Apply(m matrix.Matrix, p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Fit returns a transformation which maps the rectangle box into target,
// keeping the aspect ratio and leaving at least margin units free on every
// side.  The image of box is centred in target.  If flipY is set, the y-axis
// is reversed, for example to map drawing coordinates (y pointing down) to
// PDF coordinates (y pointing up).
//
// A box with zero width or height is only scaled along its other
// dimension.  A box consisting of a single point is translated but not
// scaled.
func Fit(box, target rect.Rect, margin float64, flipY bool) matrix.Matrix {
	w := box.URx - box.LLx
	h := box.URy - box.LLy
	availW := target.URx - target.LLx - 2*margin
	availH := target.URy - target.LLy - 2*margin

	s := 1.0
	switch {
	case w > 0 && h > 0:
		s = min(availW/w, availH/h)
	case w > 0:
		s = availW / w
	case h > 0:
		s = availH / h
	}

	boxX := (box.LLx + box.URx) / 2
	boxY := (box.LLy + box.URy) / 2
	targetX := (target.LLx + target.URx) / 2
	targetY := (target.LLy + target.URy) / 2

	if flipY {
		return matrix.Matrix{s, 0, 0, -s, targetX - s*boxX, targetY + s*boxY}
	}
	return matrix.Matrix{s, 0, 0, s, targetX - s*boxX, targetY - s*boxY}
}
