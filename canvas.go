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
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultDetail is the usual angular step, in degrees, for sampling
	// arcs, circles and spirals.
	DefaultDetail = 0.1

	// DefaultGap is the usual distance between neighbouring windings of a
	// spiral.
	DefaultGap = 1.0

	// DefaultMaxSamples is the default limit on the number of points a
	// single arc or spiral may generate.
	DefaultMaxSamples = 1 << 20
)

var (
	// ErrInvalidDetail is returned when a curve is sampled with a detail
	// value which is zero, negative, NaN or infinite.
	ErrInvalidDetail = errors.New("invalid sampling detail")

	// ErrTooManySamples is returned when sampling a curve would generate
	// more than Canvas.MaxSamples points.
	ErrTooManySamples = errors.New("too many samples")
)

// stepSlack is the fraction of an angular step by which an intermediate
// sample must precede the end of an arc.  Samples closer to the end than
// this are dropped, since the exact end point follows immediately.
const stepSlack = 1e-9

// Canvas records pen movements and collects the resulting paths.
//
// The pen starts at the origin.  Drawing primitives extend the current
// path, moves start a new one.  A path is only kept if at least one line
// was drawn after the last move.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	// MaxSamples limits the number of points generated by a single call to
	// Arc, Circle or Spiral.  Zero means DefaultMaxSamples.
	MaxSamples int

	paths   Drawing
	pos     Point // current pen position
	current Path  // path under construction, starts at a move
}

// NewCanvas returns an empty canvas with the pen at the origin.
func NewCanvas() *Canvas {
	return &Canvas{
		MaxSamples: DefaultMaxSamples,
		current:    Path{{}},
	}
}

// Position returns the current pen position.
func (c *Canvas) Position() Point {
	return c.pos
}

// Move lifts the pen and moves it to (x, y).
func (c *Canvas) Move(x, y float64) {
	c.moveTo(Point{X: x, Y: y})
}

// Line draws a straight line from the current position to (x, y).
func (c *Canvas) Line(x, y float64) {
	c.lineTo(Point{X: x, Y: y})
}

// Rect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1), starting and ending at (x0, y0).
func (c *Canvas) Rect(x0, y0, x1, y1 float64) {
	c.Move(x0, y0)
	c.Line(x1, y0)
	c.Line(x1, y1)
	c.Line(x0, y1)
	c.Line(x0, y0)
}

// Arc draws the circular arc around (cx, cy) with radius |r|, between the
// angles start and end (in radians).  The pen first moves to the start of
// the arc without drawing.
//
// For r >= 0 the arc runs counter-clockwise from start to end.  A negative
// radius reverses the direction: the arc then runs clockwise from the larger
// of the two angles to the smaller one.  This allows callers to choose the
// direction which saves pen travel, without changing the shape.
//
// The detail parameter is the angular step in degrees.  The arc always ends
// exactly at the end angle, even if the sweep is not a multiple of the
// step.  If detail is not a positive, finite number, ErrInvalidDetail is
// returned and the canvas is left unchanged.
func (c *Canvas) Arc(cx, cy, r, start, end, detail float64) error {
	pts, err := sampleArc(cx, cy, r, start, end, detail, c.limit())
	if err != nil {
		return fmt.Errorf("arc: %w", err)
	}
	Logger().Debug("arc sampled", "points", len(pts), "radius", r, "detail", detail)
	c.polyline(pts)
	return nil
}

// Circle draws a full circle around (cx, cy).
// This is the same as an arc from 0 to 2π.
func (c *Canvas) Circle(cx, cy, r, detail float64) error {
	return c.Arc(cx, cy, r, 0, 2*math.Pi, detail)
}

// Spiral draws an Archimedean spiral from the centre (cx, cy) outwards.
// The spiral makes the given number of windings, neighbouring windings are
// gap units apart.  The detail parameter is the angular step in degrees,
// steps are larger close to the centre.
//
// If windings is not positive, the pen only moves to the centre.
func (c *Canvas) Spiral(cx, cy, windings, gap, detail float64) error {
	pts, err := sampleSpiral(cx, cy, windings, gap, detail, c.limit())
	if err != nil {
		return fmt.Errorf("spiral: %w", err)
	}
	Logger().Debug("spiral sampled", "points", len(pts), "windings", windings, "detail", detail)
	c.polyline(pts)
	return nil
}

// Finalize returns the paths drawn so far.
//
// A path still under construction is closed, and is included if it
// contains at least two points.  The returned Drawing is a copy and is
// not affected by later calls on the canvas.  Calling Finalize repeatedly
// without drawing in between returns the same result each time.
func (c *Canvas) Finalize() Drawing {
	c.flush()
	c.current = Path{c.pos}

	d := c.paths.Clone()
	Logger().Debug("drawing finalized", "paths", len(d), "points", d.NumPoints())
	return d
}

func (c *Canvas) limit() int {
	if c.MaxSamples > 0 {
		return c.MaxSamples
	}
	return DefaultMaxSamples
}

// flush moves the current path to the list of finished paths, if it
// contains at least one line.
func (c *Canvas) flush() {
	if len(c.current) > 1 {
		c.paths = append(c.paths, c.current)
	}
	c.current = nil
}

func (c *Canvas) moveTo(p Point) {
	c.flush()
	c.pos = p
	c.current = Path{p}
}

func (c *Canvas) lineTo(p Point) {
	if len(c.current) == 0 {
		c.current = Path{c.pos}
	}
	c.current = append(c.current, p)
	c.pos = p
}

// polyline moves to the first point of pts and draws lines through the
// remaining points.
func (c *Canvas) polyline(pts []Point) {
	c.moveTo(pts[0])
	for _, p := range pts[1:] {
		c.lineTo(p)
	}
}

func checkDetail(detail float64) error {
	if !(detail > 0) || math.IsInf(detail, 1) {
		return fmt.Errorf("%w %g", ErrInvalidDetail, detail)
	}
	return nil
}

// sampleArc returns the points of an arc, as described for Canvas.Arc.
// The first point is the start of the arc, the last point is the exact end.
//
// Intermediate angles are computed as from+k*increment, rather than by
// repeated addition, so that rounding errors do not accumulate.
func sampleArc(cx, cy, r, start, end, detail float64, limit int) ([]Point, error) {
	if err := checkDetail(detail); err != nil {
		return nil, err
	}

	from, to := start, end
	if r < 0 {
		r = -r
		detail = -detail
		from, to = max(start, end), min(start, end)
	}
	increment := 2 * math.Pi / (360 / detail)

	// steps is negative if the sweep runs against the direction of the
	// increment, and NaN for non-finite angles.  In both cases no
	// intermediate points are generated.
	steps := (to - from) / increment
	n := 0
	switch {
	case steps > float64(limit):
		return nil, fmt.Errorf("%w: %.0f steps", ErrTooManySamples, steps)
	case steps > 1:
		n = int(math.Ceil(steps-stepSlack)) - 1
	}

	pts := make([]Point, 0, n+2)
	pts = append(pts, Polar(cx, cy, r, from))
	for k := 1; k <= n; k++ {
		pts = append(pts, Polar(cx, cy, r, from+float64(k)*increment))
	}
	pts = append(pts, Polar(cx, cy, r, to))
	return pts, nil
}

// sampleSpiral returns the points of a spiral, as described for
// Canvas.Spiral.  The first point is the centre, the last point is the
// outer end of the spiral.
func sampleSpiral(cx, cy, windings, gap, detail float64, limit int) ([]Point, error) {
	if err := checkDetail(detail); err != nil {
		return nil, err
	}

	centre := Point{X: cx, Y: cy}
	if !(windings > 0) {
		return []Point{centre}, nil
	}

	// Each step advances n by at least base, so the loop below runs at
	// most windings/base times.
	base := detail / 360
	if windings/base > float64(limit) {
		return nil, fmt.Errorf("%w: %.0f windings at detail %g", ErrTooManySamples, windings, detail)
	}

	outer := gap * windings
	pts := []Point{centre}
	for n := 0.0; n < windings; n += base / max(n/windings, 0.2) {
		pts = append(pts, Polar(cx, cy, (n/windings)*outer, frac(n)*2*math.Pi))
	}
	pts = append(pts, Polar(cx, cy, outer, frac(windings)*2*math.Pi))
	return pts, nil
}
