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

package patterns

import (
	"seehuhn.de/go/penplot"
)

// linesBoxesArcs exercises the basic drawing primitives.
func linesBoxesArcs(c *penplot.Canvas) error {
	rng := newRand()
	p := &pen{Canvas: c}
	for range 10 {
		c.Line(rng.Float64()*2, rng.Float64())
	}
	for range 10 {
		x := rng.Float64() * 2
		y := rng.Float64()
		c.Rect(x, y, x+rng.Float64(), y+rng.Float64())
	}
	for i := range 10 {
		cx := rng.Float64() * 2
		cy := rng.Float64()
		r := rng.Float64() / 2
		p.arc(cx, cy, r, float64(i), float64(2*i), step)
	}
	return p.err
}

func concentricSquares(c *penplot.Canvas) error {
	const m = 20
	for i := 2; i < m; i++ {
		c.Rect(m-float64(i), m-float64(i), m+float64(i), m+float64(i))
	}
	return nil
}

func radialLines(c *penplot.Canvas) error {
	const m = 36 * 2
	rng := newRand()
	p := &pen{Canvas: c}
	for i := range m {
		a := tau * float64(i) / m
		r1 := 1 + rng.Float64()
		r2 := 6 + rng.Float64()*2
		p.move(xy(r2, a))
		p.line(xy(r1, a))
	}
	return nil
}

func radialLinesInterrupted(c *penplot.Canvas) error {
	const m = 36 * 5
	rng := newRand()
	p := &pen{Canvas: c}
	for i := range m {
		a := tau * float64(i) / m
		r1 := 6 + rng.Float64()*2
		r2 := 4 + rng.Float64()
		r4 := 3 + rng.Float64()
		r3 := 1 + rng.Float64()
		p.move(xy(r1, a))
		p.line(xy(r2, a))
		p.move(xy(r3, a))
		p.line(xy(r4, a))
	}
	return nil
}

// uji draws the word uji, as in Dōgen's "Uji (Being-Time)", with several
// parallel strokes per line.
func uji(c *penplot.Canvas) error {
	const (
		m = 4
		d = 12.0
	)
	p := &pen{Canvas: c}

	for i := range m {
		o := float64(i) / d
		c.Move(o, 0)
		c.Line(o, 2)
		p.arc(0.75, 2, -0.75+o, 0, tau/2, step)
		c.Line(1.5-o, 0)
	}

	for i := range m {
		o := float64(i) / d
		c.Move(2-o, 0)
		c.Line(2-o, 2)
		p.arc(0.75, 2, 1.25-o, 0, tau/4, step)
	}

	for i := range m {
		o := float64(i) / d
		c.Move(2.5-o, 0)
		c.Line(2.5-o, 2)
	}

	return p.err
}
