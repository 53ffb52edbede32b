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
	"math"

	"seehuhn.de/go/penplot"
)

// The hand-made spirals below advance by this many windings per step.
const windingStep = tau / 36

func frac(x float64) float64 {
	return x - math.Floor(x)
}

func spiralGrid(c *penplot.Canvas) error {
	const cols, rows = 5, 2
	p := &pen{Canvas: c}
	for i := 1; i <= cols*rows; i++ {
		cx := float64((i-1)%cols) * 9
		cy := float64((i-1)/cols) * 9
		p.spiral(cx, cy, float64(i), 4/float64(i), step)
	}
	return p.err
}

func spiralRow(c *penplot.Canvas) error {
	p := &pen{Canvas: c}
	for i := 4; i <= 20; i++ {
		p.spiral(float64(2*i), float64(i), float64(i)/7, 0.5, step)
	}
	return p.err
}

// moireSpirals overlays slightly shifted spirals to get a moiré pattern.
func moireSpirals(c *penplot.Canvas) error {
	p := &pen{Canvas: c}
	for i := range 4 {
		p.spiral(0, float64(i), 10, 1, 1/0.3)
	}
	return p.err
}

// spiralMountain draws short arcs whose radius grows and resets with every
// winding.  The angles are given in windings rather than radians, which
// gives the "inverted mountain" look.
func spiralMountain(c *penplot.Canvas) error {
	const windings = 10
	p := &pen{Canvas: c}
	for n := 0.0; n < windings; n += windingStep {
		r := frac(n)
		p.arc(0, 0, r, frac(n), frac(n+windingStep), step)
	}
	return p.err
}

// spiralDebian draws arcs whose radius grows and resets with every winding.
// Arcs crossing the zero angle are split in two.
func spiralDebian(c *penplot.Canvas) error {
	const windings = 10
	p := &pen{Canvas: c}
	for n := 0.0; n < windings; n += windingStep {
		r := frac(n)
		s := frac(n) * tau
		e := frac(n+windingStep) * tau
		if s <= e {
			p.arc(0, 0, r, s, e, step)
		} else {
			p.arc(0, 0, r, s, tau, step)
			p.arc(0, 0, r, 0, e, step)
		}
	}
	return p.err
}

// spiralRose approximates a spiral by straight lines between points far
// apart, which gives a rose-like shape.
func spiralRose(c *penplot.Canvas) error {
	const windings = 10
	c.Move(0, 0)
	for n := 0.0; n < windings; n += windingStep {
		pt := xy(n/windings, frac(n)*tau)
		c.Line(pt.X, pt.Y)
	}
	c.Line(1, 0)
	return nil
}

// wikiSpiral draws a turtle graphics spiral, see
// https://commons.wikimedia.org/wiki/File:Turtle_Graphics_Spiral.svg .
func wikiSpiral(c *penplot.Canvas) error {
	const (
		corners = 3
		turns   = 3
		m       = 40
	)
	p := &pen{Canvas: c}
	for i := range m {
		for j := range corners {
			angle := float64(j) / corners * tau
			r := float64(m-i) - float64(j)/3
			a := angle + turns*float64(i)/m
			if i == 0 && j == 0 {
				p.move(xy(r, a))
			} else {
				p.line(xy(r, a))
			}
		}
	}
	return nil
}
