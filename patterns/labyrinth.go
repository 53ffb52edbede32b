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

// trojaborg1 draws an 11-ring Trojaborg labyrinth, ring by ring.  This
// order is easy to generate, but needs many pen movements.  The angular
// step is chosen so that all rings get segments of similar length.
func trojaborg1(c *penplot.Canvas) error {
	const d = 5 * tau
	p := &pen{Canvas: c}
	detail := func(r float64) float64 { return d / r }

	// top half
	for i := 1.0; i <= 12; i++ {
		p.arc(-0.5, 0, i-0.5, tau/2, tau, detail(i))
	}

	// left and right half of the lower centre
	for i := 1.0; i <= 2; i++ {
		p.arc(-3, 0, i, 0, tau/2, detail(i))
	}
	for i := 1.0; i <= 2; i++ {
		p.arc(3, 0, i, 0, tau/2, detail(i))
	}

	// lower right quarter
	for i := 3.0; i <= 9; i++ {
		p.arc(-3, 0, i, tau/4, tau/2, detail(i))
	}
	for i := 1.0; i <= 2; i++ {
		p.arc(-3, 6, i, 3*tau/4, tau+tau/4, detail(i))
	}

	// lower left quarter
	for i := 3.0; i <= 8; i++ {
		p.arc(3, 0, i, 0, tau/4, detail(i))
	}
	for i := 1.0; i <= 2; i++ {
		p.arc(3, 6, i, tau/4, 3*tau/4, detail(i))
	}

	// centre lines
	c.Move(0, 0)
	c.Line(0, 6)
	c.Move(-3, 3)
	c.Line(3, 3)

	// connect the left half to the centre
	p.arc(-3, 6, 3, 0, tau/4, detail(2))

	return p.err
}

// trojaborg2 draws the same labyrinth as trojaborg1, but follows the walls
// so that the pen is lifted less often.  The drawing is offset, so that
// both versions can be plotted next to each other.
func trojaborg2(c *penplot.Canvas) error {
	const x = 24.0
	p := &pen{Canvas: c}

	p.arc(x-0.5, 0, 3-0.5, tau/2, tau, step)
	p.arc(x+3, 0, -1, 0, tau/2, step)
	p.arc(x-0.5, 0, -(5 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -2, 0, tau/2, step)
	p.arc(x-0.5, 0, 1-0.5, tau/2, tau, step)
	c.Line(x, 6)
	p.arc(x-3, 6, 3, 0, tau/4, step)
	p.arc(x-3, 0, 9, tau/4, tau/2, step)
	p.arc(x-0.5, 0, 12-0.5, tau/2, tau, step)
	p.arc(x+3, 0, 8, 0, tau/4, step)
	p.arc(x+3, 6, 2, tau/4, 3*tau/4, step)
	p.arc(x+3, 0, -4, 0, tau/4, step)
	p.arc(x-0.5, 0, -(8 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -5, tau/4, tau/2, step)
	p.arc(x-3, 6, 1, 3*tau/4, tau+tau/4, step)
	p.arc(x-3, 0, 7, tau/4, tau/2, step)
	p.arc(x-0.5, 0, 10-0.5, tau/2, tau, step)
	p.arc(x+3, 0, 6, 0, tau/4, step)

	p.arc(x-0.5, 0, -(4 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -1, 0, tau/2, step)
	p.arc(x-0.5, 0, 2-0.5, tau/2, tau, step)
	p.arc(x+3, 0, -2, 0, tau/2, step)
	p.arc(x-0.5, 0, -(6 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -3, tau/4, tau/2, step)
	c.Line(x+3, 3)
	p.arc(x+3, 0, -3, 0, tau/4, step)
	p.arc(x-0.5, 0, -(7 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -4, tau/4, tau/2, step)
	p.arc(x-3, 6, 2, 3*tau/4, tau+tau/4, step)
	p.arc(x-3, 0, 8, tau/4, tau/2, step)
	p.arc(x-0.5, 0, 11-0.5, tau/2, tau, step)
	p.arc(x+3, 0, 7, 0, tau/4, step)
	p.arc(x+3, 6, 1, tau/4, 3*tau/4, step)
	p.arc(x+3, 0, -5, 0, tau/4, step)
	p.arc(x-0.5, 0, -(9 - 0.5), tau/2, tau, step)
	p.arc(x-3, 0, -6, tau/4, tau/2, step)

	return p.err
}
