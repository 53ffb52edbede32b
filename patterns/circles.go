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

func concentricCircles(c *penplot.Canvas) error {
	p := &pen{Canvas: c}
	for i := range 10 {
		p.circle(0, 0, float64(i+2), step)
	}
	return p.err
}

// circleHeart draws concentric circles, of which only parts are drawn
// closer to the centre.  This leaves a vaguely heart-shaped gap.
func circleHeart(c *penplot.Canvas) error {
	p := &pen{Canvas: c}
	for i := range 15 {
		open := tau / 2 * float64(i+1) / 15
		p.arc(0, 0, float64(i+2), tau/2-open, tau/2+open, step)
	}
	return p.err
}

func cog(c *penplot.Canvas) error {
	p := &pen{Canvas: c}

	const r = 40.0
	teeth := int(r * 0.35)
	l := tau / float64(teeth) / 2
	prev := 0.0
	for range teeth {
		p.arc(0, 0, r, prev, prev+l, step)
		p.line(xy(r-8, prev+l))
		p.arc(0, 0, r-8, prev+l, prev+2*l, step)
		p.line(xy(r, prev+2*l))
		prev += tau / float64(teeth)
	}
	p.circle(0, 0, 5, step)
	return p.err
}

// overlappingCircles draws circles of different sizes which all touch in
// one point.  The negative radius makes every circle start at this point.
func overlappingCircles(c *penplot.Canvas) error {
	p := &pen{Canvas: c}
	for i := range 10 {
		p.arc(1, 0, -math.Sqrt(float64(i+1))/math.Sqrt(10), 0, tau, step)
	}
	p.arc(2, 0, -1, 0, tau/3, step)
	p.arc(2, 0, -1, 2*tau/3, tau, step)
	return p.err
}

// lineCircles draws circles made up of vertical lines.
func lineCircles(c *penplot.Canvas) error {
	const (
		nm = 5
		mm = (nm - 2) * 7
		ro = 10.0
	)
	for n := range nm {
		r := ro * 2 * float64(n) / 3
		m := int(mm * r / ro)
		dx := float64(n) / nm
		for i := 1; i < m; i++ {
			x := -r + 2*r*float64(i)/float64(m)
			y := math.Sqrt(r*r - x*x)
			c.Move(x+dx, y-r)
			c.Line(x+dx, -y-r)
		}
	}
	return nil
}

// hatchedCircle draws five circles of hatching, each twice as dense as
// the one before, on top of each other.
func hatchedCircle(c *penplot.Canvas) error {
	const r = 10.0
	for n := range 5 {
		m := 2 << n
		for i := 1; i < m; i++ {
			x := -r + 2*r*float64(i)/float64(m)
			y := math.Sqrt(r*r - x*x)
			c.Move(x-r, y-r)
			c.Line(x-r, -y-r)
		}
		for i := 1; i < m; i++ {
			y := -r + 2*r*float64(i)/float64(m)
			x := math.Sqrt(r*r - y*y)
			c.Move(x-r, y-r)
			c.Line(-x-r, y-r)
		}
	}
	return nil
}

func overlaidBalls(c *penplot.Canvas) error {
	const (
		m = 30
		r = 10.0
	)
	p := &pen{Canvas: c}
	for i := range m {
		a1 := tau / 2 * float64(i) / m
		a2 := -a1 - math.Sin(a1)
		p.move(xy(r, a1))
		p.line(xy(r, a2))
		p.move(xy(2*r/3, a1+tau/4))
		p.line(xy(2*r/3, a2+tau/4))
	}
	return nil
}

// cellularAutomaton draws the evolution of an elementary cellular automaton
// with a randomly chosen rule, one circle for each live cell.
func cellularAutomaton(c *penplot.Canvas) error {
	const (
		width  = 15
		height = 30
	)
	rules := []uint8{11, 26, 30, 57, 60, 90, 106, 150}

	rng := newRand()
	rule := rules[rng.IntN(len(rules))]

	state := make([]bool, width)
	for i := range state {
		state[i] = rng.Float64() > 0.5
	}

	p := &pen{Canvas: c}
	for y := range height {
		if y > 0 {
			state = evolve(state, rule)
		}
		for x, alive := range state {
			if alive {
				p.circle(float64(x), float64(y), 0.5, 1/0.03)
			}
		}
	}
	return p.err
}

// evolve applies one step of the automaton.  The row wraps around.
// The neighbourhood 000 selects the highest bit of the rule, 111 the lowest.
func evolve(state []bool, rule uint8) []bool {
	n := len(state)
	bit := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	next := make([]bool, n)
	for i := range state {
		idx := bit(state[(i+n-1)%n])<<2 | bit(state[i])<<1 | bit(state[(i+1)%n])
		next[i] = rule>>(7-idx)&1 == 1
	}
	return next
}
