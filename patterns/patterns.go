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

// Package patterns contains a collection of example drawings.
package patterns

import (
	"math"
	"math/rand/v2"

	"seehuhn.de/go/penplot"
)

// Pattern is a named example drawing.
type Pattern struct {
	Description string
	Draw        func(c *penplot.Canvas) error
}

// All contains all patterns, by name.
// Names consist of lowercase letters, digits and underscores.
var All = map[string]Pattern{
	"cellular_automaton":       {"elementary cellular automaton, one circle per live cell", cellularAutomaton},
	"circle_heart":             {"concentric half-drawn circles leaving a heart-shaped gap", circleHeart},
	"cog":                      {"a cog wheel", cog},
	"concentric_circles":       {"ten concentric circles", concentricCircles},
	"concentric_squares":       {"concentric squares", concentricSquares},
	"hatched_circle":           {"circles filled with ever finer hatching", hatchedCircle},
	"line_circles":             {"circles made up of vertical lines", lineCircles},
	"lines_boxes_arcs":         {"random lines, rectangles and arcs", linesBoxesArcs},
	"moire_spirals":            {"overlaid spirals giving a moiré effect", moireSpirals},
	"overlaid_balls":           {"two overlaid sets of chords which look like 3D balls", overlaidBalls},
	"overlapping_circles":      {"circles touching in one point", overlappingCircles},
	"radial_lines":             {"radial lines of random length", radialLines},
	"radial_lines_interrupted": {"radial lines with a gap in the middle", radialLinesInterrupted},
	"spiral_debian":            {"arcs of growing radius, like the Debian logo", spiralDebian},
	"spiral_grid":              {"grid of spirals with increasing winding numbers", spiralGrid},
	"spiral_mountain":          {"short arcs of growing radius, like an inverted mountain", spiralMountain},
	"spiral_rose":              {"a spiral of straight lines, like a rose", spiralRose},
	"spiral_row":               {"diagonal row of ever-more-spiraly spirals", spiralRow},
	"trojaborg_labyrinth_1":    {"Trojaborg labyrinth, drawn ring by ring", trojaborg1},
	"trojaborg_labyrinth_2":    {"Trojaborg labyrinth, drawn along the walls", trojaborg2},
	"uji":                      {"the Japanese character uji", uji},
	"wiki_spiral":              {"turtle graphics spiral of nested triangles", wikiSpiral},
}

const tau = 2 * math.Pi

// step is the angular step, in degrees, used by most patterns.
const step = 10.0

// newRand returns the random number generator for patterns with random
// elements.  The seed is fixed, so that every run gives the same drawing.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// xy converts polar coordinates around the origin.
func xy(r, a float64) penplot.Point {
	return penplot.Polar(0, 0, r, a)
}

// pen wraps a Canvas and keeps the first error returned by a curve.
// Once an error has occurred, all further curves are skipped.
type pen struct {
	*penplot.Canvas
	err error
}

func (p *pen) arc(cx, cy, r, start, end, detail float64) {
	if p.err == nil {
		p.err = p.Arc(cx, cy, r, start, end, detail)
	}
}

func (p *pen) circle(cx, cy, r, detail float64) {
	if p.err == nil {
		p.err = p.Circle(cx, cy, r, detail)
	}
}

func (p *pen) spiral(cx, cy, windings, gap, detail float64) {
	if p.err == nil {
		p.err = p.Spiral(cx, cy, windings, gap, detail)
	}
}

func (p *pen) move(pt penplot.Point) {
	p.Move(pt.X, pt.Y)
}

func (p *pen) line(pt penplot.Point) {
	p.Line(pt.X, pt.Y)
}
