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

package output

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"seehuhn.de/go/penplot"
)

// Colours used for the annotations in detailed SVG output.
const (
	colTravel     = "rgba(255,255,0,0.5)"
	colPathNumber = "rgba(0,0,255,0.5)"
	colPathStart  = "rgba(0,255,0,0.5)"
	colSegLabel   = "rgba(128,128,255,0.5)"
	colSegPoint   = "rgba(255,0,0,0.5)"
)

// SVGPlotter writes drawings as SVG images.  Coordinates are used
// unchanged, the view box is the bounding box of the drawing.
type SVGPlotter struct {
	w io.Writer

	// detailed adds the pen-up moves (yellow), path numbers (blue), path
	// start points (green), segment labels (purple) and segment end points
	// (red).
	detailed bool
}

// NewSVG returns a Plotter which writes SVG images to w.
func NewSVG(w io.Writer, detailed bool) *SVGPlotter {
	return &SVGPlotter{w: w, detailed: detailed}
}

// Plot implements the [Plotter] interface.
func (p *SVGPlotter) Plot(ctx context.Context, d penplot.Drawing) error {
	box, _ := d.Bounds()
	w := box.URx - box.LLx
	h := box.URy - box.LLy
	stroke := strokeWidth(w, h)

	// Degenerate drawings still get a usable view box.
	if w <= 0 {
		box.LLx -= stroke
		w = 2 * stroke
	}
	if h <= 0 {
		box.LLy -= stroke
		h = 2 * stroke
	}

	s := &svgWriter{Writer: bufio.NewWriter(p.w), stroke: stroke}
	fmt.Fprintf(s, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\""+
		" style=\"fill: none; stroke: black; stroke-width: %gpx;\">\n",
		box.LLx, box.LLy, w, h, stroke)

	var pos penplot.Point
	for n, path := range d {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(path) == 0 {
			continue
		}
		if p.detailed {
			s.travel(pos, path[0])
			s.annotatedPath(n, path)
		} else {
			s.path(path)
		}
		pos = path[len(path)-1]
	}
	if p.detailed && len(d) > 0 {
		s.travel(pos, penplot.Point{})
	}

	s.WriteString("</svg>\n")
	if err := s.Flush(); err != nil {
		return err
	}
	penplot.Logger().Info("SVG written", "paths", len(d), "detailed", p.detailed)
	return nil
}

// strokeWidth returns the line width for a drawing of size w x h.
func strokeWidth(w, h float64) float64 {
	size := min(w, h)
	if !(size > 0) {
		size = max(w, h)
	}
	if !(size > 0) {
		return 1
	}
	return size / 500
}

// svgWriter collects the elements of an SVG image.  Write errors are
// reported by Flush.
type svgWriter struct {
	*bufio.Writer
	stroke float64
}

func (s *svgWriter) path(path penplot.Path) {
	fmt.Fprintf(s, "<path d=\"M%g,%g", path[0].X, path[0].Y)
	for _, pt := range path[1:] {
		fmt.Fprintf(s, " L%g,%g", pt.X, pt.Y)
	}
	s.WriteString("\" />\n")
}

func (s *svgWriter) travel(from, to penplot.Point) {
	fmt.Fprintf(s, "<path d=\"M%g,%g L%g,%g\" style=\"stroke: %s; stroke-width: %gpx;\" />\n",
		from.X, from.Y, to.X, to.Y, colTravel, s.stroke/2)
}

func (s *svgWriter) annotatedPath(n int, path penplot.Path) {
	start := path[0]
	s.label(start, fmt.Sprint(n), colPathNumber)
	s.dot(start, colPathStart)
	prev := start
	for m, pt := range path[1:] {
		fmt.Fprintf(s, "<path d=\"M%g,%g L%g,%g\" />\n", prev.X, prev.Y, pt.X, pt.Y)
		s.label(pt, fmt.Sprintf("%d~%d", n, m), colSegLabel)
		s.dot(pt, colSegPoint)
		prev = pt
	}
}

func (s *svgWriter) label(pt penplot.Point, text, col string) {
	fmt.Fprintf(s, "<text x=\"%g\" y=\"%g\" style=\"font-size: %gpx; stroke: none; fill: %s;\">%s</text>\n",
		pt.X, pt.Y, 5*s.stroke, col, text)
}

func (s *svgWriter) dot(pt penplot.Point, col string) {
	fmt.Fprintf(s, "<circle cx=\"%g\" cy=\"%g\" r=\"%g\" style=\"stroke: none; fill: %s;\" />\n",
		pt.X, pt.Y, 2*s.stroke, col)
}
