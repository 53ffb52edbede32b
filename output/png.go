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
	"context"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/penplot"
)

// Default image size for PNG output, in pixels.
const (
	DefaultPNGWidth  = 1000
	DefaultPNGHeight = 1000
)

// discSegments is the number of edges used to approximate the round pen
// tip at every point of a path.
const discSegments = 16

// PNGPlotter renders drawings into PNG images, black ink on a white
// background.  The drawing is scaled to fit the image.
type PNGPlotter struct {
	w             io.Writer
	width, height int
	margin        float64
	lineWidth     float64
}

// NewPNG returns a Plotter which writes PNG images to w.  The image size,
// margin and line width are taken from cfg.
func NewPNG(w io.Writer, cfg *Config) *PNGPlotter {
	p := &PNGPlotter{
		w:         w,
		width:     cfg.Width,
		height:    cfg.Height,
		margin:    cfg.Margin,
		lineWidth: cfg.LineWidth,
	}
	if p.width <= 0 {
		p.width = DefaultPNGWidth
	}
	if p.height <= 0 {
		p.height = DefaultPNGHeight
	}
	if !(p.lineWidth > 0) {
		p.lineWidth = max(1, float64(min(p.width, p.height))/500)
	}
	return p
}

// Plot implements the [Plotter] interface.
func (p *PNGPlotter) Plot(ctx context.Context, d penplot.Drawing) error {
	img, err := p.Render(ctx, d)
	if err != nil {
		return err
	}
	if err := png.Encode(p.w, img); err != nil {
		return err
	}
	penplot.Logger().Info("PNG written", "paths", len(d), "width", p.width, "height", p.height)
	return nil
}

// Render draws d into a new image.
func (p *PNGPlotter) Render(ctx context.Context, d penplot.Drawing) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	box, ok := d.Bounds()
	if !ok {
		return img, nil
	}
	target := rect.Rect{URx: float64(p.width), URy: float64(p.height)}
	d = d.Transform(penplot.Fit(box, target, p.margin, false))

	r := vector.NewRasterizer(p.width, p.height)
	hw := p.lineWidth / 2
	for _, path := range d {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i, pt := range path {
			addDisc(r, pt, hw)
			if i > 0 {
				addQuad(r, path[i-1], pt, hw)
			}
		}
	}
	r.Draw(img, img.Bounds(), image.Black, image.Point{})
	return img, nil
}

// The rasterizer adds up signed coverage, so all shapes must have the same
// orientation, or overlapping shapes cancel out.  Both addQuad and addDisc
// produce polygons with negative signed area.

// addQuad adds the rectangle covered by a pen of half-width hw moving from
// a to b.
func addQuad(r *vector.Rasterizer, a, b vec.Vec2, hw float64) {
	delta := b.Sub(a)
	l := delta.Length()
	if !(l > 0) {
		return
	}
	n := vec.Vec2{X: -delta.Y, Y: delta.X}.Mul(hw / l)

	moveTo(r, a.Add(n))
	lineTo(r, b.Add(n))
	lineTo(r, b.Sub(n))
	lineTo(r, a.Sub(n))
	r.ClosePath()
}

// addDisc adds a polygon approximating the disc with centre c and radius
// rad.
func addDisc(r *vector.Rasterizer, c vec.Vec2, rad float64) {
	for k := range discSegments {
		a := -2 * math.Pi * float64(k) / discSegments
		pt := penplot.Polar(c.X, c.Y, rad, a)
		if k == 0 {
			moveTo(r, pt)
		} else {
			lineTo(r, pt)
		}
	}
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p vec.Vec2) {
	r.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(r *vector.Rasterizer, p vec.Vec2) {
	r.LineTo(float32(p.X), float32(p.Y))
}
