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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/penplot"
)

// Default page size for PDF output, in PDF points.  This is A4.
const (
	DefaultPDFWidth  = 595
	DefaultPDFHeight = 842
)

// PDFPlotter writes drawings as single-page PDF files.  The drawing is
// scaled to fit the page.  Drawing coordinates have the y-axis pointing
// down, as in the SVG output, so the PDF page shows the same image.
type PDFPlotter struct {
	fname         string
	width, height float64
	margin        float64
	lineWidth     float64
}

// NewPDF returns a Plotter which writes a PDF file with the given name.
// The page size, margin and line width are taken from cfg.
func NewPDF(fname string, cfg *Config) *PDFPlotter {
	p := &PDFPlotter{
		fname:     fname,
		width:     float64(cfg.Width),
		height:    float64(cfg.Height),
		margin:    cfg.Margin,
		lineWidth: cfg.LineWidth,
	}
	if cfg.Width <= 0 {
		p.width = DefaultPDFWidth
	}
	if cfg.Height <= 0 {
		p.height = DefaultPDFHeight
	}
	if !(p.lineWidth > 0) {
		p.lineWidth = 0.5
	}
	return p
}

// Plot implements the [Plotter] interface.
func (p *PDFPlotter) Plot(ctx context.Context, d penplot.Drawing) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	paper := &pdf.Rectangle{URx: p.width, URy: p.height}
	page, err := document.CreateSinglePage(p.fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The line width is given in page units, so the drawing is mapped to
	// the page here rather than through the CTM.
	if box, ok := d.Bounds(); ok {
		target := rect.Rect{URx: p.width, URy: p.height}
		d = d.Transform(penplot.Fit(box, target, p.margin, true))

		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(p.lineWidth)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		for cmd, pts := range d.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return err
	}
	penplot.Logger().Info("PDF written", "file", p.fname, "paths", len(d))
	return nil
}
