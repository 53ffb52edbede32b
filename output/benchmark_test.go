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
	"fmt"
	"io"
	"testing"

	"seehuhn.de/go/penplot"
)

func benchDrawing(b *testing.B) penplot.Drawing {
	c := penplot.NewCanvas()
	for i := range 10 {
		if err := c.Circle(0, 0, float64(i+2), 1); err != nil {
			b.Fatal(err)
		}
	}
	return c.Finalize()
}

// BenchmarkPNG benchmarks rendering ten concentric circles at different
// image sizes.
func BenchmarkPNG(b *testing.B) {
	d := benchDrawing(b)
	sizes := []int{100, 1000, 4000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			p := NewPNG(io.Discard, &Config{Width: size, Height: size})
			b.ReportAllocs()
			for b.Loop() {
				if _, err := p.Render(context.Background(), d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSVG benchmarks writing the same drawing as SVG.
func BenchmarkSVG(b *testing.B) {
	d := benchDrawing(b)

	for _, detailed := range []bool{false, true} {
		b.Run(fmt.Sprintf("detailed=%t", detailed), func(b *testing.B) {
			p := NewSVG(io.Discard, detailed)
			b.ReportAllocs()
			for b.Loop() {
				if err := p.Plot(context.Background(), d); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
