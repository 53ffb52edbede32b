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
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/penplot"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func draw(t *testing.T, pat Pattern) penplot.Drawing {
	t.Helper()
	c := penplot.NewCanvas()
	if err := pat.Draw(c); err != nil {
		t.Fatal(err)
	}
	return c.Finalize()
}

func TestAll(t *testing.T) {
	for _, name := range slices.Sorted(maps.Keys(All)) {
		pat := All[name]
		t.Run(name, func(t *testing.T) {
			if !validName.MatchString(name) {
				t.Errorf("invalid pattern name %q", name)
			}
			if pat.Description == "" {
				t.Error("missing description")
			}

			d := draw(t, pat)
			if len(d) == 0 {
				t.Fatal("empty drawing")
			}
			for i, path := range d {
				if len(path) < 2 {
					t.Errorf("path %d has %d points", i, len(path))
				}
				for _, pt := range path {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
						t.Fatalf("path %d contains invalid point %v", i, pt)
					}
				}
			}

			// Patterns with random elements use a fixed seed.
			again := draw(t, pat)
			if len(again) != len(d) || again.NumPoints() != d.NumPoints() {
				t.Fatal("drawing is not reproducible")
			}
			for i := range d {
				for j := range d[i] {
					if d[i][j] != again[i][j] {
						t.Fatalf("drawing is not reproducible at path %d, point %d", i, j)
					}
				}
			}
		})
	}
}

func TestConcentricCircles(t *testing.T) {
	d := draw(t, All["concentric_circles"])
	if len(d) != 10 {
		t.Fatalf("got %d paths, want 10", len(d))
	}
	for i, path := range d {
		r := float64(i + 2)
		if len(path) != 37 {
			t.Errorf("circle %d has %d points, want 37", i, len(path))
		}
		first, last := path[0], path[len(path)-1]
		if math.Abs(first.X-r) > 1e-9 || math.Abs(last.X-r) > 1e-9 || math.Abs(last.Y) > 1e-9 {
			t.Errorf("circle %d is not closed: %v ... %v", i, first, last)
		}
	}
}

// TestOverlappingCircles checks that circles drawn with a negative radius
// run clockwise from the end angle.
func TestOverlappingCircles(t *testing.T) {
	d := draw(t, All["overlapping_circles"])
	if len(d) != 12 {
		t.Fatalf("got %d paths, want 12", len(d))
	}
	for i, path := range d[:10] {
		r := math.Sqrt(float64(i+1)) / math.Sqrt(10)
		start := path[0]
		if math.Abs(start.X-(1+r)) > 1e-9 || math.Abs(start.Y) > 1e-9 {
			t.Errorf("circle %d starts at %v", i, start)
		}
		if path[1].Y >= 0 {
			t.Errorf("circle %d runs counter-clockwise", i)
		}
	}
}

func TestEvolve(t *testing.T) {
	// Rule 90 makes each cell the XOR of its neighbours.  This does not
	// change when all cells are inverted, so the bit order does not matter.
	state := []bool{false, false, true, false, false}
	next := evolve(state, 90)
	want := []bool{false, true, false, true, false}
	if !slices.Equal(next, want) {
		t.Errorf("got %v, want %v", next, want)
	}

	// The row wraps around.
	next = evolve([]bool{true, false, false}, 90)
	want = []bool{false, true, true}
	if !slices.Equal(next, want) {
		t.Errorf("got %v, want %v", next, want)
	}
}
