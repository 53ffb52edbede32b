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

// Package penplot builds drawings for pen plotters from geometric primitives.
//
// A [Canvas] keeps track of the pen position and collects polylines.
// Straight lines and rectangles are recorded directly, while arcs, circles
// and spirals are sampled into short line segments.  [Canvas.Finalize]
// returns the finished [Drawing], an ordered list of paths, which can then
// be passed to one of the adapters in the output sub-package or stored in
// the JSON interchange format.
//
// Every path in a Drawing has at least two points.  Moving the pen without
// drawing never produces a path.
//
// Coordinates are not validated.  NaN or infinite values passed to the
// drawing primitives end up in the Drawing unchanged, and it is the
// caller's responsibility to avoid them.  The only errors reported while
// drawing concern the sampling resolution of curves, see [ErrInvalidDetail]
// and [ErrTooManySamples].
package penplot
