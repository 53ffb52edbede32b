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

package penplot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedDrawing indicates that serialized drawing data could not be
// parsed.
var ErrMalformedDrawing = errors.New("malformed drawing")

// MarshalJSON encodes the drawing as a list of paths, each path a list of
// [x, y] pairs.  Encoding fails for NaN or infinite coordinates.
func (d Drawing) MarshalJSON() ([]byte, error) {
	raw := make([][][2]float64, len(d))
	for i, p := range d {
		pairs := make([][2]float64, len(p))
		for j, pt := range p {
			pairs[j] = [2]float64{pt.X, pt.Y}
		}
		raw[i] = pairs
	}
	return json.Marshal(raw)
}

// UnmarshalJSON decodes a drawing in the format written by MarshalJSON.
// Every point must have exactly two coordinates and every path at least
// two points.  Errors wrap ErrMalformedDrawing.
func (d *Drawing) UnmarshalJSON(data []byte) error {
	var raw [][][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDrawing, err)
	}
	if raw == nil {
		*d = nil
		return nil
	}

	res := make(Drawing, len(raw))
	for i, pairs := range raw {
		if len(pairs) < 2 {
			return fmt.Errorf("%w: path %d has %d points", ErrMalformedDrawing, i, len(pairs))
		}
		p := make(Path, len(pairs))
		for j, pair := range pairs {
			if len(pair) != 2 {
				return fmt.Errorf("%w: path %d, point %d has %d coordinates",
					ErrMalformedDrawing, i, j, len(pair))
			}
			p[j] = Point{X: pair[0], Y: pair[1]}
		}
		res[i] = p
	}
	*d = res
	return nil
}

// WriteTo writes the JSON encoding of d, followed by a newline.
func (d Drawing) WriteTo(w io.Writer) (int64, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}

// ReadDrawing reads a drawing in JSON format from r.  The input must
// contain exactly one drawing.  Malformed input gives an error which wraps
// ErrMalformedDrawing, read errors are returned unchanged.
func ReadDrawing(r io.Reader) (Drawing, error) {
	dec := json.NewDecoder(r)

	var d Drawing
	if err := dec.Decode(&d); err != nil {
		return nil, wrapDecodeError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected data after drawing", ErrMalformedDrawing)
		}
		return nil, wrapDecodeError(err)
	}
	return d, nil
}

func wrapDecodeError(err error) error {
	if errors.Is(err, ErrMalformedDrawing) {
		return err
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr),
		err == io.EOF, errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %v", ErrMalformedDrawing, err)
	}
	return err
}
