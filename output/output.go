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

// Package output sends finished drawings to a pen plotter or to a preview
// file.
//
// The output is chosen explicitly, using a [Mode].  The hardware mode
// drives a plotter through the brachio package, all other modes write a
// file which shows what the plotter would draw.
package output

import (
	"context"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/penplot"
	"seehuhn.de/go/penplot/brachio"
)

// Plotter consumes a finished drawing.
type Plotter interface {
	// Plot draws all paths of d, in order.
	Plot(ctx context.Context, d penplot.Drawing) error
}

// Config holds the settings for all output modes.  Each mode only uses
// the fields relevant to it.
type Config struct {
	// Writer receives the output of the SVG, PNG and JSON modes.
	Writer io.Writer

	// Path is the name of the file written by the PDF mode.
	Path string

	// Width and Height give the image size in pixels (PNG), or the page
	// size in PDF points.  Zero values select a default size.
	Width, Height int

	// Margin is the space left free around the drawing, in pixels or PDF
	// points.
	Margin float64

	// LineWidth is the width of the pen in pixels or PDF points.  Zero
	// selects a width proportional to the image size.
	LineWidth float64

	// Detailed makes the SVG output show pen movements, path numbers and
	// the individual points.
	Detailed bool

	// Brachio is the plotter configuration for the hardware mode.  If this
	// is nil, brachio.DefaultConfig is used.
	Brachio *brachio.Config

	// Driver sends servo commands in the hardware mode.
	Driver brachio.Driver
}

var (
	errNoWriter = errors.New("no output writer")
	errNoPath   = errors.New("no output file name")
	errNoDriver = errors.New("no servo driver")
)

// New returns the Plotter for the given mode.
func New(mode Mode, cfg *Config) (Plotter, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	switch mode {
	case Hardware:
		if cfg.Driver == nil {
			return nil, fmt.Errorf("%s: %w", mode, errNoDriver)
		}
		p, err := brachio.New(cfg.Brachio, cfg.Driver)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PDF:
		if cfg.Path == "" {
			return nil, fmt.Errorf("%s: %w", mode, errNoPath)
		}
		return NewPDF(cfg.Path, cfg), nil
	case SVG, PNG, JSON:
		if cfg.Writer == nil {
			return nil, fmt.Errorf("%s: %w", mode, errNoWriter)
		}
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownMode, int(mode))
	}

	switch mode {
	case SVG:
		return NewSVG(cfg.Writer, cfg.Detailed), nil
	case PNG:
		return NewPNG(cfg.Writer, cfg), nil
	default:
		return NewJSON(cfg.Writer), nil
	}
}

// JSONPlotter writes drawings in the JSON interchange format.
type JSONPlotter struct {
	w io.Writer
}

// NewJSON returns a Plotter which writes drawings to w as JSON.
func NewJSON(w io.Writer) *JSONPlotter {
	return &JSONPlotter{w: w}
}

// Plot implements the [Plotter] interface.
func (p *JSONPlotter) Plot(ctx context.Context, d penplot.Drawing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := d.WriteTo(p.w)
	if err != nil {
		return err
	}
	penplot.Logger().Info("JSON written", "paths", len(d), "bytes", n)
	return nil
}
