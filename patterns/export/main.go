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

// Command export writes all example patterns to JSON, as reference data
// for other plotter software.  Run from the penplot module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/penplot"
	"seehuhn.de/go/penplot/patterns"
)

const outDir = "testdata/patterns"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	var index struct {
		Patterns []jsonPattern `json:"patterns"`
	}

	for _, name := range slices.Sorted(maps.Keys(patterns.All)) {
		pat := patterns.All[name]

		c := penplot.NewCanvas()
		if err := pat.Draw(c); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		d := c.Finalize()

		fname := filepath.Join(outDir, name+".json")
		if err := writeDrawing(fname, d); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		index.Patterns = append(index.Patterns, toJSON(name, pat, d))
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		panic(err)
	}
}

type jsonPattern struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	File        string    `json:"file"`
	Paths       int       `json:"paths"`
	Points      int       `json:"points"`
	Bounds      []float64 `json:"bounds,omitempty"`
	PenTravel   float64   `json:"pen_travel"`
}

func toJSON(name string, pat patterns.Pattern, d penplot.Drawing) jsonPattern {
	jp := jsonPattern{
		Name:        name,
		Description: pat.Description,
		File:        name + ".json",
		Paths:       len(d),
		Points:      d.NumPoints(),
		PenTravel:   d.PenTravel(),
	}
	if b, ok := d.Bounds(); ok {
		jp.Bounds = []float64{b.LLx, b.LLy, b.URx, b.URy}
	}
	return jp
}

func writeDrawing(fname string, d penplot.Drawing) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
