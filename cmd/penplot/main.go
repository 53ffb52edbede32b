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

// Command penplot draws one of the example patterns, or a drawing read
// from a JSON file, on a pen plotter or into a preview file.
//
// Usage:
//
//	penplot [flags]
//
// Examples:
//
//	penplot -pattern cog -mode svg -o cog.svg
//	penplot -from drawing.json -mode png -o preview.png
//	penplot -pattern uji -mode hardware -config plotter.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"

	"seehuhn.de/go/penplot"
	"seehuhn.de/go/penplot/brachio"
	"seehuhn.de/go/penplot/output"
	"seehuhn.de/go/penplot/patterns"
)

func main() {
	var (
		pattern  = flag.String("pattern", "concentric_circles", "name of the pattern to draw")
		from     = flag.String("from", "", "read the drawing from this JSON file instead")
		mode     = flag.String("mode", "svg", "output mode: "+strings.Join(output.Modes(), ", "))
		outFile  = flag.String("o", "-", "output file, - for standard output")
		config   = flag.String("config", "", "plotter configuration file (YAML)")
		pigpio   = flag.String("pigpio", brachio.PigpioPipe, "pigpio command pipe")
		detailed = flag.Bool("detailed", false, "show pen movements and points in SVG output")
		width    = flag.Int("width", 0, "image width in pixels (PNG) or points (PDF)")
		height   = flag.Int("height", 0, "image height in pixels (PNG) or points (PDF)")
		margin   = flag.Float64("margin", 10, "margin around the drawing in PNG and PDF output")
		list     = flag.Bool("list", false, "list all patterns and exit")
		verbose  = flag.Bool("v", false, "log progress to standard error")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	penplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		listPatterns(os.Stdout)
		return
	}

	m, err := output.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := &output.Config{
		Width:    *width,
		Height:   *height,
		Margin:   *margin,
		Detailed: *detailed,
	}
	err = run(ctx, m, cfg, *pattern, *from, *outFile, *config, *pigpio)
	if err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, m output.Mode, cfg *output.Config, pattern, from, outFile, config, pigpio string) error {
	d, err := loadDrawing(pattern, from)
	if err != nil {
		return err
	}

	switch m {
	case output.Hardware:
		if config != "" {
			cfg.Brachio, err = brachio.LoadConfig(config)
			if err != nil {
				return err
			}
		}
		drv, err := brachio.OpenPigpio(pigpio)
		if err != nil {
			return err
		}
		defer drv.Close()
		cfg.Driver = drv

	case output.PDF:
		if outFile == "-" {
			return errors.New("PDF output needs a file name, use -o")
		}
		cfg.Path = outFile

	default:
		if outFile == "-" {
			cfg.Writer = os.Stdout
			break
		}
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		cfg.Writer = f
		err = plot(ctx, m, cfg, d)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		return err
	}

	return plot(ctx, m, cfg, d)
}

func plot(ctx context.Context, m output.Mode, cfg *output.Config, d penplot.Drawing) error {
	p, err := output.New(m, cfg)
	if err != nil {
		return err
	}
	return p.Plot(ctx, d)
}

// loadDrawing reads the drawing from a file, or draws the named pattern.
func loadDrawing(pattern, from string) (penplot.Drawing, error) {
	if from != "" {
		f, err := os.Open(from)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		d, err := penplot.ReadDrawing(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", from, err)
		}
		return d, nil
	}

	pat, ok := patterns.All[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q, use -list to see all patterns", pattern)
	}
	c := penplot.NewCanvas()
	if err := pat.Draw(c); err != nil {
		return nil, fmt.Errorf("%s: %w", pattern, err)
	}
	return c.Finalize(), nil
}

func listPatterns(w io.Writer) {
	names := slices.Sorted(maps.Keys(patterns.All))
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		fmt.Fprintf(w, "%-*s  %s\n", width, name, patterns.All[name].Description)
	}
}
