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

// Package brachio drives a BrachioGraph-style pen plotter.
//
// The plotter has two arms moved by servo motors, plus a third servo which
// lifts and lowers the pen.  A [Plotter] converts every point of a
// [penplot.Drawing] into servo pulse widths and sends them to a [Driver].
package brachio

import (
	"context"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/penplot"
)

// Driver sets servo pulse widths.
type Driver interface {
	// SetPulseWidth sets the pulse width, in microseconds, of the servo
	// connected to the given GPIO pin.
	SetPulseWidth(pin, width int) error
}

// Plotter draws a Drawing using the servos of a plotter.
//
// A Plotter is not safe for concurrent use.
type Plotter struct {
	cfg *Config
	drv Driver

	// sleep waits for the given duration or until ctx is cancelled.
	sleep func(ctx context.Context, d time.Duration) error

	pos      vec.Vec2 // last position sent to the arm servos
	posKnown bool
}

// New returns a Plotter for the given configuration, sending commands to
// drv.  If cfg is nil, DefaultConfig is used.
func New(cfg *Config, drv Driver) (*Plotter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &Plotter{
		cfg:   cfg,
		drv:   drv,
		sleep: sleepContext,
	}, nil
}

// Plot draws all paths of d in order.  Errors returned by the driver are
// passed through unchanged.  If ctx is cancelled, plotting stops after the
// current step, the pen is lifted and the context error is returned.
func (p *Plotter) Plot(ctx context.Context, d penplot.Drawing) error {
	log := penplot.Logger()
	if len(d) == 0 {
		log.Warn("nothing to plot")
		return nil
	}

	if p.cfg.Fit {
		box, _ := d.Bounds()
		d = d.Transform(penplot.Fit(box, p.cfg.Area(), 0, false))
	}

	log.Info("plotting", "paths", len(d), "points", d.NumPoints(), "travel", d.PenTravel())
	start := time.Now()

	err := p.plot(ctx, d)
	if err != nil {
		// Leave the pen lifted, but report the original error.
		_ = p.drv.SetPulseWidth(p.cfg.PinPen, p.cfg.PenUp)
		return err
	}

	log.Info("plotting finished", "duration", time.Since(start))
	return nil
}

func (p *Plotter) plot(ctx context.Context, d penplot.Drawing) error {
	if err := p.pen(ctx, false); err != nil {
		return err
	}
	for i, path := range d {
		if len(path) == 0 {
			continue
		}
		penplot.Logger().Debug("path", "index", i, "points", len(path))

		if err := p.moveTo(ctx, path[0]); err != nil {
			return err
		}
		if err := p.pen(ctx, true); err != nil {
			return err
		}
		for _, pt := range path[1:] {
			if err := p.moveTo(ctx, pt); err != nil {
				return err
			}
		}
		if err := p.pen(ctx, false); err != nil {
			return err
		}
	}
	return nil
}

// pen lowers (down == true) or lifts the pen.
func (p *Plotter) pen(ctx context.Context, down bool) error {
	width := p.cfg.PenUp
	if down {
		width = p.cfg.PenDown
	}
	if err := p.drv.SetPulseWidth(p.cfg.PinPen, width); err != nil {
		return err
	}
	return p.sleep(ctx, seconds(p.cfg.PenWait))
}

// moveTo moves the arms to target in a straight line, in steps of at most
// 1/Interpolate units.
func (p *Plotter) moveTo(ctx context.Context, target vec.Vec2) error {
	from := target
	if p.posKnown {
		from = p.pos
	}
	delta := target.Sub(from)
	dist := delta.Length()
	steps := max(1, int(math.Ceil(dist*p.cfg.Interpolate)))
	stepWait := seconds(p.cfg.Wait * dist / float64(steps))

	for i := 1; i <= steps; i++ {
		pt := from.Add(delta.Mul(float64(i) / float64(steps)))
		if err := p.setArms(pt); err != nil {
			return err
		}
		if err := p.sleep(ctx, stepWait); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plotter) setArms(pt vec.Vec2) error {
	shoulder, elbow, err := p.cfg.Angles(pt.X, pt.Y)
	if err != nil {
		return err
	}
	pw1, pw2 := p.cfg.PulseWidths(shoulder, elbow)
	if err := p.drv.SetPulseWidth(p.cfg.Pin1, pw1); err != nil {
		return err
	}
	if err := p.drv.SetPulseWidth(p.cfg.Pin2, pw2); err != nil {
		return err
	}
	p.pos = pt
	p.posKnown = true
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
