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

package brachio

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/penplot"
)

type command struct {
	pin, width int
}

// recorder is a Driver which remembers all commands.  If failAfter is
// positive, the command with this number fails.
type recorder struct {
	cmds      []command
	failAfter int
	err       error
}

func (r *recorder) SetPulseWidth(pin, width int) error {
	if r.failAfter > 0 && len(r.cmds)+1 == r.failAfter {
		return r.err
	}
	r.cmds = append(r.cmds, command{pin, width})
	return nil
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Wait = 0
	cfg.PenWait = 0
	return cfg
}

// forward computes the pen position from the arm angles, inverting Angles.
func forward(cfg *Config, shoulder, elbow float64) (x, y float64) {
	a1 := shoulder * math.Pi / 180
	a2 := a1 + elbow*math.Pi/180
	x = cfg.InnerArm*math.Sin(a1) + cfg.OuterArm*math.Sin(a2)
	y = cfg.InnerArm*math.Cos(a1) + cfg.OuterArm*math.Cos(a2)
	return x, y
}

func TestAngles(t *testing.T) {
	cfg := DefaultConfig()
	points := [][2]float64{
		{0, 8}, {-10, 5}, {6, 13}, {-10, 13}, {6, 5}, {-2, 9.5}, {0, 16.5},
	}
	for _, pt := range points {
		shoulder, elbow, err := cfg.Angles(pt[0], pt[1])
		if err != nil {
			t.Errorf("(%g, %g): %v", pt[0], pt[1], err)
			continue
		}
		x, y := forward(cfg, shoulder, elbow)
		if math.Abs(x-pt[0]) > 1e-6 || math.Abs(y-pt[1]) > 1e-6 {
			t.Errorf("(%g, %g): angles %g, %g lead to (%g, %g)",
				pt[0], pt[1], shoulder, elbow, x, y)
		}
	}
}

func TestUnreachable(t *testing.T) {
	cfg := DefaultConfig()
	points := [][2]float64{
		{0, 0}, {0, 0.1}, {20, 0}, {0, 16.6}, {math.NaN(), 5},
	}
	for _, pt := range points {
		if _, _, err := cfg.Angles(pt[0], pt[1]); !errors.Is(err, ErrUnreachable) {
			t.Errorf("(%g, %g): got %v", pt[0], pt[1], err)
		}
	}
}

func TestPulseWidths(t *testing.T) {
	cfg := DefaultConfig()
	pw1, pw2 := cfg.PulseWidths(-90, 90)
	if pw1 != 1582 || pw2 != 1457 {
		t.Errorf("centre: got %d, %d", pw1, pw2)
	}
	pw1, pw2 = cfg.PulseWidths(-80, 100)
	if pw1 != 1482 || pw2 != 1557 {
		t.Errorf("got %d, %d, want 1482, 1557", pw1, pw2)
	}
}

func TestConfigCheck(t *testing.T) {
	if err := DefaultConfig().Check(); err != nil {
		t.Fatal(err)
	}

	broken := []func(*Config){
		func(c *Config) { c.InnerArm = 0 },
		func(c *Config) { c.OuterArm = math.NaN() },
		func(c *Config) { c.Bounds = c.Bounds[:3] },
		func(c *Config) { c.Bounds = []float64{0, 0, 0, 1} },
		func(c *Config) { c.Interpolate = 0 },
		func(c *Config) { c.Wait = -1 },
	}
	for i, modify := range broken {
		cfg := DefaultConfig()
		modify(cfg)
		if cfg.Check() == nil {
			t.Errorf("%d: broken config accepted", i)
		}
		if _, err := New(cfg, &recorder{}); err == nil {
			t.Errorf("%d: New accepted broken config", i)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	fname := filepath.Join(dir, "plotter.yaml")
	data := []byte("inner_arm: 9\nbounds: [-8, 4, 8, 12]\npw_down: 1100\nfit: false\n")
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InnerArm != 9 || cfg.PenDown != 1100 || cfg.Fit {
		t.Errorf("settings not loaded: %+v", cfg)
	}
	if cfg.OuterArm != 8.5 || cfg.PinPen != 18 {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if area := cfg.Area(); area.LLx != -8 || area.URy != 12 {
		t.Errorf("area %v", area)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("inner_arms: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("unknown key accepted")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestPlot(t *testing.T) {
	cfg := testConfig()
	cfg.Fit = false
	rec := &recorder{}
	p, err := New(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}

	d := penplot.Drawing{
		{{X: 0, Y: 8}, {X: 0, Y: 9}},
		{{X: -2, Y: 10}, {X: -2, Y: 10.5}, {X: -1.5, Y: 10.5}},
	}
	if err := p.Plot(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	// The pen goes down once per path and is lifted afterwards.
	var pen []int
	for _, c := range rec.cmds {
		if c.pin == cfg.PinPen {
			pen = append(pen, c.width)
		}
	}
	up, down := cfg.PenUp, cfg.PenDown
	want := []int{up, down, up, down, up}
	if len(pen) != len(want) {
		t.Fatalf("pen commands %v, want %v", pen, want)
	}
	for i := range want {
		if pen[i] != want[i] {
			t.Fatalf("pen commands %v, want %v", pen, want)
		}
	}

	// The last arm position is the end of the last path.
	n := len(rec.cmds)
	s, e, _ := cfg.Angles(-1.5, 10.5)
	pw1, pw2 := cfg.PulseWidths(s, e)
	if rec.cmds[n-3] != (command{cfg.Pin1, pw1}) || rec.cmds[n-2] != (command{cfg.Pin2, pw2}) {
		t.Errorf("unexpected final arm commands %v", rec.cmds[n-3:n-1])
	}

	// The first move goes straight to the start, then the pen goes down.
	if rec.cmds[3] != (command{cfg.PinPen, down}) {
		t.Errorf("unexpected command sequence %v", rec.cmds[:4])
	}

	// With Interpolate=10, a move of length l takes ceil(10*l) steps of two
	// commands each: 1 + 10 + 23 + 5 + 5 steps.
	var armCmds int
	for _, c := range rec.cmds {
		if c.pin != cfg.PinPen {
			armCmds++
		}
	}
	if armCmds != 88 {
		t.Errorf("got %d arm commands, want 88", armCmds)
	}
}

func TestPlotFit(t *testing.T) {
	cfg := testConfig()
	rec := &recorder{}
	p, err := New(cfg, rec)
	if err != nil {
		t.Fatal(err)
	}

	// Far outside the reach of the arms, but scaled into the bounds.
	d := penplot.Drawing{{{X: -1000, Y: -1000}, {X: 1000, Y: 1000}}}
	if err := p.Plot(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	cfg.Fit = false
	if err := p.Plot(context.Background(), d); !errors.Is(err, ErrUnreachable) {
		t.Errorf("got %v, want ErrUnreachable", err)
	}
}

func TestPlotDriverError(t *testing.T) {
	errServo := errors.New("servo failure")
	rec := &recorder{failAfter: 5, err: errServo}
	p, err := New(testConfig(), rec)
	if err != nil {
		t.Fatal(err)
	}

	d := penplot.Drawing{{{X: 0, Y: 8}, {X: 0, Y: 9}}}
	if err := p.Plot(context.Background(), d); err != errServo {
		t.Errorf("got %v, want the driver error unchanged", err)
	}
}

func TestPlotCancel(t *testing.T) {
	rec := &recorder{}
	p, err := New(testConfig(), rec)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := penplot.Drawing{{{X: 0, Y: 8}, {X: 0, Y: 9}}}
	if err := p.Plot(ctx, d); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
	last := rec.cmds[len(rec.cmds)-1]
	if last != (command{p.cfg.PinPen, p.cfg.PenUp}) {
		t.Errorf("pen not lifted after cancel, last command %v", last)
	}
}

func TestPlotEmpty(t *testing.T) {
	rec := &recorder{}
	p, err := New(nil, rec)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Plot(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.cmds) != 0 {
		t.Errorf("got %d commands for an empty drawing", len(rec.cmds))
	}
}

func TestPigpioDriver(t *testing.T) {
	buf := &bytes.Buffer{}
	drv := NewPigpioDriver(buf)
	if err := drv.SetPulseWidth(14, 1500); err != nil {
		t.Fatal(err)
	}
	if err := drv.SetPulseWidth(18, 1200); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "s 14 1500\ns 18 1200\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if err := drv.Close(); err != nil {
		t.Error(err)
	}
}

func TestOpenPigpio(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "pipe")
	if err := os.WriteFile(fname, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	drv, err := OpenPigpio(fname)
	if err != nil {
		t.Fatal(err)
	}
	if err := drv.SetPulseWidth(15, 1457); err != nil {
		t.Fatal(err)
	}
	if err := drv.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "s 15 1457\n" {
		t.Errorf("got %q", data)
	}
}
