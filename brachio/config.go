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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
	"seehuhn.de/go/geom/rect"
)

// Config describes the geometry and the servo calibration of a plotter.
// Lengths and coordinates are in centimetres, angles in degrees, pulse
// widths in microseconds and times in seconds.
type Config struct {
	// InnerArm and OuterArm are the lengths of the two arms.
	InnerArm float64 `yaml:"inner_arm"`
	OuterArm float64 `yaml:"outer_arm"`

	// Bounds is the drawing area as [x0, y0, x1, y1].
	Bounds []float64 `yaml:"bounds"`

	// Arm1Centre and Arm2Centre are the arm angles at which the servos
	// are at their centre pulse widths.
	Arm1Centre float64 `yaml:"arm_1_centre"`
	Arm2Centre float64 `yaml:"arm_2_centre"`

	// Servo1Centre and Servo2Centre are the centre pulse widths.
	Servo1Centre int `yaml:"servo_1_centre"`
	Servo2Centre int `yaml:"servo_2_centre"`

	// Servo1DegreeMS and Servo2DegreeMS give the change in pulse width per
	// degree of arm rotation.
	Servo1DegreeMS float64 `yaml:"servo_1_degree_ms"`
	Servo2DegreeMS float64 `yaml:"servo_2_degree_ms"`

	// PenUp and PenDown are the pulse widths of the pen-lifting servo.
	PenUp   int `yaml:"pw_up"`
	PenDown int `yaml:"pw_down"`

	// Wait is the time the arms need to travel one unit of distance.
	Wait float64 `yaml:"wait"`

	// PenWait is the time to wait after lifting or lowering the pen.
	PenWait float64 `yaml:"pen_wait"`

	// Interpolate is the number of intermediate positions per unit of
	// distance.  Must be positive.
	Interpolate float64 `yaml:"interpolate"`

	// Pin1, Pin2 and PinPen are the GPIO pins of the shoulder, elbow and
	// pen servos.
	Pin1   int `yaml:"pin_1"`
	Pin2   int `yaml:"pin_2"`
	PinPen int `yaml:"pin_pen"`

	// Fit scales and centres every drawing into Bounds before plotting.
	// If Fit is false, drawing coordinates are used as plotter coordinates.
	Fit bool `yaml:"fit"`
}

// DefaultConfig returns the settings of a standard BrachioGraph.
func DefaultConfig() *Config {
	return &Config{
		InnerArm:       8,
		OuterArm:       8.5,
		Bounds:         []float64{-10, 5, 6, 13},
		Arm1Centre:     -90,
		Arm2Centre:     90,
		Servo1Centre:   1582,
		Servo2Centre:   1457,
		Servo1DegreeMS: -10,
		Servo2DegreeMS: 10,
		PenUp:          1550,
		PenDown:        1200,
		Wait:           0.2,
		PenWait:        0.25,
		Interpolate:    10,
		Pin1:           14,
		Pin2:           15,
		PinPen:         18,
		Fit:            true,
	}
}

// LoadConfig reads a YAML configuration file.  Settings missing from the
// file keep their default values.
func LoadConfig(fname string) (*Config, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if err := cfg.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// Check reports whether the configuration is usable.
func (c *Config) Check() error {
	switch {
	case !(c.InnerArm > 0) || !(c.OuterArm > 0):
		return errors.New("arm lengths must be positive")
	case len(c.Bounds) != 4:
		return fmt.Errorf("bounds need 4 values, got %d", len(c.Bounds))
	case !(c.Bounds[0] < c.Bounds[2]) || !(c.Bounds[1] < c.Bounds[3]):
		return fmt.Errorf("empty bounds %v", c.Bounds)
	case !(c.Interpolate > 0):
		return errors.New("interpolate must be positive")
	case c.Wait < 0 || c.PenWait < 0:
		return errors.New("negative wait time")
	}
	return nil
}

// Area returns Bounds as a rectangle.
func (c *Config) Area() rect.Rect {
	return rect.Rect{
		LLx: c.Bounds[0],
		LLy: c.Bounds[1],
		URx: c.Bounds[2],
		URy: c.Bounds[3],
	}
}
