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
	"math"
)

// ErrUnreachable is returned for positions the pen cannot reach.
var ErrUnreachable = errors.New("position out of reach")

// Angles returns the shoulder and elbow angles, in degrees, which place the
// pen at (x, y).  The shoulder sits at the origin, the y-axis points away
// from the plotter.  The shoulder angle is measured from the y-axis, the
// elbow angle between the extension of the inner arm and the outer arm.
func (c *Config) Angles(x, y float64) (shoulder, elbow float64, err error) {
	h := math.Hypot(x, y)
	if !(h > math.Abs(c.InnerArm-c.OuterArm)) || !(h <= c.InnerArm+c.OuterArm) {
		return 0, 0, fmt.Errorf("%w: (%g, %g)", ErrUnreachable, x, y)
	}

	hypAngle := math.Asin(x / h)
	innerAngle := acos((h*h + c.InnerArm*c.InnerArm - c.OuterArm*c.OuterArm) /
		(2 * h * c.InnerArm))
	outerAngle := acos((c.InnerArm*c.InnerArm + c.OuterArm*c.OuterArm - h*h) /
		(2 * c.InnerArm * c.OuterArm))

	shoulder = (hypAngle - innerAngle) * 180 / math.Pi
	elbow = (math.Pi - outerAngle) * 180 / math.Pi
	return shoulder, elbow, nil
}

// PulseWidths converts arm angles into servo pulse widths.
func (c *Config) PulseWidths(shoulder, elbow float64) (pw1, pw2 int) {
	pw1 = c.Servo1Centre + int(math.Round((shoulder-c.Arm1Centre)*c.Servo1DegreeMS))
	pw2 = c.Servo2Centre + int(math.Round((elbow-c.Arm2Centre)*c.Servo2DegreeMS))
	return pw1, pw2
}

// acos is math.Acos with the argument clamped to [-1, 1], since rounding
// can push the cosine slightly out of range at the edge of the reachable
// area.
func acos(x float64) float64 {
	return math.Acos(max(-1, min(1, x)))
}
