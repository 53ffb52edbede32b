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
	"fmt"
	"io"
	"os"
)

// PigpioPipe is the command pipe of the pigpio daemon.
const PigpioPipe = "/dev/pigpio"

// PigpioDriver sends servo commands to the pigpio daemon, using its
// command pipe.
type PigpioDriver struct {
	w io.Writer
}

// NewPigpioDriver returns a driver which writes pigpio pipe commands to w.
func NewPigpioDriver(w io.Writer) *PigpioDriver {
	return &PigpioDriver{w: w}
}

// OpenPigpio opens the pigpio command pipe.  If fname is empty,
// PigpioPipe is used.
func OpenPigpio(fname string) (*PigpioDriver, error) {
	if fname == "" {
		fname = PigpioPipe
	}
	f, err := os.OpenFile(fname, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	return &PigpioDriver{w: f}, nil
}

// SetPulseWidth implements the [Driver] interface.
func (d *PigpioDriver) SetPulseWidth(pin, width int) error {
	_, err := fmt.Fprintf(d.w, "s %d %d\n", pin, width)
	return err
}

// Close closes the underlying pipe, if the driver was created by
// OpenPigpio.
func (d *PigpioDriver) Close() error {
	if c, ok := d.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
