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

package output

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects where a drawing goes.
type Mode int

// These are the supported output modes.
const (
	Hardware Mode = iota // plot on a BrachioGraph
	SVG                  // SVG preview
	PNG                  // PNG preview
	PDF                  // single-page PDF preview
	JSON                 // JSON interchange format
)

// ErrUnknownMode is returned for unsupported output modes.
var ErrUnknownMode = errors.New("unknown output mode")

var modeNames = []string{
	Hardware: "hardware",
	SVG:      "svg",
	PNG:      "png",
	PDF:      "pdf",
	JSON:     "json",
}

// Modes returns the names of all output modes.
func Modes() []string {
	return append([]string(nil), modeNames...)
}

// ParseMode converts a mode name, as returned by [Mode.String], into a
// Mode.  Case is ignored.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
