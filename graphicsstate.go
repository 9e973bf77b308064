// seehuhn.de/go/canvas - a library for incrementally generating PDF files
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

package canvas

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"
)

// Color is a device color used for filling and stroking.  The zero value
// is black in the DeviceGray color space.
type Color struct {
	isRGB   bool
	r, g, b uint8
}

// CapStyle selects the shape used for the ends of open stroked subpaths.
type CapStyle int

const (
	ButtCap             CapStyle = 0
	RoundCap            CapStyle = 1
	ProjectingSquareCap CapStyle = 2
)

// JoinStyle selects the shape used where stroked path segments meet.
type JoinStyle int

const (
	MiterJoin JoinStyle = 0
	RoundJoin JoinStyle = 1
	BevelJoin JoinStyle = 2
)

// RGB returns a color in the DeviceRGB color space.  Component values
// range from 0 (dark) to 255 (bright).
func RGB(r, g, b uint8) Color {
	return Color{isRGB: true, r: r, g: g, b: b}
}

// Gray returns a gray level in the DeviceGray color space, ranging from 0
// (black) to 255 (white).
func Gray(v uint8) Color {
	return Color{r: v}
}

func colorComponent(v uint8) string {
	return format(float64(v) / 255)
}

// PushGraphicsState saves the current graphics state on the graphics state
// stack.
func (c *Canvas) PushGraphicsState() error {
	_, err := fmt.Fprintln(c.w, "q")
	return err
}

// PopGraphicsState restores the graphics state saved by the matching call
// to [Canvas.PushGraphicsState].
func (c *Canvas) PopGraphicsState() error {
	_, err := fmt.Fprintln(c.w, "Q")
	return err
}

// Transform adds m to the current transformation matrix of the page.
func (c *Canvas) Transform(m matrix.Matrix) error {
	_, err := fmt.Fprintln(c.w, format(m[0]), format(m[1]), format(m[2]),
		format(m[3]), format(m[4]), format(m[5]), "cm")
	return err
}

// SetLineWidth sets the width of stroked lines, in user space units.
func (c *Canvas) SetLineWidth(width float64) error {
	_, err := fmt.Fprintln(c.w, format(width), "w")
	return err
}

// SetLineCapStyle sets the shape used for the ends of open stroked
// subpaths.
func (c *Canvas) SetLineCapStyle(style CapStyle) error {
	_, err := fmt.Fprintln(c.w, int(style), "J")
	return err
}

// SetLineJoinStyle sets the shape used where stroked path segments meet.
func (c *Canvas) SetLineJoinStyle(style JoinStyle) error {
	_, err := fmt.Fprintln(c.w, int(style), "j")
	return err
}

// SetStrokeColor sets the color used for stroking operations.
func (c *Canvas) SetStrokeColor(col Color) error {
	return writeStrokeColor(c.w, col)
}

// SetFillColor sets the color used for filling operations.
func (c *Canvas) SetFillColor(col Color) error {
	return writeFillColor(c.w, col)
}

func writeStrokeColor(w io.Writer, col Color) error {
	var err error
	if col.isRGB {
		_, err = fmt.Fprintln(w, colorComponent(col.r),
			colorComponent(col.g), colorComponent(col.b), "SC")
	} else {
		_, err = fmt.Fprintln(w, colorComponent(col.r), "G")
	}
	return err
}

func writeFillColor(w io.Writer, col Color) error {
	var err error
	if col.isRGB {
		_, err = fmt.Fprintln(w, colorComponent(col.r),
			colorComponent(col.g), colorComponent(col.b), "sc")
	} else {
		_, err = fmt.Fprintln(w, colorComponent(col.r), "g")
	}
	return err
}
