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
	"strconv"

	"seehuhn.de/go/canvas/font"
)

// Canvas records the contents of a page.  A Canvas is handed to the render
// callback of [Document.AddPage] and writes the PDF graphics operators for
// the page directly to the document's content stream.
//
// The coordinate system has its origin in the lower left corner of the
// page, with x increasing to the right and y increasing upwards.  One unit
// is 1/72 inch.
type Canvas struct {
	w    io.Writer
	page *pageState
}

// GetFont registers the given font for use on the current page and returns
// a reference which can be passed to [TextObject.SetFont].  Registering
// the same font twice returns the same reference.
func (c *Canvas) GetFont(f font.Font) font.Ref {
	return font.NewRef(c.page.localName(f), f)
}

// AddOutline adds an entry to the document outline which points at the
// current page.  Entries appear in the order in which they were added.
func (c *Canvas) AddOutline(title string) {
	c.page.outline = append(c.page.outline, &OutlineItem{title: title})
}

// MoveTo begins a new subpath at the point (x, y).
func (c *Canvas) MoveTo(x, y float64) error {
	_, err := fmt.Fprintln(c.w, format(x), format(y), "m")
	return err
}

// LineTo appends a straight line from the current point to (x, y).
func (c *Canvas) LineTo(x, y float64) error {
	_, err := fmt.Fprintln(c.w, format(x), format(y), "l")
	return err
}

// CurveTo appends a cubic Bezier curve from the current point to (x3, y3),
// using (x1, y1) and (x2, y2) as control points.
func (c *Canvas) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	_, err := fmt.Fprintln(c.w, format(x1), format(y1),
		format(x2), format(y2), format(x3), format(y3), "c")
	return err
}

// Line appends a straight line from (x1, y1) to (x2, y2) as a new subpath.
func (c *Canvas) Line(x1, y1, x2, y2 float64) error {
	err := c.MoveTo(x1, y1)
	if err != nil {
		return err
	}
	return c.LineTo(x2, y2)
}

// Rectangle appends a rectangle with the lower left corner (x, y) to the
// current path as a complete subpath.
func (c *Canvas) Rectangle(x, y, width, height float64) error {
	_, err := fmt.Fprintln(c.w, format(x), format(y),
		format(width), format(height), "re")
	return err
}

// bezierCircle approximates a quarter circle of unit radius by a cubic
// Bezier curve.
const bezierCircle = 0.551915024494

// Circle appends a circle with centre (x, y) and radius r to the current
// path, approximated by four Bezier curves.
func (c *Canvas) Circle(x, y, r float64) error {
	top := y + r
	bottom := y - r
	left := x - r
	right := x + r
	k := bezierCircle * r

	err := c.MoveTo(x, top)
	if err != nil {
		return err
	}
	err = c.CurveTo(x+k, top, right, y+k, right, y)
	if err != nil {
		return err
	}
	err = c.CurveTo(right, y-k, x+k, bottom, x, bottom)
	if err != nil {
		return err
	}
	err = c.CurveTo(x-k, bottom, left, y-k, left, y)
	if err != nil {
		return err
	}
	return c.CurveTo(left, y+k, x-k, top, x, top)
}

// Stroke strokes the current path.
func (c *Canvas) Stroke() error {
	_, err := fmt.Fprintln(c.w, "S")
	return err
}

// CloseAndStroke closes the current subpath and then strokes the path.
func (c *Canvas) CloseAndStroke() error {
	_, err := fmt.Fprintln(c.w, "s")
	return err
}

// Fill fills the current path using the nonzero winding number rule.
func (c *Canvas) Fill() error {
	_, err := fmt.Fprintln(c.w, "f")
	return err
}

// Text starts a PDF text object and calls body with a [TextObject] for
// writing text operators.  The matching ET operator is written after body
// returns.  The TextObject must not be retained after body returns.
func (c *Canvas) Text(body func(t *TextObject) error) error {
	_, err := fmt.Fprintln(c.w, "BT")
	if err != nil {
		return err
	}
	t := &TextObject{w: c.w}
	err = body(t)
	t.w = nil
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.w, "ET")
	return err
}

// LeftText draws a single line of text with its left edge at (x, y).
func (c *Canvas) LeftText(x, y float64, f font.Font, size float64, text string) error {
	return c.showText(x, y, f, size, text)
}

// RightText draws a single line of text with its right edge at (x, y).
func (c *Canvas) RightText(x, y float64, f font.Font, size float64, text string) error {
	return c.showText(x-f.Width(size, text), y, f, size, text)
}

// CenterText draws a single line of text centred at (x, y).
func (c *Canvas) CenterText(x, y float64, f font.Font, size float64, text string) error {
	return c.showText(x-f.Width(size, text)/2, y, f, size, text)
}

func (c *Canvas) showText(x, y float64, f font.Font, size float64, text string) error {
	return c.Text(func(t *TextObject) error {
		err := t.SetFont(c.GetFont(f), size)
		if err != nil {
			return err
		}
		err = t.Pos(x, y)
		if err != nil {
			return err
		}
		return t.Show(text)
	})
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
