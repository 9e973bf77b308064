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

// PaperSize gives the dimensions of a page in PDF units (1/72 inch).
type PaperSize struct {
	Width, Height float64
}

// Landscape returns the paper size rotated by 90 degrees.
func (p PaperSize) Landscape() PaperSize {
	return PaperSize{Width: p.Height, Height: p.Width}
}

// Common paper sizes.
var (
	A4     = PaperSize{Width: 595.276, Height: 841.890}
	A5     = PaperSize{Width: 419.528, Height: 595.276}
	Letter = PaperSize{Width: 612, Height: 792}
	Legal  = PaperSize{Width: 612, Height: 1008}
)

// AddPageSized appends a page with the given paper size to the document.
// This is a convenience wrapper around [Document.AddPage].
func (d *Document) AddPageSized(size PaperSize, render func(c *Canvas) error) error {
	return d.AddPage(size.Width, size.Height, render)
}
