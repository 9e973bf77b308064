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

// Package font provides the 14 built-in PDF fonts.  These fonts are
// guaranteed to be available in all PDF viewers, and documents using them
// do not need embedded font programs.
package font

import (
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/canvas/pdfenc"
)

// Font identifies one of the built-in PDF fonts.
type Font string

// The 14 built-in PDF fonts.
const (
	Courier            Font = "Courier"
	CourierBold        Font = "Courier-Bold"
	CourierBoldOblique Font = "Courier-BoldOblique"
	CourierOblique     Font = "Courier-Oblique"
	Helvetica          Font = "Helvetica"
	HelveticaBold      Font = "Helvetica-Bold"
	HelveticaBoldObl   Font = "Helvetica-BoldOblique"
	HelveticaOblique   Font = "Helvetica-Oblique"
	TimesRoman         Font = "Times-Roman"
	TimesBold          Font = "Times-Bold"
	TimesBoldItalic    Font = "Times-BoldItalic"
	TimesItalic        Font = "Times-Italic"
	Symbol             Font = "Symbol"
	ZapfDingbats       Font = "ZapfDingbats"
)

// All lists the 14 built-in PDF fonts.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldObl,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// Encoding returns the encoding used with the font: the symbolic fonts
// use their own built-in encodings, all text fonts use WinAnsiEncoding.
func (f Font) Encoding() *pdfenc.Encoding {
	switch f {
	case Symbol:
		return pdfenc.Symbol
	case ZapfDingbats:
		return pdfenc.ZapfDingbats
	default:
		return pdfenc.WinAnsi
	}
}

// ResourceKey implements the canvas.Resource interface.
func (f Font) ResourceKey() string {
	return "builtin font " + string(f)
}

// WriteObject implements the canvas.Resource interface, writing the
// font dictionary.
func (f Font) WriteObject(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"<< /Type /Font /Subtype /Type1 /BaseFont /%s /Encoding /%s >>",
		string(f), f.Encoding().Name())
	return err
}

// GlyphWidth returns the width of the glyph with the given character
// code, in thousandths of the font size.  The width 100 is used for codes
// which do not name a glyph in the font.
func (f Font) GlyphWidth(code byte) int {
	ww, ok := builtinWidths[f]
	if !ok {
		return 100
	}
	w := ww[code]
	if w == 0 {
		return 100
	}
	return int(w)
}

// WidthRaw returns the width of text in thousandths of the font size.
func (f Font) WidthRaw(text string) int {
	total := 0
	for _, code := range f.Encoding().Encode(text) {
		total += f.GlyphWidth(code)
	}
	return total
}

// Width returns the width of text at the given font size, in PDF units.
func (f Font) Width(size float64, text string) float64 {
	return size * float64(f.WidthRaw(text)) / 1000
}

// Ref is a font which has been registered for use on a specific page,
// together with its page-local resource name.  References are created by
// the GetFont method of a canvas.
type Ref struct {
	n   int
	src Font
}

// NewRef binds a font to the page-local resource number n.
func NewRef(n int, f Font) Ref {
	return Ref{n: n, src: f}
}

// String returns the resource name used for the font in content streams,
// for example "/F1".
func (r Ref) String() string {
	return "/F" + strconv.Itoa(r.n)
}

// Font returns the font the reference points to.
func (r Ref) Font() Font {
	return r.src
}

// Encoding returns the encoding used with the font.
func (r Ref) Encoding() *pdfenc.Encoding {
	return r.src.Encoding()
}

// Width returns the width of text at the given font size, in PDF units.
func (r Ref) Width(size float64, text string) float64 {
	return r.src.Width(size, text)
}
