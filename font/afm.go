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

package font

import (
	"io"

	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/canvas/pdfenc"
)

// Metrics holds glyph metrics read from an AFM file.  This can be used to
// measure text for fonts where the built-in width tables of this package
// do not apply.
type Metrics struct {
	FontName string
	Ascent   float64
	Descent  float64

	widths [256]float64
}

// LoadAFM reads glyph metrics from an AFM file.  Widths are indexed by
// the character codes of the font's built-in encoding, as recorded in the
// AFM data.
func LoadAFM(r io.Reader) (*Metrics, error) {
	info, err := afm.Read(r)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		FontName: info.FontName,
		Ascent:   float64(info.Ascent),
		Descent:  float64(info.Descent),
	}
	for code, name := range info.Encoding {
		if code >= 256 {
			break
		}
		if glyph, ok := info.Glyphs[name]; ok {
			m.widths[code] = float64(glyph.WidthX)
		}
	}
	return m, nil
}

// GlyphWidth returns the width of the glyph with the given character
// code, in thousandths of the font size.  The width 100 is used for codes
// which do not name a glyph.
func (m *Metrics) GlyphWidth(code byte) float64 {
	w := m.widths[code]
	if w == 0 {
		return 100
	}
	return w
}

// WidthRaw returns the width of text in thousandths of the font size,
// using enc to convert the text to character codes.
func (m *Metrics) WidthRaw(text string, enc *pdfenc.Encoding) float64 {
	total := 0.0
	for _, code := range enc.Encode(text) {
		total += m.GlyphWidth(code)
	}
	return total
}

// Width returns the width of text at the given font size, in PDF units.
func (m *Metrics) Width(size float64, text string, enc *pdfenc.Encoding) float64 {
	return size * m.WidthRaw(text, enc) / 1000
}
