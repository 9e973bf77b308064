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

// Package pdfenc describes the built-in encodings of the standard PDF
// fonts.  An encoding maintains the connection between unicode code
// points, bytes in PDF strings, and glyph names.
package pdfenc

import (
	"sort"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/postscript/type1/names"
)

// Encoding maps the 256 character codes of a simple font to glyph names
// and unicode code points.
type Encoding struct {
	name   string
	byName map[string]byte
	byRune map[rune]byte
}

// Name returns the PDF name of the encoding, as used in font dictionaries.
func (e *Encoding) Name() string {
	return e.name
}

// GetCode returns the character code for the given glyph name.  Glyph
// names are case sensitive.  The second return value is false if the
// encoding does not contain the glyph.
func (e *Encoding) GetCode(glyph string) (byte, bool) {
	code, ok := e.byName[glyph]
	return code, ok
}

// Encode converts a string to a sequence of character codes in the
// encoding.  Characters which cannot be represented are replaced with
// question marks.
func (e *Encoding) Encode(text string) []byte {
	var res []byte
	for _, r := range text {
		code, ok := e.byRune[r]
		if !ok {
			code = '?'
		}
		res = append(res, code)
	}
	return res
}

// CanEncode reports whether all characters of text can be represented in
// the encoding.
func (e *Encoding) CanEncode(text string) bool {
	for _, r := range text {
		if _, ok := e.byRune[r]; !ok {
			return false
		}
	}
	return true
}

// builtin constructs an encoding from a glyph name table.  The unicode
// mapping starts out with the identity mapping for the codes 32 to 254
// and is then refined using the Adobe glyph list, with glyph names
// applied in sorted order so that the result does not depend on map
// iteration order.
func builtin(pdfName string, glyphCodes map[string]byte, dingbats bool) *Encoding {
	e := &Encoding{
		name:   pdfName,
		byName: glyphCodes,
		byRune: make(map[rune]byte),
	}
	for code := 32; code < 255; code++ {
		e.byRune[rune(code)] = byte(code)
	}

	glyphs := maps.Keys(glyphCodes)
	sort.Strings(glyphs)
	for _, glyph := range glyphs {
		rr := names.ToUnicode(glyph, dingbats)
		if len(rr) == 1 {
			e.byRune[rr[0]] = glyphCodes[glyph]
		}
	}
	return e
}
