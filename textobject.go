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

	"seehuhn.de/go/canvas/font"
	"seehuhn.de/go/canvas/pdfenc"
)

// TextObject writes the text operators between a BT/ET pair.  TextObjects
// are created by [Canvas.Text].
type TextObject struct {
	w   io.Writer
	enc *pdfenc.Encoding
}

// SetFont selects the font and font size for the following text.  The
// encoding of the font determines how strings passed to [TextObject.Show]
// are converted to bytes.
func (t *TextObject) SetFont(f font.Ref, size float64) error {
	t.enc = f.Encoding()
	_, err := fmt.Fprintln(t.w, f.String(), format(size), "Tf")
	return err
}

// SetLeading sets the distance between the baselines of adjacent lines of
// text.
func (t *TextObject) SetLeading(leading float64) error {
	_, err := fmt.Fprintln(t.w, format(leading), "TL")
	return err
}

// SetRise moves the baseline up (positive amounts) or down (negative
// amounts) relative to its default location.
func (t *TextObject) SetRise(rise float64) error {
	_, err := fmt.Fprintln(t.w, format(rise), "Ts")
	return err
}

// SetCharSpacing sets the additional space between glyphs.
func (t *TextObject) SetCharSpacing(spacing float64) error {
	_, err := fmt.Fprintln(t.w, format(spacing), "Tc")
	return err
}

// SetWordSpacing sets the additional space inserted for space characters.
func (t *TextObject) SetWordSpacing(spacing float64) error {
	_, err := fmt.Fprintln(t.w, format(spacing), "Tw")
	return err
}

// SetStrokeColor sets the color used for stroking text.
func (t *TextObject) SetStrokeColor(col Color) error {
	return writeStrokeColor(t.w, col)
}

// SetFillColor sets the color text is filled with.
func (t *TextObject) SetFillColor(col Color) error {
	return writeFillColor(t.w, col)
}

// PushGraphicsState saves the current graphics state on the graphics state
// stack.
func (t *TextObject) PushGraphicsState() error {
	_, err := fmt.Fprintln(t.w, "q")
	return err
}

// PopGraphicsState restores the graphics state saved by the matching call
// to [TextObject.PushGraphicsState].
func (t *TextObject) PopGraphicsState() error {
	_, err := fmt.Fprintln(t.w, "Q")
	return err
}

// Pos moves the text position to (x, y), relative to the start of the
// previous line.
func (t *TextObject) Pos(x, y float64) error {
	_, err := fmt.Fprintln(t.w, format(x), format(y), "Td")
	return err
}

// Show draws text at the current text position.  The string is converted
// to bytes using the encoding of the current font; characters which the
// encoding cannot represent are replaced with question marks.
func (t *TextObject) Show(text string) error {
	err := t.encoded(text).PDF(t.w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(t.w, " Tj\n")
	return err
}

// ShowLine moves to the next line of text and then draws text like
// [TextObject.Show].  The line spacing set by [TextObject.SetLeading] is
// used.
func (t *TextObject) ShowLine(text string) error {
	err := t.encoded(text).PDF(t.w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(t.w, " '\n")
	return err
}

// A TextSpan pairs a string with a position adjustment.  The adjustment is
// in thousandths of a unit of text space and is subtracted from the text
// position after the string has been shown, so positive values move the
// following text to the left.
type TextSpan struct {
	Text   string
	Adjust int
}

// ShowAdjusted draws a sequence of strings with individual position
// adjustments, for example for kerning.
func (t *TextObject) ShowAdjusted(spans ...TextSpan) error {
	_, err := io.WriteString(t.w, "[")
	if err != nil {
		return err
	}
	for i, span := range spans {
		if i > 0 {
			_, err = io.WriteString(t.w, " ")
			if err != nil {
				return err
			}
		}
		err = t.encoded(span.Text).PDF(t.w)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(t.w, " %d", span.Adjust)
		if err != nil {
			return err
		}
	}
	_, err = io.WriteString(t.w, "] TJ\n")
	return err
}

func (t *TextObject) encoded(text string) String {
	enc := t.enc
	if enc == nil {
		enc = pdfenc.WinAnsi
	}
	return String(enc.Encode(text))
}
