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
)

// writeXRef writes the cross reference table, the trailer dictionary, and
// the final startxref/%%EOF lines.  All allocated objects must have been
// written by the time this is called.
func (d *Document) writeXRef(infoRef Reference) error {
	xRefPos := d.w.pos

	_, err := fmt.Fprintf(d.w, "xref\n0 %d\n", len(d.offsets))
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.w, "0000000000 65535 f \n")
	if err != nil {
		return err
	}
	for i, pos := range d.offsets[1:] {
		if pos < 0 {
			panic(fmt.Sprintf("canvas: object %d allocated but never written",
				i+1))
		}
		_, err = fmt.Fprintf(d.w, "%010d 00000 n \n", pos)
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(len(d.offsets)),
		"Root": catalogRef,
	}
	if infoRef != 0 {
		trailer["Info"] = infoRef
	}
	_, err = io.WriteString(d.w, "trailer\n")
	if err != nil {
		return err
	}
	err = trailer.PDF(d.w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(d.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return err
}
