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

// Package canvas generates PDF documents in a single pass.
//
// Objects are appended to the output as they are produced, so that whole
// documents can be written to a non-seekable sink like a network
// connection.  Only the byte offsets needed for the cross reference table
// are kept in memory.
//
// A minimal document with a single page of text looks like this:
//
//	doc, err := canvas.Create("hello.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.AddPage(canvas.A4.Width, canvas.A4.Height,
//	    func(c *canvas.Canvas) error {
//	        return c.LeftText(100, 700, font.Helvetica, 24, "Hello World!")
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = doc.Finish()
//	if err != nil {
//	    log.Fatal(err)
//	}
package canvas
