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
	"os"
	"strconv"
	"time"
)

// Object numbers 1 and 2 are reserved when the file header is written:
// the document catalog and the page tree are referenced before their
// contents are known, and their bodies are only written by Finish.
const (
	catalogRef  Reference = 1
	pageTreeRef Reference = 2
)

// Offsets of objects which have been allocated but not yet written are
// marked with posNotWritten.  Object number 0 is never written and keeps
// the posFree marker forever.
const (
	posFree       int64 = -2
	posNotWritten int64 = -1
)

// Document represents a PDF document while it is being written.  Pages,
// fonts, and outline entries are appended to the underlying writer as they
// are produced, and only the cross reference information is kept in memory.
type Document struct {
	w *posWriter

	// offsets maps object numbers to the byte offset of the corresponding
	// "n 0 obj" header in the output.
	offsets []int64

	pageRefs  []Reference
	resources map[string]Reference
	outline   []*OutlineItem
	info      *Info
	created   time.Time
	finished  bool

	origW io.Writer
}

// New prepares a PDF document for writing.  The two-line file header is
// written to w before New returns.
func New(w io.Writer) (*Document, error) {
	d := &Document{
		w:         &posWriter{w: w},
		offsets:   []int64{posFree, posNotWritten, posNotWritten},
		resources: make(map[string]Reference),
		created:   time.Now(),
		origW:     w,
	}

	_, err := fmt.Fprint(d.w, "%PDF-1.7\n%\xb5\xed\xae\xfb\n")
	if err != nil {
		return nil, err
	}

	return d, nil
}

// Create creates the named PDF file and opens it for output.  If a previous
// file with the same name exists, it is overwritten.  After all pages have
// been added, Finish must be called to write the trailer and to close the
// underlying file.
func Create(name string) (*Document, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return New(fd)
}

// AddPage appends a page of the given size to the document.  The render
// callback is called once, with a [Canvas] which draws to the page's
// content stream.  The Canvas must not be retained after render returns.
//
// An error returned by render is passed through to the caller unchanged;
// the document is left in an unusable state in this case.
func (d *Document) AddPage(width, height float64, render func(c *Canvas) error) error {
	if d.finished {
		panic("canvas: AddPage called after Finish")
	}

	page := &pageState{names: make(map[string]int)}

	var length int64
	contentRef, err := d.writeNewObject(func(ref Reference) error {
		// The length of the content stream is only known after render has
		// run, but the stream dictionary comes first in the file.  The
		// length is stored in a separate object, which is allocated
		// immediately after the content stream and thus has a predictable
		// object number.
		err := Dict{"Length": ref + 1}.PDF(d.w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(d.w, "\nstream\n")
		if err != nil {
			return err
		}
		start := d.w.pos

		c := &Canvas{w: d.w, page: page}
		_, err = io.WriteString(d.w, "/DeviceRGB cs /DeviceRGB CS\n")
		if err != nil {
			return err
		}
		err = render(c)
		c.w = nil
		c.page = nil
		if err != nil {
			return err
		}

		length = d.w.pos - start
		_, err = io.WriteString(d.w, "endstream")
		return err
	})
	if err != nil {
		return err
	}

	_, err = d.writeNewObject(func(ref Reference) error {
		if ref != contentRef+1 {
			panic("canvas: content length object out of sequence")
		}
		return Integer(length).PDF(d.w)
	})
	if err != nil {
		return err
	}

	fontDict := Dict{}
	for i, res := range page.resources {
		ref, err := d.writeResource(res)
		if err != nil {
			return err
		}
		fontDict[Name("F"+strconv.Itoa(i+1))] = ref
	}

	pageRef, err := d.writeNewObject(func(ref Reference) error {
		dict := Dict{
			"Type":     Name("Page"),
			"Parent":   pageTreeRef,
			"MediaBox": Array{Integer(0), Integer(0), Real(width), Real(height)},
			"Contents": contentRef,
		}
		if len(fontDict) > 0 {
			dict["Resources"] = Dict{"Font": fontDict}
		}
		return dict.PDF(d.w)
	})
	if err != nil {
		return err
	}

	for _, item := range page.outline {
		item.page = pageRef
		d.outline = append(d.outline, item)
	}
	d.pageRefs = append(d.pageRefs, pageRef)

	return nil
}

// Finish writes the page tree, the document catalog, the cross reference
// table and the trailer.  If the underlying io.Writer has a Close method,
// the writer is also closed.
//
// Finish must be called exactly once, after all pages have been added.
func (d *Document) Finish() error {
	if d.finished {
		panic("canvas: Finish called twice")
	}
	d.finished = true

	kids := make(Array, len(d.pageRefs))
	for i, ref := range d.pageRefs {
		kids[i] = ref
	}
	err := d.writeObjectAt(pageTreeRef, func() error {
		return Dict{
			"Type":  Name("Pages"),
			"Count": Integer(len(d.pageRefs)),
			"Kids":  kids,
		}.PDF(d.w)
	})
	if err != nil {
		return err
	}

	var infoRef Reference
	if d.info != nil {
		if d.info.CreationDate.IsZero() {
			d.info.CreationDate = d.created
		}
		infoRef, err = d.writeNewObject(func(Reference) error {
			return d.info.AsDict().PDF(d.w)
		})
		if err != nil {
			return err
		}
	}

	var outlinesRef Reference
	if len(d.outline) > 0 {
		outlinesRef, err = d.writeOutlines()
		if err != nil {
			return err
		}
	}

	err = d.writeObjectAt(catalogRef, func() error {
		dict := Dict{
			"Type":  Name("Catalog"),
			"Pages": pageTreeRef,
		}
		if outlinesRef != 0 {
			dict["Outlines"] = outlinesRef
		}
		return dict.PDF(d.w)
	})
	if err != nil {
		return err
	}

	err = d.writeXRef(infoRef)
	if err != nil {
		return err
	}

	if closer, ok := d.origW.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// alloc reserves the next unused object number.
func (d *Document) alloc() Reference {
	ref := Reference(len(d.offsets))
	d.offsets = append(d.offsets, posNotWritten)
	return ref
}

// writeNewObject allocates a new object number and writes the object body
// produced by fill at the current file position.  fill receives the
// allocated object number, so that it can refer to objects which will be
// written right after this one.
func (d *Document) writeNewObject(fill func(ref Reference) error) (Reference, error) {
	ref := d.alloc()
	err := d.writeObjectAt(ref, func() error { return fill(ref) })
	return ref, err
}

// writeObjectAt writes the body of a previously allocated object at the
// current file position and records the object's byte offset for the cross
// reference table.
func (d *Document) writeObjectAt(ref Reference, fill func() error) error {
	if d.offsets[ref] != posNotWritten {
		panic(fmt.Sprintf("canvas: object %d written twice", ref))
	}

	pos := d.w.pos
	_, err := fmt.Fprintf(d.w, "%d 0 obj\n", ref)
	if err != nil {
		return err
	}
	err = fill()
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.w, "\nendobj\n")
	if err != nil {
		return err
	}

	d.offsets[ref] = pos
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
