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
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/mattetti/filebuffer"

	"seehuhn.de/go/canvas/font"
)

// buildDoc writes a document to a seekable buffer and returns the
// generated file.
func buildDoc(t *testing.T, build func(doc *Document)) []byte {
	t.Helper()
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	build(doc)
	err = doc.Finish()
	if err != nil {
		t.Fatal(err)
	}
	return fb.Buff.Bytes()
}

// parseXRef locates the cross reference table and returns the recorded
// byte offsets, indexed by object number.  Offset 0 is the free entry.
func parseXRef(t *testing.T, data []byte) ([]int64, int64) {
	t.Helper()
	idx := bytes.Index(data, []byte("xref\n0 "))
	if idx < 0 {
		t.Fatal("no cross reference table found")
	}
	rest := data[idx+len("xref\n0 "):]
	eol := bytes.IndexByte(rest, '\n')
	n, err := strconv.Atoi(string(rest[:eol]))
	if err != nil {
		t.Fatal(err)
	}
	rest = rest[eol+1:]

	offsets := make([]int64, n)
	for i := 0; i < n; i++ {
		line := rest[20*i : 20*i+20]
		if line[19] != '\n' || line[18] != ' ' {
			t.Fatalf("malformed xref line %q", line)
		}
		pos, err := strconv.ParseInt(string(line[:10]), 10, 64)
		if err != nil {
			t.Fatal(err)
		}
		offsets[i] = pos
	}
	return offsets, int64(idx)
}

func TestSinglePageDocument(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {
		err := doc.AddPage(A4.Width, A4.Height, func(c *Canvas) error {
			return c.LeftText(100, 700, font.Helvetica, 24, "Hello World!")
		})
		if err != nil {
			t.Fatal(err)
		}
	})

	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Error("missing file header")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}

	for _, want := range []string{
		"/Length 4 0 R",
		"/BaseFont /Helvetica",
		"/Encoding /WinAnsiEncoding",
		"/Contents 3 0 R",
		"/F1 5 0 R",
		"/F1 24 Tf",
		"(Hello World!) Tj",
		"/DeviceRGB cs /DeviceRGB CS",
		"/Root 1 0 R",
		"/Size 7",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// The length object must contain the exact stream length.
	i := bytes.Index(data, []byte("stream\n")) + len("stream\n")
	j := bytes.Index(data, []byte("endstream"))
	streamLen := j - i
	lengthObj := []byte(fmt.Sprintf("4 0 obj\n%d\nendobj\n", streamLen))
	if !bytes.Contains(data, lengthObj) {
		t.Errorf("length object %q not found", lengthObj)
	}

	offsets, xrefPos := parseXRef(t, data)
	if len(offsets) != 7 {
		t.Fatalf("wrong object count %d", len(offsets))
	}
	for id := 1; id < len(offsets); id++ {
		head := []byte(fmt.Sprintf("%d 0 obj\n", id))
		if !bytes.HasPrefix(data[offsets[id]:], head) {
			t.Errorf("offset of object %d does not point at %q", id, head)
		}
	}

	// startxref must point at the cross reference table
	k := bytes.Index(data, []byte("startxref\n"))
	var recorded int64
	_, err := fmt.Sscanf(string(data[k:]), "startxref\n%d\n", &recorded)
	if err != nil {
		t.Fatal(err)
	}
	if recorded != xrefPos {
		t.Errorf("startxref is %d, want %d", recorded, xrefPos)
	}
}

func TestFontSharing(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {
		for i := 0; i < 2; i++ {
			err := doc.AddPage(A4.Width, A4.Height, func(c *Canvas) error {
				err := c.LeftText(100, 700, font.Helvetica, 12, "heading")
				if err != nil {
					return err
				}
				return c.LeftText(100, 650, font.TimesRoman, 10, "body")
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	})

	// each font dictionary is written once and shared between pages
	for _, base := range []string{"/BaseFont /Helvetica", "/BaseFont /Times-Roman"} {
		if n := bytes.Count(data, []byte(base)); n != 1 {
			t.Errorf("%d copies of %q", n, base)
		}
	}

	// first page: content 3, length 4, fonts 5 and 6, page 7
	// second page: content 8, length 9, page 10
	for _, want := range []string{
		"/Font <<\n/F1 5 0 R\n/F2 6 0 R\n>>",
		"/Kids [7 0 R 10 0 R]",
		"/Count 2",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if n := bytes.Count(data, []byte("/Font <<\n/F1 5 0 R\n/F2 6 0 R\n>>")); n != 2 {
		t.Errorf("font resource dictionary found %d times", n)
	}
}

func TestEmptyDocument(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {})

	for _, want := range []string{
		"xref\n0 3\n",
		"0000000000 65535 f \n",
		"/Type /Pages",
		"/Count 0",
		"/Type /Catalog",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}

	offsets, _ := parseXRef(t, data)
	if !bytes.HasPrefix(data[offsets[2]:], []byte("2 0 obj\n")) {
		t.Error("page tree offset is wrong")
	}
	if !bytes.HasPrefix(data[offsets[1]:], []byte("1 0 obj\n")) {
		t.Error("catalog offset is wrong")
	}
}

func TestOutline(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {
		titles := []string{"One", "Two", "Three"}
		for _, title := range titles {
			title := title
			err := doc.AddPage(A4.Width, A4.Height, func(c *Canvas) error {
				c.AddOutline(title)
				return c.LeftText(100, 700, font.Helvetica, 12, title)
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	})

	// The font is only written for the first page, so the pages are
	// objects 6, 9 and 12.  The outline root is 13, the entries are
	// 14 to 16.
	for _, want := range []string{
		"/Outlines 13 0 R",
		"/Type /Outlines",
		"/First 14 0 R",
		"/Last 16 0 R",
		"/Count 3",
		"(One)",
		"/Dest [6 0 R /XYZ null null null]",
		"/Dest [9 0 R /XYZ null null null]",
		"/Dest [12 0 R /XYZ null null null]",
		"/Parent 13 0 R",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// the middle entry links both neighbours
	mid := bytes.Index(data, []byte("15 0 obj\n"))
	end := bytes.Index(data[mid:], []byte("endobj"))
	entry := data[mid : mid+end]
	if !bytes.Contains(entry, []byte("/Prev 14 0 R")) ||
		!bytes.Contains(entry, []byte("/Next 16 0 R")) {
		t.Errorf("middle outline entry is wrong: %q", entry)
	}
}

func TestDocumentInfo(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {
		doc.SetTitle("Example")
		doc.SetAuthor("J. Smith")
	})

	for _, want := range []string{
		"/Title (Example)",
		"/Author (J. Smith)",
		"/CreationDate (D:2",
		"/Info 3 0 R",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestNoDocumentInfo(t *testing.T) {
	data := buildDoc(t, func(doc *Document) {})
	if bytes.Contains(data, []byte("/Info")) {
		t.Error("unexpected information dictionary")
	}
}

func TestRenderError(t *testing.T) {
	errTest := errors.New("render failed")
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.AddPage(100, 100, func(c *Canvas) error {
		return errTest
	})
	if err != errTest {
		t.Errorf("got error %v, want %v", err, errTest)
	}
}

func TestFinishTwice(t *testing.T) {
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Finish()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	doc.Finish()
}

func TestWriteObjectTwice(t *testing.T) {
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.writeObjectAt(catalogRef, func() error {
		return Dict{"Type": Name("Catalog")}.PDF(doc.w)
	})
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	doc.writeObjectAt(catalogRef, func() error {
		return Dict{"Type": Name("Catalog")}.PDF(doc.w)
	})
}

func TestLengthObjectSequence(t *testing.T) {
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	// Allocating an object while the content stream is open breaks the
	// predicted object number of the length object.
	doc.AddPage(100, 100, func(c *Canvas) error {
		doc.alloc()
		return nil
	})
}

func TestCanvasRevoked(t *testing.T) {
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	var retained *Canvas
	err = doc.AddPage(100, 100, func(c *Canvas) error {
		retained = c
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	retained.GetFont(font.Helvetica)
}

func TestAddPageAfterFinish(t *testing.T) {
	fb := filebuffer.New([]byte{})
	doc, err := New(fb)
	if err != nil {
		t.Fatal(err)
	}
	err = doc.Finish()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	doc.AddPage(100, 100, func(c *Canvas) error { return nil })
}
