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

import "io"

// Resource is a PDF resource which can be shared between pages, for
// example a font.  Resources with equal keys are only written to the file
// once and later uses refer back to the first copy.
type Resource interface {
	// ResourceKey returns a string which identifies the resource within
	// the document.  Two resources with the same key must describe the
	// same object.
	ResourceKey() string

	// WriteObject writes the body of the resource's PDF object to w.
	WriteObject(w io.Writer) error
}

// writeResource returns the object number of res within the document,
// writing the resource's object on first use.
func (d *Document) writeResource(res Resource) (Reference, error) {
	key := res.ResourceKey()
	if ref, ok := d.resources[key]; ok {
		return ref, nil
	}

	ref, err := d.writeNewObject(func(Reference) error {
		return res.WriteObject(d.w)
	})
	if err != nil {
		return 0, err
	}
	d.resources[key] = ref
	return ref, nil
}

// pageState accumulates the per-page context while a page is being
// rendered: the resources used on the page, keyed by their local names,
// and the outline entries pointing at the page.
type pageState struct {
	names     map[string]int
	resources []Resource
	outline   []*OutlineItem
}

// localName returns the page-local number of res, assigning the next free
// number on first use.  The numbers start at 1, so that the first font
// used on a page is called /F1.
func (p *pageState) localName(res Resource) int {
	key := res.ResourceKey()
	if n, ok := p.names[key]; ok {
		return n
	}
	p.resources = append(p.resources, res)
	n := len(p.resources)
	p.names[key] = n
	return n
}
