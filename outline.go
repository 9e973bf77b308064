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

import "seehuhn.de/go/canvas/pdfenc"

// OutlineItem is an entry in the document outline ("bookmarks") shown by
// PDF viewers.  Items are created while a page is rendered and point at
// the top of that page.
type OutlineItem struct {
	title string
	page  Reference
}

// writeOutlines writes the outline entries and the outline root object,
// and returns the object number of the root.  The object numbers of all
// entries are allocated up front, so that each entry can refer to its
// neighbours before they are written.
func (d *Document) writeOutlines() (Reference, error) {
	root := d.alloc()
	refs := make([]Reference, len(d.outline))
	for i := range refs {
		refs[i] = d.alloc()
	}

	for i, item := range d.outline {
		dict := Dict{
			"Title":  String(pdfenc.WinAnsi.Encode(item.title)),
			"Parent": root,
			"Dest":   Array{item.page, Name("XYZ"), nil, nil, nil},
		}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < len(refs)-1 {
			dict["Next"] = refs[i+1]
		}
		err := d.writeObjectAt(refs[i], func() error {
			return dict.PDF(d.w)
		})
		if err != nil {
			return 0, err
		}
	}

	err := d.writeObjectAt(root, func() error {
		return Dict{
			"Type":  Name("Outlines"),
			"First": refs[0],
			"Last":  refs[len(refs)-1],
			"Count": Integer(len(refs)),
		}.PDF(d.w)
	})
	if err != nil {
		return 0, err
	}
	return root, nil
}
