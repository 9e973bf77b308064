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

import "time"

// Info holds the values for the document information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	Creator  string
	Producer string

	CreationDate time.Time
}

// AsDict returns the PDF representation of the document information.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	if info.Title != "" {
		dict["Title"] = TextString(info.Title)
	}
	if info.Author != "" {
		dict["Author"] = TextString(info.Author)
	}
	if info.Subject != "" {
		dict["Subject"] = TextString(info.Subject)
	}
	if info.Keywords != "" {
		dict["Keywords"] = TextString(info.Keywords)
	}
	if info.Creator != "" {
		dict["Creator"] = TextString(info.Creator)
	}
	if info.Producer != "" {
		dict["Producer"] = TextString(info.Producer)
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	return dict
}

// getInfo returns the document information, creating it when metadata is
// set for the first time.  An information dictionary is only written to
// the file if at least one metadata field has been set.
func (d *Document) getInfo() *Info {
	if d.info == nil {
		d.info = &Info{}
	}
	return d.info
}

// SetTitle sets the document title shown by PDF viewers.
func (d *Document) SetTitle(title string) {
	d.getInfo().Title = title
}

// SetAuthor sets the name of the document's author.
func (d *Document) SetAuthor(author string) {
	d.getInfo().Author = author
}

// SetSubject sets the document's subject.
func (d *Document) SetSubject(subject string) {
	d.getInfo().Subject = subject
}

// SetKeywords sets the keywords associated with the document.
func (d *Document) SetKeywords(keywords string) {
	d.getInfo().Keywords = keywords
}

// SetCreator sets the name of the application which produced the
// document's content.
func (d *Document) SetCreator(creator string) {
	d.getInfo().Creator = creator
}

// SetProducer sets the name of the software which converted the document
// to PDF.
func (d *Document) SetProducer(producer string) {
	d.getInfo().Producer = producer
}

// SetCreationDate overrides the creation date recorded in the document.
// If metadata has been set but no creation date is given, the time when
// the document was created is used.
func (d *Document) SetCreationDate(t time.Time) {
	d.getInfo().CreationDate = t
}
