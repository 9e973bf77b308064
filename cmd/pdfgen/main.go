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

// Command pdfgen generates a PDF file from a YAML description.
//
// Usage:
//
//	pdfgen [-o output.pdf] input.yaml
//
// The input file describes the document metadata and the pages:
//
//	title: Example
//	author: J. Doe
//	paper: A4
//	pages:
//	  - outline: First page
//	    items:
//	      - text: Hello, World!
//	        x: 72
//	        y: 720
//	        font: Helvetica
//	        size: 24
//	      - rule: true
//	        x: 72
//	        y: 710
//	        x2: 300
//	        y2: 710
//
// Without the -o option the PDF is written to stdout, unless stdout is
// a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/font"
)

type docDesc struct {
	Title     string     `yaml:"title"`
	Author    string     `yaml:"author"`
	Subject   string     `yaml:"subject"`
	Keywords  string     `yaml:"keywords"`
	Paper     string     `yaml:"paper"`
	Landscape bool       `yaml:"landscape"`
	Pages     []pageDesc `yaml:"pages"`
}

type pageDesc struct {
	Outline string     `yaml:"outline"`
	Items   []itemDesc `yaml:"items"`
}

// An item is either a line of text or, if Rule is set, a straight line
// from (x, y) to (x2, y2).
type itemDesc struct {
	Text  string  `yaml:"text"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Font  string  `yaml:"font"`
	Size  float64 `yaml:"size"`
	Align string  `yaml:"align"`

	Rule bool    `yaml:"rule"`
	X2   float64 `yaml:"x2"`
	Y2   float64 `yaml:"y2"`
}

var paperSizes = map[string]canvas.PaperSize{
	"A4":     canvas.A4,
	"A5":     canvas.A5,
	"Letter": canvas.Letter,
	"Legal":  canvas.Legal,
}

func main() {
	outName := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o output.pdf] input.yaml\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	err := run(flag.Arg(0), *outName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pdfgen:", err)
		os.Exit(1)
	}
}

func run(inName, outName string) error {
	data, err := os.ReadFile(inName)
	if err != nil {
		return err
	}
	var desc docDesc
	err = yaml.Unmarshal(data, &desc)
	if err != nil {
		return fmt.Errorf("%s: %w", inName, err)
	}

	var doc *canvas.Document
	if outName != "" {
		doc, err = canvas.Create(outName)
	} else {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write PDF data to a terminal")
		}
		doc, err = canvas.New(os.Stdout)
	}
	if err != nil {
		return err
	}

	applyMeta(doc, &desc)

	paper, err := paperSize(&desc)
	if err != nil {
		return err
	}

	for i, page := range desc.Pages {
		err = doc.AddPageSized(paper, func(c *canvas.Canvas) error {
			if page.Outline != "" {
				c.AddOutline(page.Outline)
			}
			for _, item := range page.Items {
				err := drawItem(c, &item)
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
	}

	return doc.Finish()
}

func applyMeta(doc *canvas.Document, desc *docDesc) {
	if desc.Title != "" {
		doc.SetTitle(desc.Title)
	}
	if desc.Author != "" {
		doc.SetAuthor(desc.Author)
	}
	if desc.Subject != "" {
		doc.SetSubject(desc.Subject)
	}
	if desc.Keywords != "" {
		doc.SetKeywords(desc.Keywords)
	}
}

func paperSize(desc *docDesc) (canvas.PaperSize, error) {
	name := desc.Paper
	if name == "" {
		name = "A4"
	}
	paper, ok := paperSizes[name]
	if !ok {
		return canvas.PaperSize{}, fmt.Errorf("unknown paper size %q", name)
	}
	if desc.Landscape {
		paper = paper.Landscape()
	}
	return paper, nil
}

func drawItem(c *canvas.Canvas, item *itemDesc) error {
	if item.Rule {
		err := c.Line(item.X, item.Y, item.X2, item.Y2)
		if err != nil {
			return err
		}
		return c.Stroke()
	}

	f, err := lookupFont(item.Font)
	if err != nil {
		return err
	}
	size := item.Size
	if size == 0 {
		size = 12
	}
	switch item.Align {
	case "", "left":
		return c.LeftText(item.X, item.Y, f, size, item.Text)
	case "right":
		return c.RightText(item.X, item.Y, f, size, item.Text)
	case "center":
		return c.CenterText(item.X, item.Y, f, size, item.Text)
	default:
		return fmt.Errorf("unknown alignment %q", item.Align)
	}
}

func lookupFont(name string) (font.Font, error) {
	if name == "" {
		return font.Helvetica, nil
	}
	for _, f := range font.All {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown font %q", name)
}
