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

//go:build ignore

// This program regenerates the width tables in widths.go from the AFM
// files of the Adobe core fonts:
//
//	go run gen.go /path/to/afm/dir > widths.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"seehuhn.de/go/postscript/afm"

	"seehuhn.de/go/canvas/pdfenc"
)

var tables = []struct {
	varName string
	afmFile string
	enc     *pdfenc.Encoding
}{
	{"courierWidths", "Courier.afm", pdfenc.WinAnsi},
	{"helveticaWidths", "Helvetica.afm", pdfenc.WinAnsi},
	{"helveticaBoldWidths", "Helvetica-Bold.afm", pdfenc.WinAnsi},
	{"timesRomanWidths", "Times-Roman.afm", pdfenc.WinAnsi},
	{"timesBoldWidths", "Times-Bold.afm", pdfenc.WinAnsi},
	{"timesItalicWidths", "Times-Italic.afm", pdfenc.WinAnsi},
	{"timesBoldItalicWidths", "Times-BoldItalic.afm", pdfenc.WinAnsi},
	{"symbolWidths", "Symbol.afm", pdfenc.Symbol},
	{"zapfDingbatsWidths", "ZapfDingbats.afm", pdfenc.ZapfDingbats},
}

func main() {
	log.SetFlags(0)
	if len(os.Args) != 2 {
		log.Fatal("usage: go run gen.go <afm dir>")
	}
	dir := os.Args[1]

	fmt.Println("// Code generated by gen.go from the Adobe core font metrics.  DO NOT EDIT.")
	fmt.Println()
	fmt.Println("package font")

	for _, table := range tables {
		fd, err := os.Open(filepath.Join(dir, table.afmFile))
		if err != nil {
			log.Fatal(err)
		}
		info, err := afm.Read(fd)
		fd.Close()
		if err != nil {
			log.Fatal(err)
		}

		var ww [256]int
		for name, glyph := range info.Glyphs {
			if code, ok := table.enc.GetCode(name); ok {
				ww[code] = int(glyph.WidthX)
			}
		}

		fmt.Println()
		fmt.Printf("var %s = [256]uint16{\n", table.varName)
		for row := 32; row < 256; row += 8 {
			fmt.Print("\t")
			if row == 32 {
				fmt.Print("32: ")
			}
			for col := 0; col < 8; col++ {
				fmt.Printf("%d, ", ww[row+col])
			}
			fmt.Println()
		}
		fmt.Println("}")
	}
}
