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

package pdfenc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodingNames(t *testing.T) {
	if WinAnsi.Name() != "WinAnsiEncoding" {
		t.Errorf("wrong name %q", WinAnsi.Name())
	}
	if Symbol.Name() != "SymbolEncoding" {
		t.Errorf("wrong name %q", Symbol.Name())
	}
	if ZapfDingbats.Name() != "ZapfDingbatsEncoding" {
		t.Errorf("wrong name %q", ZapfDingbats.Name())
	}
}

func TestWinAnsiGetCode(t *testing.T) {
	cases := []struct {
		glyph string
		code  byte
		ok    bool
	}{
		{"space", 32, true},
		{"A", 65, true},
		{"Z", 90, true},
		{"a", 97, true},
		{"z", 122, true},
		{"ampersand", 38, true},
		{"aring", 229, true},
		{"Euro", 128, true},
		{"Lslash", 0, false},
		{"", 0, false},
		{"☺", 0, false},
	}
	for _, test := range cases {
		code, ok := WinAnsi.GetCode(test.glyph)
		if ok != test.ok || code != test.code {
			t.Errorf("GetCode(%q) = %d, %t, want %d, %t",
				test.glyph, code, ok, test.code, test.ok)
		}
	}
}

func TestWinAnsiEncode(t *testing.T) {
	cases := []struct {
		text string
		want []byte
	}{
		{"ABC", []byte{65, 66, 67}},
		{"Räksmörgås", []byte{82, 228, 107, 115, 109, 246, 114, 103, 229, 115}},
		{"Coffee €1.20", []byte{67, 111, 102, 102, 101, 101, 32, 128, 49, 46, 50, 48}},
		{"“quoted”", []byte{147, 113, 117, 111, 116, 101, 100, 148}},
		{"x₂", []byte{120, '?'}},
	}
	for _, test := range cases {
		got := WinAnsi.Encode(test.text)
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("Encode(%q) mismatch (-want +got):\n%s", test.text, d)
		}
	}
}

func TestSymbolEncode(t *testing.T) {
	got := Symbol.Encode("α ∈ ℜ")
	want := []byte{97, 32, 206, 32, 194}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", d)
	}

	// The copyright sign exists twice in the Symbol font.  The serif
	// variant is used.
	if got := Symbol.Encode("©"); got[0] != 0o323 {
		t.Errorf("copyright encoded as %o", got[0])
	}
	if got := Symbol.Encode("™"); got[0] != 0o324 {
		t.Errorf("trademark encoded as %o", got[0])
	}

	// greek letters with glyph names which the Adobe glyph list maps
	// to compatibility code points
	got = Symbol.Encode("ΔΩμ")
	want = []byte{0o104, 0o127, 0o155}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", d)
	}
}

func TestSymbolGetCode(t *testing.T) {
	cases := []struct {
		glyph string
		code  byte
		ok    bool
	}{
		{"Alpha", 0o101, true},
		{"alpha", 0o141, true},
		{"aleph", 0o300, true},
		{"space", 0o40, true},
		{"infinity", 0o245, true},
		{"bar", 0o174, true},
		{"A", 0, false},
	}
	for _, test := range cases {
		code, ok := Symbol.GetCode(test.glyph)
		if ok != test.ok || code != test.code {
			t.Errorf("GetCode(%q) = %o, %t, want %o, %t",
				test.glyph, code, ok, test.code, test.ok)
		}
	}
}

func TestZapfDingbats(t *testing.T) {
	code, ok := ZapfDingbats.GetCode("a1")
	if !ok || code != 0o41 {
		t.Errorf("GetCode(a1) = %o, %t", code, ok)
	}
	code, ok = ZapfDingbats.GetCode("a191")
	if !ok || code != 0o376 {
		t.Errorf("GetCode(a191) = %o, %t", code, ok)
	}

	got := ZapfDingbats.Encode("✁✂")
	want := []byte{0o41, 0o42}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", d)
	}
}

func TestCanEncode(t *testing.T) {
	if !WinAnsi.CanEncode("Grønn résumé") {
		t.Error("CanEncode returned false")
	}
	if WinAnsi.CanEncode("Ελληνικά") {
		t.Error("CanEncode returned true")
	}
	if !Symbol.CanEncode("αβγ") {
		t.Error("CanEncode returned false for greek")
	}
}
