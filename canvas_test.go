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
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/canvas/font"
)

// testCanvas returns a canvas which draws to a plain buffer, without a
// surrounding document.
func testCanvas() (*Canvas, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	page := &pageState{names: make(map[string]int)}
	return &Canvas{w: buf, page: page}, buf
}

func TestPathOperators(t *testing.T) {
	c, buf := testCanvas()

	ops := []struct {
		f    func() error
		want string
	}{
		{func() error { return c.MoveTo(10, 20) }, "10 20 m\n"},
		{func() error { return c.LineTo(70.5, 20) }, "70.5 20 l\n"},
		{func() error { return c.CurveTo(1, 2, 3, 4, 5, 6) }, "1 2 3 4 5 6 c\n"},
		{func() error { return c.Rectangle(10, 20, 100, 50) }, "10 20 100 50 re\n"},
		{func() error { return c.Line(0, 0, 10, 0) }, "0 0 m\n10 0 l\n"},
		{func() error { return c.Stroke() }, "S\n"},
		{func() error { return c.CloseAndStroke() }, "s\n"},
		{func() error { return c.Fill() }, "f\n"},
		{func() error { return c.SetLineWidth(2) }, "2 w\n"},
		{func() error { return c.SetLineCapStyle(RoundCap) }, "1 J\n"},
		{func() error { return c.SetLineJoinStyle(BevelJoin) }, "2 j\n"},
		{func() error { return c.PushGraphicsState() }, "q\n"},
		{func() error { return c.PopGraphicsState() }, "Q\n"},
	}
	for _, op := range ops {
		buf.Reset()
		err := op.f()
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != op.want {
			t.Errorf("got %q, want %q", buf.String(), op.want)
		}
	}
}

func TestCircle(t *testing.T) {
	c, buf := testCanvas()
	err := c.Circle(100, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d operators", len(lines))
	}
	if lines[0] != "100 150 m" {
		t.Errorf("wrong start %q", lines[0])
	}
	for _, line := range lines[1:] {
		if !strings.HasSuffix(line, " c") {
			t.Errorf("expected curve operator, got %q", line)
		}
	}
	// the path returns to the top of the circle
	if !strings.HasSuffix(lines[4], " 100 150 c") {
		t.Errorf("path does not close at the top: %q", lines[4])
	}
}

func TestColors(t *testing.T) {
	c, buf := testCanvas()

	cases := []struct {
		f    func() error
		want string
	}{
		{func() error { return c.SetStrokeColor(RGB(255, 0, 0)) }, "1 0 0 SC\n"},
		{func() error { return c.SetFillColor(RGB(0, 0, 255)) }, "0 0 1 sc\n"},
		{func() error { return c.SetStrokeColor(Gray(0)) }, "0 G\n"},
		{func() error { return c.SetFillColor(Gray(255)) }, "1 g\n"},
		{func() error { return c.SetFillColor(Color{}) }, "0 g\n"},
	}
	for _, test := range cases {
		buf.Reset()
		err := test.f()
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != test.want {
			t.Errorf("got %q, want %q", buf.String(), test.want)
		}
	}
}

func TestTransform(t *testing.T) {
	c, buf := testCanvas()
	err := c.Transform(matrix.Translate(10, 20))
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != "1 0 0 1 10 20 cm\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestTextObject(t *testing.T) {
	c, buf := testCanvas()
	err := c.Text(func(tx *TextObject) error {
		err := tx.SetFont(c.GetFont(font.Helvetica), 24)
		if err != nil {
			return err
		}
		err = tx.Pos(100, 700)
		if err != nil {
			return err
		}
		return tx.Show("Hello")
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n/F1 24 Tf\n100 700 Td\n(Hello) Tj\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextLines(t *testing.T) {
	c, buf := testCanvas()
	err := c.Text(func(tx *TextObject) error {
		for _, f := range []func() error{
			func() error { return tx.SetFont(c.GetFont(font.Courier), 10) },
			func() error { return tx.SetLeading(12) },
			func() error { return tx.Pos(10, 100) },
			func() error { return tx.Show("first") },
			func() error { return tx.ShowLine("second") },
		} {
			if err := f(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n/F1 10 Tf\n12 TL\n10 100 Td\n(first) Tj\n(second) '\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestTextColors(t *testing.T) {
	c, buf := testCanvas()
	err := c.Text(func(tx *TextObject) error {
		err := tx.PushGraphicsState()
		if err != nil {
			return err
		}
		err = tx.SetFillColor(RGB(0, 0, 248))
		if err != nil {
			return err
		}
		err = tx.SetStrokeColor(Gray(0))
		if err != nil {
			return err
		}
		return tx.PopGraphicsState()
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\nq\n0 0 0.9725490196078431 sc\n0 G\nQ\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestShowAdjusted(t *testing.T) {
	c, buf := testCanvas()
	err := c.Text(func(tx *TextObject) error {
		return tx.ShowAdjusted(
			TextSpan{Text: "A", Adjust: 120},
			TextSpan{Text: "W", Adjust: 0},
		)
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "BT\n[(A) 120 (W) 0] TJ\nET\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestSymbolText(t *testing.T) {
	c, buf := testCanvas()
	err := c.Text(func(tx *TextObject) error {
		err := tx.SetFont(c.GetFont(font.Symbol), 12)
		if err != nil {
			return err
		}
		return tx.Show("αβγ")
	})
	if err != nil {
		t.Fatal(err)
	}
	// greek letters map to latin character codes in the Symbol font
	if !strings.Contains(buf.String(), "(abg) Tj") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHorizontalAlignment(t *testing.T) {
	// Courier glyphs are 600/1000 of the font size wide, so "ab" at
	// size 500 is exactly 600 units wide.
	c, buf := testCanvas()
	err := c.RightText(700, 100, font.Courier, 500, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "100 100 Td") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	err = c.CenterText(700, 100, font.Courier, 500, "ab")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "400 100 Td") {
		t.Errorf("got %q", buf.String())
	}
}

func TestFontDedup(t *testing.T) {
	c, _ := testCanvas()
	r1 := c.GetFont(font.Helvetica)
	r2 := c.GetFont(font.TimesRoman)
	r3 := c.GetFont(font.Helvetica)
	if r1.String() != "/F1" || r2.String() != "/F2" || r3.String() != "/F1" {
		t.Errorf("got %s, %s, %s", r1, r2, r3)
	}
}
