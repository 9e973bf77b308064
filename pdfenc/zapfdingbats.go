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

// ZapfDingbats is the built-in encoding of the ZapfDingbats font.
var ZapfDingbats = builtin("ZapfDingbatsEncoding", zapfDingbatsGlyphCodes, true)

var zapfDingbatsGlyphCodes = map[string]byte{
	"space": 0o40,
	"a1":    0o41,
	"a2":    0o42,
	"a202":  0o43,
	"a3":    0o44,
	"a4":    0o45,
	"a5":    0o46,
	"a119":  0o47,
	"a118":  0o50,
	"a117":  0o51,
	"a11":   0o52,
	"a12":   0o53,
	"a13":   0o54,
	"a14":   0o55,
	"a15":   0o56,
	"a16":   0o57,
	"a105":  0o60,
	"a17":   0o61,
	"a18":   0o62,
	"a19":   0o63,
	"a20":   0o64,
	"a21":   0o65,
	"a22":   0o66,
	"a23":   0o67,
	"a24":   0o70,
	"a25":   0o71,
	"a26":   0o72,
	"a27":   0o73,
	"a28":   0o74,
	"a6":    0o75,
	"a7":    0o76,
	"a8":    0o77,
	"a9":    0o100,
	"a10":   0o101,
	"a29":   0o102,
	"a30":   0o103,
	"a31":   0o104,
	"a32":   0o105,
	"a33":   0o106,
	"a34":   0o107,
	"a35":   0o110,
	"a36":   0o111,
	"a37":   0o112,
	"a38":   0o113,
	"a39":   0o114,
	"a40":   0o115,
	"a41":   0o116,
	"a42":   0o117,
	"a43":   0o120,
	"a44":   0o121,
	"a45":   0o122,
	"a46":   0o123,
	"a47":   0o124,
	"a48":   0o125,
	"a49":   0o126,
	"a50":   0o127,
	"a51":   0o130,
	"a52":   0o131,
	"a53":   0o132,
	"a54":   0o133,
	"a55":   0o134,
	"a56":   0o135,
	"a57":   0o136,
	"a58":   0o137,
	"a59":   0o140,
	"a60":   0o141,
	"a61":   0o142,
	"a62":   0o143,
	"a63":   0o144,
	"a64":   0o145,
	"a65":   0o146,
	"a66":   0o147,
	"a67":   0o150,
	"a68":   0o151,
	"a69":   0o152,
	"a70":   0o153,
	"a71":   0o154,
	"a72":   0o155,
	"a73":   0o156,
	"a74":   0o157,
	"a203":  0o160,
	"a75":   0o161,
	"a204":  0o162,
	"a76":   0o163,
	"a77":   0o164,
	"a78":   0o165,
	"a79":   0o166,
	"a81":   0o167,
	"a82":   0o170,
	"a83":   0o171,
	"a84":   0o172,
	"a97":   0o173,
	"a98":   0o174,
	"a99":   0o175,
	"a100":  0o176,
	"a89":   0o200,
	"a90":   0o201,
	"a93":   0o202,
	"a94":   0o203,
	"a91":   0o204,
	"a92":   0o205,
	"a205":  0o206,
	"a85":   0o207,
	"a206":  0o210,
	"a86":   0o211,
	"a87":   0o212,
	"a88":   0o213,
	"a95":   0o214,
	"a96":   0o215,
	"a101":  0o241,
	"a102":  0o242,
	"a103":  0o243,
	"a104":  0o244,
	"a106":  0o245,
	"a107":  0o246,
	"a108":  0o247,
	"a112":  0o250,
	"a111":  0o251,
	"a110":  0o252,
	"a109":  0o253,
	"a120":  0o254,
	"a121":  0o255,
	"a122":  0o256,
	"a123":  0o257,
	"a124":  0o260,
	"a125":  0o261,
	"a126":  0o262,
	"a127":  0o263,
	"a128":  0o264,
	"a129":  0o265,
	"a130":  0o266,
	"a131":  0o267,
	"a132":  0o270,
	"a133":  0o271,
	"a134":  0o272,
	"a135":  0o273,
	"a136":  0o274,
	"a137":  0o275,
	"a138":  0o276,
	"a139":  0o277,
	"a140":  0o300,
	"a141":  0o301,
	"a142":  0o302,
	"a143":  0o303,
	"a144":  0o304,
	"a145":  0o305,
	"a146":  0o306,
	"a147":  0o307,
	"a148":  0o310,
	"a149":  0o311,
	"a150":  0o312,
	"a151":  0o313,
	"a152":  0o314,
	"a153":  0o315,
	"a154":  0o316,
	"a155":  0o317,
	"a156":  0o320,
	"a157":  0o321,
	"a158":  0o322,
	"a159":  0o323,
	"a160":  0o324,
	"a161":  0o325,
	"a163":  0o326,
	"a164":  0o327,
	"a196":  0o330,
	"a165":  0o331,
	"a192":  0o332,
	"a166":  0o333,
	"a167":  0o334,
	"a168":  0o335,
	"a169":  0o336,
	"a170":  0o337,
	"a171":  0o340,
	"a172":  0o341,
	"a173":  0o342,
	"a162":  0o343,
	"a174":  0o344,
	"a175":  0o345,
	"a176":  0o346,
	"a177":  0o347,
	"a178":  0o350,
	"a179":  0o351,
	"a193":  0o352,
	"a180":  0o353,
	"a199":  0o354,
	"a181":  0o355,
	"a200":  0o356,
	"a182":  0o357,
	"a201":  0o361,
	"a183":  0o362,
	"a184":  0o363,
	"a197":  0o364,
	"a185":  0o365,
	"a194":  0o366,
	"a198":  0o367,
	"a186":  0o370,
	"a195":  0o371,
	"a187":  0o372,
	"a188":  0o373,
	"a189":  0o374,
	"a190":  0o375,
	"a191":  0o376,
}
