// Package catalog holds the static katakana syllabary: 104 characters
// organized into 26 ordered lesson batches. The data is seeded into the
// store once and never changes afterwards.
package catalog

import "github.com/abhisek/kanado/internal/store"

// Kind values for catalog symbols.
const (
	KindBasic   = "basic"
	KindDakuten = "dakuten"
	KindCombo   = "combo"
)

type batchDef struct {
	number      int
	name        string
	description string
	glyphs      []string
}

var batches = []batchDef{
	{1, "Vowels", "The five basic vowel sounds - foundation of katakana",
		[]string{"ア", "イ", "ウ", "エ", "オ"}},
	{2, "K Sounds", "K-row sounds (ka, ki, ku, ke, ko)",
		[]string{"カ", "キ", "ク", "ケ", "コ"}},
	{3, "S Sounds", "S-row sounds (sa, shi, su, se, so)",
		[]string{"サ", "シ", "ス", "セ", "ソ"}},
	{4, "T Sounds", "T-row sounds (ta, chi, tsu, te, to)",
		[]string{"タ", "チ", "ツ", "テ", "ト"}},
	{5, "N Sounds", "N-row sounds (na, ni, nu, ne, no)",
		[]string{"ナ", "ニ", "ヌ", "ネ", "ノ"}},
	{6, "H Sounds", "H-row sounds (ha, hi, fu, he, ho)",
		[]string{"ハ", "ヒ", "フ", "ヘ", "ホ"}},
	{7, "M Sounds", "M-row sounds (ma, mi, mu, me, mo)",
		[]string{"マ", "ミ", "ム", "メ", "モ"}},
	{8, "Y Sounds", "Y-row sounds (ya, yu, yo)",
		[]string{"ヤ", "ユ", "ヨ"}},
	{9, "R Sounds", "R-row sounds (ra, ri, ru, re, ro)",
		[]string{"ラ", "リ", "ル", "レ", "ロ"}},
	{10, "W & N Sounds", "W-row and standalone N (wa, wo, n)",
		[]string{"ワ", "ヲ", "ン"}},
	{11, "G Sounds", "Voiced K sounds with dakuten (ga, gi, gu, ge, go)",
		[]string{"ガ", "ギ", "グ", "ゲ", "ゴ"}},
	{12, "Z Sounds", "Voiced S sounds with dakuten (za, ji, zu, ze, zo)",
		[]string{"ザ", "ジ", "ズ", "ゼ", "ゾ"}},
	{13, "D Sounds", "Voiced T sounds with dakuten (da, ji, zu, de, do)",
		[]string{"ダ", "ヂ", "ヅ", "デ", "ド"}},
	{14, "B Sounds", "Voiced H sounds with dakuten (ba, bi, bu, be, bo)",
		[]string{"バ", "ビ", "ブ", "ベ", "ボ"}},
	{15, "P Sounds", "H sounds with handakuten (pa, pi, pu, pe, po)",
		[]string{"パ", "ピ", "プ", "ペ", "ポ"}},
	{16, "KY Combinations", "K + Y combinations (kya, kyu, kyo)",
		[]string{"キャ", "キュ", "キョ"}},
	{17, "SH Combinations", "SH + Y combinations (sha, shu, sho)",
		[]string{"シャ", "シュ", "ショ"}},
	{18, "CH Combinations", "CH + Y combinations (cha, chu, cho)",
		[]string{"チャ", "チュ", "チョ"}},
	{19, "NY Combinations", "N + Y combinations (nya, nyu, nyo)",
		[]string{"ニャ", "ニュ", "ニョ"}},
	{20, "HY Combinations", "H + Y combinations (hya, hyu, hyo)",
		[]string{"ヒャ", "ヒュ", "ヒョ"}},
	{21, "MY Combinations", "M + Y combinations (mya, myu, myo)",
		[]string{"ミャ", "ミュ", "ミョ"}},
	{22, "RY Combinations", "R + Y combinations (rya, ryu, ryo)",
		[]string{"リャ", "リュ", "リョ"}},
	{23, "GY Combinations", "G + Y combinations (gya, gyu, gyo)",
		[]string{"ギャ", "ギュ", "ギョ"}},
	{24, "J Combinations", "J + Y combinations (ja, ju, jo)",
		[]string{"ジャ", "ジュ", "ジョ"}},
	{25, "BY Combinations", "B + Y combinations (bya, byu, byo)",
		[]string{"ビャ", "ビュ", "ビョ"}},
	{26, "PY Combinations", "P + Y combinations (pya, pyu, pyo)",
		[]string{"ピャ", "ピュ", "ピョ"}},
}

var romaji = map[string]string{
	"ア": "a", "イ": "i", "ウ": "u", "エ": "e", "オ": "o",
	"カ": "ka", "キ": "ki", "ク": "ku", "ケ": "ke", "コ": "ko",
	"サ": "sa", "シ": "shi", "ス": "su", "セ": "se", "ソ": "so",
	"タ": "ta", "チ": "chi", "ツ": "tsu", "テ": "te", "ト": "to",
	"ナ": "na", "ニ": "ni", "ヌ": "nu", "ネ": "ne", "ノ": "no",
	"ハ": "ha", "ヒ": "hi", "フ": "fu", "ヘ": "he", "ホ": "ho",
	"マ": "ma", "ミ": "mi", "ム": "mu", "メ": "me", "モ": "mo",
	"ヤ": "ya", "ユ": "yu", "ヨ": "yo",
	"ラ": "ra", "リ": "ri", "ル": "ru", "レ": "re", "ロ": "ro",
	"ワ": "wa", "ヲ": "wo", "ン": "n",
	"ガ": "ga", "ギ": "gi", "グ": "gu", "ゲ": "ge", "ゴ": "go",
	"ザ": "za", "ジ": "ji", "ズ": "zu", "ゼ": "ze", "ゾ": "zo",
	"ダ": "da", "ヂ": "ji", "ヅ": "zu", "デ": "de", "ド": "do",
	"バ": "ba", "ビ": "bi", "ブ": "bu", "ベ": "be", "ボ": "bo",
	"パ": "pa", "ピ": "pi", "プ": "pu", "ペ": "pe", "ポ": "po",
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
}

// kindOf derives the category from the lesson batch: batches 1-10 hold
// the basic gojūon rows, 11-15 the voiced (dakuten/handakuten) rows, and
// 16-26 the yōon combinations.
func kindOf(batchNumber int) string {
	switch {
	case batchNumber <= 10:
		return KindBasic
	case batchNumber <= 15:
		return KindDakuten
	default:
		return KindCombo
	}
}

// Symbols returns the full 104-character catalog in batch order.
func Symbols() []store.SeedSymbol {
	var out []store.SeedSymbol
	for _, b := range batches {
		for _, g := range b.glyphs {
			out = append(out, store.SeedSymbol{
				Glyph:       g,
				Romaji:      romaji[g],
				Kind:        kindOf(b.number),
				BatchNumber: b.number,
			})
		}
	}
	return out
}

// Batches returns the 26 lesson batch definitions in order.
func Batches() []store.SeedBatch {
	out := make([]store.SeedBatch, len(batches))
	for i, b := range batches {
		out[i] = store.SeedBatch{
			BatchNumber: b.number,
			Name:        b.name,
			Description: b.description,
		}
	}
	return out
}
