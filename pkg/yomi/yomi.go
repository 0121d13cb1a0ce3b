// Package yomi holds the fixed index of reading prefixes used to bucket
// surnames on the source site.
//
// Each of the 63 known kana symbols maps to a two-digit ordinal used for
// output file naming and ordering. The ordinals run "01" through "64" with a
// single gap at "56": the source site lists no surnames whose reading starts
// with ぢ, so that slot is absent from the table while the numbering of the
// remaining symbols is preserved.
package yomi

import "namedic/pkg/errors"

type prefixEntry struct {
	Symbol  string
	Ordinal string
}

// The enumeration order is the canonical listing order of the source site:
// the plain gojūon rows first, then the voiced rows.
var prefixTable = []prefixEntry{
	{"あ", "01"}, {"い", "02"}, {"う", "03"}, {"え", "04"}, {"お", "05"},
	{"か", "06"}, {"き", "07"}, {"く", "08"}, {"け", "09"}, {"こ", "10"},
	{"さ", "11"}, {"し", "12"}, {"す", "13"}, {"せ", "14"}, {"そ", "15"},
	{"た", "16"}, {"ち", "17"}, {"つ", "18"}, {"て", "19"}, {"と", "20"},
	{"な", "21"}, {"に", "22"}, {"ぬ", "23"}, {"ね", "24"}, {"の", "25"},
	{"は", "26"}, {"ひ", "27"}, {"ふ", "28"}, {"へ", "29"}, {"ほ", "30"},
	{"ま", "31"}, {"み", "32"}, {"む", "33"}, {"め", "34"}, {"も", "35"},
	{"や", "36"}, {"ゆ", "37"}, {"よ", "38"},
	{"ら", "39"}, {"り", "40"}, {"る", "41"}, {"れ", "42"}, {"ろ", "43"},
	{"わ", "44"},
	{"が", "45"}, {"ぎ", "46"}, {"ぐ", "47"}, {"げ", "48"}, {"ご", "49"},
	{"ざ", "50"}, {"じ", "51"}, {"ず", "52"}, {"ぜ", "53"}, {"ぞ", "54"},
	{"だ", "55"}, {"づ", "57"}, {"で", "58"}, {"ど", "59"},
	{"ば", "60"}, {"び", "61"}, {"ぶ", "62"}, {"べ", "63"}, {"ぼ", "64"},
}

var ordinals = buildOrdinalMap()

func buildOrdinalMap() map[string]string {
	m := make(map[string]string, len(prefixTable))
	for _, e := range prefixTable {
		m[e.Symbol] = e.Ordinal
	}
	return m
}

// Lookup resolves a prefix symbol to its two-digit ordinal. Symbols outside
// the fixed set fail with an unknown-prefix error.
func Lookup(symbol string) (string, error) {
	ordinal, ok := ordinals[symbol]
	if !ok {
		return "", errors.New(errors.ErrorTypeUnknownPrefix, "prefix %q is not in the known symbol set", symbol)
	}
	return ordinal, nil
}

// IsKnown reports whether symbol is one of the 63 registered prefixes.
func IsKnown(symbol string) bool {
	_, ok := ordinals[symbol]
	return ok
}

// All returns the 63 prefix symbols in enumeration order.
func All() []string {
	symbols := make([]string, len(prefixTable))
	for i, e := range prefixTable {
		symbols[i] = e.Symbol
	}
	return symbols
}

// Count returns the number of registered prefixes.
func Count() int {
	return len(prefixTable)
}
