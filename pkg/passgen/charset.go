// SPDX-License-Identifier: MPL-2.0

package passgen

import "strings"

const (
	// SymbolAlphabet is the fixed set of symbols used by the symbols class.
	SymbolAlphabet = "!@#$%^&*()-_=+[]{};:,.?/"
	// AmbiguousCharacters are glyphs easily confused with one another.
	AmbiguousCharacters = "Il1O0"

	lowerAlphabet   = "abcdefghijklmnopqrstuvwxyz"
	upperAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numeralAlphabet = "0123456789"

	vowels     = "aeiou"
	consonants = "bcdfghjklmnpqrstvwxyz"
)

// Class identifies one character class.
type Class int

const (
	// ClassLower is the lowercase ASCII letters.
	ClassLower Class = iota
	// ClassUpper is the uppercase ASCII letters.
	ClassUpper
	// ClassNumerals is the decimal digits.
	ClassNumerals
	// ClassSymbols is SymbolAlphabet.
	ClassSymbols
)

// classOrder is the canonical concatenation order of the alphabet.
var classOrder = [...]Class{ClassLower, ClassUpper, ClassNumerals, ClassSymbols}

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassNumerals:
		return "numerals"
	case ClassSymbols:
		return "symbols"
	default:
		return "unknown"
	}
}

func (c Class) characters() string {
	switch c {
	case ClassLower:
		return lowerAlphabet
	case ClassUpper:
		return upperAlphabet
	case ClassNumerals:
		return numeralAlphabet
	case ClassSymbols:
		return SymbolAlphabet
	default:
		return ""
	}
}

// charset is the effective alphabet of a RawConstrained spec together with
// each enabled class's own character set, all filtered the same way.
type charset struct {
	alphabet string
	classes  [len(classOrder)]string
}

func buildCharset(enabled [len(classOrder)]bool, excludeAmbiguous bool) charset {
	var cs charset
	var sb strings.Builder
	for _, c := range classOrder {
		if !enabled[c] {
			continue
		}
		chars := c.characters()
		if excludeAmbiguous {
			chars = stripAmbiguous(chars)
		}
		cs.classes[c] = chars
		sb.WriteString(chars)
	}
	cs.alphabet = sb.String()
	return cs
}

func stripAmbiguous(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(AmbiguousCharacters, r) {
			return -1
		}
		return r
	}, s)
}
