// SPDX-License-Identifier: MPL-2.0

package passgen

const (
	// DefaultLength is the password length used when none is requested.
	DefaultLength = 12
	// DefaultCount is the number of outputs produced when none is requested.
	DefaultCount = 1
	// DefaultDiceWordCount is the number of words in a diceware passphrase.
	DefaultDiceWordCount = 6
	// DefaultWordSeparator joins diceware words.
	DefaultWordSeparator = "-"
)

type (
	// Mode selects the generation algorithm. Modes are mutually exclusive.
	Mode int

	// RequestedOptions are the raw toggles gathered by the caller. They may
	// contradict each other; Resolve applies the precedence rules.
	RequestedOptions struct {
		// Length is the number of characters (ignored in diceware mode).
		Length int
		// Count is the number of outputs to produce.
		Count int

		WantUpper         bool
		WantNumerals      bool
		WantSymbols       bool
		WantNoAmbiguous   bool
		WantPronounceable bool
		WantDiceware      bool

		NoLower    bool
		NoUpper    bool
		NoNumerals bool
		NoSymbols  bool

		// WantSecure forces every class and ambiguous exclusion.
		WantSecure bool

		// DiceWordCount is the number of words in a passphrase.
		DiceWordCount int
		// WordSeparator joins passphrase words.
		WordSeparator string
	}

	// GenerationSpec is the resolved, immutable input of a Generator. The zero
	// value is not usable; obtain one from Resolve.
	GenerationSpec struct {
		length           int
		count            int
		include          [len(classOrder)]bool
		excludeAmbiguous bool
		mode             Mode
		diceWordCount    int
		wordSeparator    string
	}
)

const (
	// ModeRawConstrained draws characters from the enabled classes.
	ModeRawConstrained Mode = iota
	// ModePronounceable alternates consonants and vowels.
	ModePronounceable
	// ModeDiceware joins words drawn from a word list.
	ModeDiceware
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeRawConstrained:
		return "raw"
	case ModePronounceable:
		return "pronounceable"
	case ModeDiceware:
		return "diceware"
	default:
		return "unknown"
	}
}

// DefaultRequestedOptions returns RequestedOptions with the documented defaults
// and no toggles set.
func DefaultRequestedOptions() RequestedOptions {
	return RequestedOptions{
		Length:        DefaultLength,
		Count:         DefaultCount,
		DiceWordCount: DefaultDiceWordCount,
		WordSeparator: DefaultWordSeparator,
	}
}

// Length returns the number of characters of character-mode outputs.
func (s GenerationSpec) Length() int { return s.length }

// Count returns the number of outputs requested.
func (s GenerationSpec) Count() int { return s.count }

// Mode returns the generation mode.
func (s GenerationSpec) Mode() Mode { return s.mode }

// IncludeLower reports whether lowercase letters are enabled.
func (s GenerationSpec) IncludeLower() bool { return s.include[ClassLower] }

// IncludeUpper reports whether uppercase letters are enabled.
func (s GenerationSpec) IncludeUpper() bool { return s.include[ClassUpper] }

// IncludeNumerals reports whether digits are enabled.
func (s GenerationSpec) IncludeNumerals() bool { return s.include[ClassNumerals] }

// IncludeSymbols reports whether symbols are enabled.
func (s GenerationSpec) IncludeSymbols() bool { return s.include[ClassSymbols] }

// Includes reports whether the given class is enabled.
func (s GenerationSpec) Includes(c Class) bool {
	if c < 0 || int(c) >= len(s.include) {
		return false
	}
	return s.include[c]
}

// ExcludeAmbiguous reports whether AmbiguousCharacters are removed.
func (s GenerationSpec) ExcludeAmbiguous() bool { return s.excludeAmbiguous }

// DiceWordCount returns the number of words of a diceware passphrase.
func (s GenerationSpec) DiceWordCount() int { return s.diceWordCount }

// WordSeparator returns the diceware word separator.
func (s GenerationSpec) WordSeparator() string { return s.wordSeparator }

// Alphabet returns the effective RawConstrained alphabet in canonical order.
func (s GenerationSpec) Alphabet() string {
	return s.charset().alphabet
}

func (s GenerationSpec) charset() charset {
	return buildCharset(s.include, s.excludeAmbiguous)
}
