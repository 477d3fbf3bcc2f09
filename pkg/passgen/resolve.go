// SPDX-License-Identifier: MPL-2.0

package passgen

// resolution is the mutable working state of a single Resolve call.
type resolution struct {
	length           int
	count            int
	include          [len(classOrder)]bool
	excludeAmbiguous bool
	pronounceable    bool
	diceware         bool
	modeLocked       bool
	diceWordCount    int
	wordSeparator    string
}

// Resolve applies the precedence rules to raw and returns the resulting
// immutable GenerationSpec. The order is: baseline classes (lower, upper and
// numerals on, symbols off), disable flags, enable flags, the secure preset,
// then overrides. Diceware takes precedence over pronounceable.
//
// Resolve fails with an error wrapping ErrInvalidConfiguration when the
// result cannot generate anything: an empty alphabet, a non-positive length,
// count or diceware word count.
func Resolve(raw RequestedOptions, overrides ...Override) (GenerationSpec, error) {
	r := resolution{
		length:           raw.Length,
		count:            raw.Count,
		include:          [len(classOrder)]bool{true, true, true, false},
		excludeAmbiguous: raw.WantNoAmbiguous,
		pronounceable:    raw.WantPronounceable,
		diceware:         raw.WantDiceware,
		diceWordCount:    raw.DiceWordCount,
		wordSeparator:    raw.WordSeparator,
	}

	if raw.NoLower {
		r.include[ClassLower] = false
	}
	if raw.NoUpper {
		r.include[ClassUpper] = false
	}
	if raw.NoNumerals {
		r.include[ClassNumerals] = false
	}
	if raw.NoSymbols {
		r.include[ClassSymbols] = false
	}

	// Enable flags win over disable flags for the same class.
	if raw.WantUpper {
		r.include[ClassUpper] = true
	}
	if raw.WantNumerals {
		r.include[ClassNumerals] = true
	}
	if raw.WantSymbols {
		r.include[ClassSymbols] = true
	}

	if raw.WantSecure {
		r.applySecure()
	}

	for _, o := range overrides {
		if o != nil {
			o.apply(&r)
		}
	}

	return r.spec()
}

func (r *resolution) applySecure() {
	for _, c := range classOrder {
		r.include[c] = true
	}
	r.excludeAmbiguous = true
	if !r.modeLocked {
		r.pronounceable = false
		r.diceware = false
	}
}

func (r *resolution) mode() Mode {
	switch {
	case r.diceware:
		return ModeDiceware
	case r.pronounceable:
		return ModePronounceable
	default:
		return ModeRawConstrained
	}
}

func (r *resolution) spec() (GenerationSpec, error) {
	s := GenerationSpec{
		length:           r.length,
		count:            r.count,
		include:          r.include,
		excludeAmbiguous: r.excludeAmbiguous,
		mode:             r.mode(),
		diceWordCount:    r.diceWordCount,
		wordSeparator:    r.wordSeparator,
	}

	if s.count < 1 {
		return GenerationSpec{}, invalidConfig("count", "must be at least 1")
	}

	switch s.mode {
	case ModeDiceware:
		if s.diceWordCount < 1 {
			return GenerationSpec{}, invalidConfig("dice words", "must be at least 1")
		}
	case ModePronounceable:
		if s.length < 1 {
			return GenerationSpec{}, invalidConfig("length", "must be at least 1")
		}
	default:
		if s.length < 1 {
			return GenerationSpec{}, invalidConfig("length", "must be at least 1")
		}
		if s.Alphabet() == "" {
			return GenerationSpec{}, invalidConfig("character classes", "no characters left to draw from")
		}
	}

	return s, nil
}
