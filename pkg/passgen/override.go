// SPDX-License-Identifier: MPL-2.0

package passgen

type (
	// Override is one answer of the interactive question flow. Overrides are
	// applied by Resolve after every flag, in order, so later overrides win.
	Override interface {
		apply(r *resolution)
	}

	// SetMode selects the generation mode. An interactively chosen mode is
	// final: a later ApplySecure does not reset it.
	SetMode struct{ Mode Mode }

	// SetLength sets the number of characters.
	SetLength struct{ Length int }

	// SetCount sets the number of outputs.
	SetCount struct{ Count int }

	// SetDiceWords sets the number of passphrase words.
	SetDiceWords struct{ Count int }

	// SetWordSeparator sets the passphrase word separator.
	SetWordSeparator struct{ Separator string }

	// SetClass enables or disables one character class.
	SetClass struct {
		Class   Class
		Enabled bool
	}

	// SetExcludeAmbiguous toggles removal of AmbiguousCharacters.
	SetExcludeAmbiguous struct{ Exclude bool }

	// ApplySecure reapplies the secure preset.
	ApplySecure struct{}
)

func (o SetMode) apply(r *resolution) {
	r.pronounceable = o.Mode == ModePronounceable
	r.diceware = o.Mode == ModeDiceware
	r.modeLocked = true
}

func (o SetLength) apply(r *resolution) { r.length = o.Length }

func (o SetCount) apply(r *resolution) { r.count = o.Count }

func (o SetDiceWords) apply(r *resolution) { r.diceWordCount = o.Count }

func (o SetWordSeparator) apply(r *resolution) { r.wordSeparator = o.Separator }

func (o SetClass) apply(r *resolution) {
	if o.Class < 0 || int(o.Class) >= len(r.include) {
		return
	}
	r.include[o.Class] = o.Enabled
}

func (o SetExcludeAmbiguous) apply(r *resolution) { r.excludeAmbiguous = o.Exclude }

func (ApplySecure) apply(r *resolution) { r.applySecure() }
