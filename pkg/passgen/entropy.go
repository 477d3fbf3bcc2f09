// SPDX-License-Identifier: MPL-2.0

package passgen

import "math"

// Entropy estimates the strength of one output of spec in bits, assuming a
// uniform RandomSource. wordListSize is only used in diceware mode. The repair
// pass is ignored, so the estimate is slightly optimistic for constrained
// outputs.
func Entropy(spec GenerationSpec, wordListSize int) float64 {
	switch spec.mode {
	case ModeDiceware:
		if wordListSize < 1 {
			return 0
		}
		return float64(spec.diceWordCount) * math.Log2(float64(wordListSize))
	case ModePronounceable:
		even := (spec.length + 1) / 2
		odd := spec.length / 2
		return float64(even)*math.Log2(float64(len(consonants))) + float64(odd)*math.Log2(float64(len(vowels)))
	default:
		size := len(spec.Alphabet())
		if size == 0 {
			return 0
		}
		return float64(spec.length) * math.Log2(float64(size))
	}
}
