// SPDX-License-Identifier: MPL-2.0

package passgen

import (
	"bytes"
	"strings"

	"pwgen-cli/pkg/wordlist"
)

// repairOrder lists the classes whose presence the repair pass enforces.
// Lowercase is deliberately absent.
var repairOrder = [...]Class{ClassUpper, ClassNumerals, ClassSymbols}

// Generator produces outputs for resolved GenerationSpecs. It holds the
// diceware word list and is safe for concurrent use as long as each caller
// brings its own RandomSource (or a Locked one).
type Generator struct {
	words wordlist.List
}

// NewGenerator creates a Generator drawing diceware words from words.
// An empty list is accepted; diceware generation then fails.
func NewGenerator(words wordlist.List) *Generator {
	return &Generator{words: words}
}

// Words returns the word list the Generator draws from.
func (g *Generator) Words() wordlist.List {
	return g.words
}

// GenerateOne produces a single output for spec.
func (g *Generator) GenerateOne(spec GenerationSpec, rng RandomSource) (string, error) {
	if rng == nil {
		return "", &GenerationError{Mode: spec.mode, Reason: "no random source"}
	}

	switch spec.mode {
	case ModeDiceware:
		return g.diceware(spec, rng)
	case ModePronounceable:
		if spec.length < 1 {
			return "", &GenerationError{Mode: spec.mode, Reason: "length must be at least 1"}
		}
		return pronounceable(spec.length, rng), nil
	default:
		return constrained(spec, rng)
	}
}

// GenerateMany calls GenerateOne count times. Outputs are independent draws,
// duplicates included. Either every output is returned or none is.
func (g *Generator) GenerateMany(spec GenerationSpec, count int, rng RandomSource) ([]string, error) {
	if count < 1 {
		return nil, &GenerationError{Mode: spec.mode, Reason: "count must be at least 1"}
	}

	out := make([]string, 0, count)
	for range count {
		s, err := g.GenerateOne(spec, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// constrained draws spec.length characters from the effective alphabet, then
// overwrites the last character once per missing class. A later repair may
// undo an earlier one on very short outputs.
func constrained(spec GenerationSpec, rng RandomSource) (string, error) {
	cs := spec.charset()
	if cs.alphabet == "" {
		return "", &GenerationError{Mode: spec.mode, Reason: "empty alphabet"}
	}
	if spec.length < 1 {
		return "", &GenerationError{Mode: spec.mode, Reason: "length must be at least 1"}
	}

	buf := make([]byte, spec.length)
	for i := range buf {
		buf[i] = cs.alphabet[rng.IntN(len(cs.alphabet))]
	}

	last := len(buf) - 1
	for _, c := range repairOrder {
		set := cs.classes[c]
		if !spec.include[c] || set == "" {
			continue
		}
		if !bytes.ContainsAny(buf, set) {
			buf[last] = set[rng.IntN(len(set))]
		}
	}

	return string(buf), nil
}

// pronounceable alternates consonants (even indices) and vowels (odd indices).
func pronounceable(length int, rng RandomSource) string {
	buf := make([]byte, length)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = consonants[rng.IntN(len(consonants))]
		} else {
			buf[i] = vowels[rng.IntN(len(vowels))]
		}
	}
	return string(buf)
}

func (g *Generator) diceware(spec GenerationSpec, rng RandomSource) (string, error) {
	n := g.words.Len()
	if n == 0 {
		return "", &GenerationError{Mode: spec.mode, Reason: "word list is empty"}
	}
	if spec.diceWordCount < 1 {
		return "", &GenerationError{Mode: spec.mode, Reason: "word count must be at least 1"}
	}

	var sb strings.Builder
	for i := range spec.diceWordCount {
		if i > 0 {
			sb.WriteString(spec.wordSeparator)
		}
		sb.WriteString(g.words.Word(rng.IntN(n)))
	}
	return sb.String(), nil
}
