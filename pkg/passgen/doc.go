// SPDX-License-Identifier: MPL-2.0

// Package passgen resolves password generation options and generates passwords.
//
// Generation is a two step process. Resolve turns possibly conflicting
// RequestedOptions (enable flags, disable flags, the secure preset and an
// ordered list of interactive Overrides) into an immutable GenerationSpec.
// A Generator then consumes the spec and produces constrained random strings,
// pronounceable strings or diceware passphrases.
//
// The package performs no I/O and never logs. Randomness is injected through
// the RandomSource interface so callers decide between a crypto-backed source
// (NewCryptoSource), a reproducible one (NewSeededSource) or their own.
package passgen
