// SPDX-License-Identifier: MPL-2.0

// Package wordlist loads and validates diceware word lists.
//
// Two file formats are accepted, line by line: a bare word, or an EFF style
// dice roll followed by the word ("11111	abacus"). Blank lines and lines
// starting with '#' are skipped. Words are normalized to Unicode NFC so that
// lists written with decomposed accents ("forêt") match composed ones.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrEmpty is returned when a list contains no words.
	ErrEmpty = errors.New("word list is empty")

	// ErrInvalidWord is the sentinel error wrapped by InvalidWordError.
	ErrInvalidWord = errors.New("invalid word")

	//go:embed default.txt
	defaultSource string

	defaultList = sync.OnceValue(func() List {
		l, err := Parse(strings.NewReader(defaultSource))
		if err != nil {
			panic("wordlist: embedded default list is invalid: " + err.Error())
		}
		return l
	})
)

type (
	// List is an ordered, read-only sequence of unique words. The zero value
	// is an empty list.
	List struct {
		words []string
	}

	// InvalidWordError reports a word that cannot be used in a passphrase.
	InvalidWordError struct {
		// Line is the 1-based line number, or 0 when the word did not come from a file.
		Line   int
		Word   string
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidWordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid word %q: %s", e.Line, e.Word, e.Reason)
	}
	return fmt.Sprintf("invalid word %q: %s", e.Word, e.Reason)
}

// Unwrap returns ErrInvalidWord for errors.Is() compatibility.
func (e *InvalidWordError) Unwrap() error { return ErrInvalidWord }

// Default returns the embedded word list.
func Default() List {
	return defaultList()
}

// New builds a List from words. Words are NFC-normalized and duplicates
// after normalization are dropped, keeping the first occurrence.
func New(words []string) (List, error) {
	b := newBuilder(len(words))
	for _, w := range words {
		if err := b.add(w, 0); err != nil {
			return List{}, err
		}
	}
	return b.list()
}

// Parse reads a word list from r.
func Parse(r io.Reader) (List, error) {
	b := newBuilder(0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		var word string
		switch {
		case len(fields) == 1:
			word = fields[0]
		case len(fields) == 2 && isDiceRoll(fields[0]):
			word = fields[1]
		default:
			return List{}, &InvalidWordError{Line: line, Word: text, Reason: "contains whitespace"}
		}

		if err := b.add(word, line); err != nil {
			return List{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return List{}, fmt.Errorf("failed to read word list: %w", err)
	}
	return b.list()
}

// Load reads a word list file.
func Load(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return List{}, err
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return List{}, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Len returns the number of words.
func (l List) Len() int { return len(l.words) }

// Word returns the i-th word. It panics if i is out of range.
func (l List) Word(i int) string { return l.words[i] }

// Words returns a copy of the words.
func (l List) Words() []string { return slices.Clone(l.words) }

// Contains reports whether w (after NFC normalization) is in the list.
func (l List) Contains(w string) bool {
	return slices.Contains(l.words, norm.NFC.String(w))
}

// WordsContaining returns the words that contain sub. Such words make a
// passphrase joined with sub ambiguous to split back into words.
func (l List) WordsContaining(sub string) []string {
	if sub == "" {
		return nil
	}
	var out []string
	for _, w := range l.words {
		if strings.Contains(w, sub) {
			out = append(out, w)
		}
	}
	return out
}

type builder struct {
	words []string
	seen  map[string]struct{}
}

func newBuilder(capacity int) *builder {
	return &builder{
		words: make([]string, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

func (b *builder) add(raw string, line int) error {
	w := norm.NFC.String(raw)
	if err := validateWord(w); err != nil {
		return &InvalidWordError{Line: line, Word: raw, Reason: err.Error()}
	}
	if _, dup := b.seen[w]; dup {
		return nil
	}
	b.seen[w] = struct{}{}
	b.words = append(b.words, w)
	return nil
}

func (b *builder) list() (List, error) {
	if len(b.words) == 0 {
		return List{}, ErrEmpty
	}
	return List{words: b.words}, nil
}

func validateWord(w string) error {
	if w == "" {
		return errors.New("empty")
	}
	// Invalid bytes decode as U+FFFD, which IsPrint accepts.
	if !utf8.ValidString(w) {
		return errors.New("invalid UTF-8")
	}
	for _, r := range w {
		if unicode.IsSpace(r) {
			return errors.New("contains whitespace")
		}
		if !unicode.IsPrint(r) {
			return errors.New("contains non-printable characters")
		}
	}
	return nil
}

func isDiceRoll(s string) bool {
	for _, r := range s {
		if r < '1' || r > '6' {
			return false
		}
	}
	return s != ""
}
