// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

// Id identifies a catalog entry.
type Id int

const (
	InvalidConfigurationId Id = iota + 1
	GenerationFailedId
	WordListNotFoundId
	WordListInvalidId
	ConfigLoadFailedId
	InteractiveAbortedId
)

type MarkdownMsg string

type HttpLink string

// Issue is a Markdown help page shown when a command fails in a known way.
type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render returns the issue as terminal-styled Markdown. stylePath is a glamour
// style name ("auto", "dark", "light", "notty") or a path to a JSON style.
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	invalidConfigurationIssue = &Issue{
		id: InvalidConfigurationId,
		mdMsg: `
# The requested options cannot produce a password

After applying every flag and answer, the generator settings were unusable.

## Common causes
- Length, count or dice word count below 1
- Every character class disabled (` + "`-A -N -L`" + ` without ` + "`-y`" + `)

## Things you can try
- Re-enable a class, for example drop ` + "`-L`" + ` or add ` + "`-y`" + `
- Run ` + "`pwgen --man`" + ` to see how the options interact`,
	}

	generationFailedIssue = &Issue{
		id: GenerationFailedId,
		mdMsg: `
# Password generation failed

The generator could not draw from the configured source.

## Things you can try
- Retry without ` + "`--seed`" + ` to use the system random source
- For diceware, check that the word list is not empty`,
	}

	wordListNotFoundIssue = &Issue{
		id: WordListNotFoundId,
		mdMsg: `
# Word list not found

The file given with ` + "`--wordlist`" + ` or ` + "`generator.wordlist`" + ` does not exist.

## Things you can try
- Check the path for typos
- Omit the option to use the built-in list`,
		extLinks: []HttpLink{"https://www.eff.org/dice"},
	}

	wordListInvalidIssue = &Issue{
		id: WordListInvalidId,
		mdMsg: `
# Word list could not be parsed

Word lists hold one word per line. Lines may start with a dice roll
(` + "`11111 abacus`" + `) as in the EFF lists. Lines starting with ` + "`#`" + ` are ignored.

## Things you can try
- Remove words containing spaces or control characters
- Make sure the file is UTF-8 text`,
		extLinks: []HttpLink{"https://www.eff.org/dice"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded

## Things you can try
- Run ` + "`pwgen config path`" + ` to see which file is read
- Run ` + "`pwgen config dump`" + ` for a valid starting point
- Check ` + "`PWGEN_*`" + ` environment variables`,
	}

	interactiveAbortedIssue = &Issue{
		id: InteractiveAbortedId,
		mdMsg: `
# Interactive session aborted

The prompts were closed before every question was answered, so nothing was generated.

## Things you can try
- Pass options as flags instead of using ` + "`-i`" + `
- Run in a terminal that supports interactive input`,
	}

	issues = map[Id]*Issue{
		invalidConfigurationIssue.Id(): invalidConfigurationIssue,
		generationFailedIssue.Id():     generationFailedIssue,
		wordListNotFoundIssue.Id():     wordListNotFoundIssue,
		wordListInvalidIssue.Id():      wordListInvalidIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		interactiveAbortedIssue.Id():   interactiveAbortedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	values := slices.Collect(maps.Values(issues))
	slices.SortFunc(values, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return values
}

// Get returns the issue with the given id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
