// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func stubRender(t *testing.T) {
	t.Helper()

	original := render
	t.Cleanup(func() { render = original })
	render = func(in string, _ string) (string, error) { return in, nil }
}

func TestGet(t *testing.T) {
	tests := []struct {
		id       Id
		contains string
	}{
		{InvalidConfigurationId, "cannot produce a password"},
		{GenerationFailedId, "generation failed"},
		{WordListNotFoundId, "Word list not found"},
		{WordListInvalidId, "could not be parsed"},
		{ConfigLoadFailedId, "Configuration could not be loaded"},
		{InteractiveAbortedId, "Interactive session aborted"},
	}

	for _, tt := range tests {
		got := Get(tt.id)
		if got == nil {
			t.Errorf("Get(%d) returned nil", tt.id)
			continue
		}
		if got.Id() != tt.id {
			t.Errorf("Get(%d).Id() = %d", tt.id, got.Id())
		}
		if !strings.Contains(string(got.MarkdownMsg()), tt.contains) {
			t.Errorf("issue %d should mention %q", tt.id, tt.contains)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get() should return nil for unknown ids")
	}
}

func TestValues_SortedAndComplete(t *testing.T) {
	values := Values()
	if len(values) != int(InteractiveAbortedId) {
		t.Fatalf("Values() returned %d issues, want %d", len(values), InteractiveAbortedId)
	}
	for i, v := range values {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
	}
}

func TestIssue_LinksAreCloned(t *testing.T) {
	iss := Get(WordListNotFoundId)
	links := iss.ExtLinks()
	if len(links) == 0 {
		t.Fatal("expected external links")
	}
	links[0] = "https://example.com"
	if iss.ExtLinks()[0] == "https://example.com" {
		t.Error("ExtLinks() should return a clone")
	}
}

func TestIssue_Render_WithLinks(t *testing.T) {
	stubRender(t)

	out, err := Get(WordListInvalidId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "## See also") {
		t.Error("rendered output should have a See also section")
	}
	if !strings.Contains(out, "<https://www.eff.org/dice>") {
		t.Errorf("rendered output should list the link, got:\n%s", out)
	}
}

func TestIssue_Render_NoLinks(t *testing.T) {
	stubRender(t)

	out, err := Get(GenerationFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(out, "See also") {
		t.Error("issue without links should not render a See also section")
	}
}

func TestAllIssuesRenderWithGlamour(t *testing.T) {
	for _, iss := range Values() {
		out, err := iss.Render("notty")
		if err != nil {
			t.Errorf("issue %d failed to render: %v", iss.Id(), err)
		}
		if strings.TrimSpace(out) == "" {
			t.Errorf("issue %d rendered to empty string", iss.Id())
		}
	}
}
