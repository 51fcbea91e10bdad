package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/tui/styles"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	r := NewMarkdownRenderer()

	tests := []struct {
		name     string
		content  string
		width    int
		contains []string
	}{
		{name: "empty content", content: "", width: 80},
		{name: "plain text", content: "Added the team!", width: 80, contains: []string{"Added the team!"}},
		{name: "header without prefix", content: "# League commands", width: 80, contains: []string{"League commands"}},
		{name: "inline code", content: "use `deleteTeam INDEX`", width: 80, contains: []string{"deleteTeam INDEX"}},
		{name: "help text", content: command.HelpMarkdown(), width: 100, contains: []string{"Players", "addPlayer", "exit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.content, tt.width)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			plain := ansi.Strip(got)
			for _, want := range tt.contains {
				if !strings.Contains(plain, want) {
					t.Errorf("Render() output missing %q:\n%s", want, plain)
				}
			}
			if strings.Contains(plain, "# League") {
				t.Error("header prefix should be removed")
			}
		})
	}
}

func TestMarkdownRenderer_Cache(t *testing.T) {
	r := NewMarkdownRenderer()

	if _, err := r.Render("one", 40); err != nil {
		t.Fatal(err)
	}
	first := r.renderers[40]
	if _, err := r.Render("two", 40); err != nil {
		t.Fatal(err)
	}
	if r.renderers[40] != first {
		t.Error("renderer should be reused for the same width")
	}

	for w := 41; w < 41+maxRenderers; w++ {
		if _, err := r.Render("wide", w); err != nil {
			t.Fatal(err)
		}
	}
	if len(r.renderers) > maxRenderers {
		t.Errorf("cache holds %d renderers, want at most %d", len(r.renderers), maxRenderers)
	}
}

func TestThemeStyle(t *testing.T) {
	theme := styles.NewDefaultTheme()
	style := themeStyle(theme)

	if style.H1.Prefix != "" || style.H2.Prefix != "" {
		t.Error("heading prefixes should be removed")
	}
	if style.H2.Color == nil || *style.H2.Color != "#7bc96f" {
		t.Errorf("H2 color = %v, want the primary color", style.H2.Color)
	}
}
