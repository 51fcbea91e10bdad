package tui

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/guilhermegouw/leaguebook/internal/tui/styles"
)

// maxRenderers bounds the per-width cache; terminals rarely resize often.
const maxRenderers = 4

// MarkdownRenderer renders markdown replies such as the help text. One
// glamour renderer is kept per wrap width.
type MarkdownRenderer struct {
	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer creates an empty renderer cache.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{renderers: make(map[int]*glamour.TermRenderer)}
}

// Render renders content wrapped at width. On failure the content is
// returned unchanged together with the error.
func (m *MarkdownRenderer) Render(content string, width int) (string, error) {
	if content == "" {
		return "", nil
	}

	r, err := m.renderer(width)
	if err != nil {
		return content, err
	}
	out, err := r.Render(content)
	if err != nil {
		return content, fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func (m *MarkdownRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.renderers[width]; ok {
		return r, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(themeStyle(styles.CurrentTheme())),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.TrueColor),
	)
	if err != nil {
		return nil, fmt.Errorf("creating markdown renderer: %w", err)
	}

	if len(m.renderers) >= maxRenderers {
		clear(m.renderers)
	}
	m.renderers[width] = r
	return r, nil
}

// themeStyle adapts glamour's dark style to the theme: headings without
// the leading hashes, usage lines in the secondary color and verbs in bold
// primary.
func themeStyle(t *styles.Theme) ansi.StyleConfig {
	style := glamourstyles.DarkStyleConfig

	heading := func(b *ansi.StyleBlock, c color.Color) {
		b.Color = hex(c)
		b.Bold = ptr(true)
		b.Prefix = ""
		b.Suffix = ""
	}
	heading(&style.H1, t.Accent)
	heading(&style.H2, t.Primary)
	heading(&style.H3, t.Secondary)

	style.Code.Color = hex(t.Secondary)
	style.Strong.Color = hex(t.Primary)
	style.Strong.Bold = ptr(true)
	style.Item.BlockPrefix = "  "
	style.BlockQuote.Color = hex(t.FgMuted)

	return style
}

func hex(c color.Color) *string {
	cf, _ := colorful.MakeColor(c)
	return ptr(cf.Hex())
}

func ptr[T any](v T) *T { return &v }
