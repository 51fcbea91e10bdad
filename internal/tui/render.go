package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/models"
)

const (
	columnGap      = "  "
	minColumnWidth = 3
	ellipsis       = "…"
)

// Table is a rendered list: a header line and one line per entry, each
// prefixed with the entry's 1-based index.
type Table struct {
	Header string
	Rows   []string
}

// String joins the header and rows.
func (t Table) String() string {
	if t.Header == "" {
		return ""
	}
	return t.Header + "\n" + strings.Join(t.Rows, "\n")
}

// RenderResult renders a result as plain text: its feedback followed by
// the list it carries, if any. width <= 0 disables truncation.
func RenderResult(r command.Result, width int) string {
	var b strings.Builder
	b.WriteString(r.Feedback)
	if table := ResultTable(r, width); table.Header != "" {
		b.WriteString("\n")
		b.WriteString(table.String())
	}
	return b.String()
}

// ResultTable lays out the list carried by r. Results without a list, or
// with an empty one, yield a zero Table.
func ResultTable(r command.Result, width int) Table {
	var (
		header []string
		rows   [][]string
	)
	switch r.Kind {
	case command.KindPlayers:
		header = []string{"#", "Name", "Pos", "Age", "Team", "No.", "Country", "Salary", "G", "A", "Apps", "Health", "Tags"}
		for _, p := range r.Players {
			rows = append(rows, []string{
				p.Name().String(), p.Position().String(), p.Age().String(), p.Team().String(),
				p.Jersey().String(), p.Country().String(), p.Salary().String(),
				p.Goals().String(), p.Assists().String(), p.Appearances().String(),
				p.Health().String(), tagList(p.Tags()),
			})
		}
	case command.KindTeams:
		header = []string{"#", "Name", "Country", "Sponsor", "W", "D", "L", "Pts", "Tags"}
		for _, t := range r.Teams {
			rows = append(rows, []string{
				t.Name().String(), t.Country().String(), t.Sponsor().String(),
				t.Wins().String(), t.Draws().String(), t.Losses().String(),
				strconv.Itoa(t.Points()), tagList(t.Tags()),
			})
		}
	case command.KindMatches:
		header = []string{"#", "Date", "Home", "Away", "Tags"}
		for _, m := range r.Matches {
			rows = append(rows, []string{m.Date().String(), m.Home().String(), m.Away().String(), tagList(m.Tags())})
		}
	case command.KindFinances:
		header = []string{"#", "Team", "Income", "Payroll", "Balance"}
		for _, f := range r.Finances {
			rows = append(rows, []string{f.Team().String(), f.Income().Display(), f.Payroll().Display(), f.Balance().Display()})
		}
	case command.KindNone:
	}
	if len(rows) == 0 {
		return Table{}
	}
	for i := range rows {
		rows[i] = append([]string{strconv.Itoa(i + 1)}, rows[i]...)
	}
	return layout(header, rows, width)
}

func tagList(tags models.TagSet) string {
	return strings.Join(tags.Strings(), ", ")
}

func layout(header []string, rows [][]string, width int) Table {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], uniseg.StringWidth(cell))
		}
	}
	if width > 0 {
		shrink(widths, width)
	}

	t := Table{Header: line(header, widths)}
	for _, row := range rows {
		t.Rows = append(t.Rows, line(row, widths))
	}
	return t
}

// shrink narrows the widest columns until the row fits in width or every
// column is at its minimum.
func shrink(widths []int, width int) {
	total := len(columnGap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	for total > width {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			return
		}
		widths[widest]--
		total--
	}
}

func line(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		if uniseg.StringWidth(cell) > widths[i] {
			cell = ansi.Truncate(cell, widths[i], ellipsis)
		}
		b.WriteString(cell)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-uniseg.StringWidth(cell)))
		}
	}
	return b.String()
}
