package tui

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/record"
	"github.com/guilhermegouw/leaguebook/internal/storage"
)

func sampleLeague(t *testing.T) *record.League {
	t.Helper()
	league, err := storage.SampleLeague()
	if err != nil {
		t.Fatalf("SampleLeague() error = %v", err)
	}
	return league
}

func TestRenderResult(t *testing.T) {
	league := sampleLeague(t)
	if err := league.RefreshFinance(); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		result    command.Result
		wantLines int
		contains  []string
	}{
		{
			name:      "feedback only",
			result:    command.Message("Added the team!"),
			wantLines: 1,
			contains:  []string{"Added the team!"},
		},
		{
			name:      "empty list shows no table",
			result:    command.Result{Feedback: "No players found.", Kind: command.KindPlayers},
			wantLines: 1,
		},
		{
			name:      "players",
			result:    command.Result{Feedback: "Listed all players!", Kind: command.KindPlayers, Players: league.Players()},
			wantLines: 2 + 4,
			contains:  []string{"Name", "1  Lionel Messi", "4  Bukayo Saka", "RECOVERING", "GOAT"},
		},
		{
			name:      "teams with points",
			result:    command.Result{Kind: command.KindTeams, Teams: league.Teams()},
			wantLines: 2 + 3,
			contains:  []string{"Pts", "82", "LaLiga"},
		},
		{
			name:      "matches",
			result:    command.Result{Kind: command.KindMatches, Matches: league.Matches()},
			wantLines: 2 + 2,
			contains:  []string{"2024-03-06", "ChampionsLeague"},
		},
		{
			name:      "finances use separators",
			result:    command.Result{Kind: command.KindFinances, Finances: league.Finances()},
			wantLines: 2 + 3,
			contains:  []string{"Balance", "150,000,000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderResult(tt.result, 0)
			if n := len(strings.Split(got, "\n")); n != tt.wantLines {
				t.Errorf("got %d lines, want %d:\n%s", n, tt.wantLines, got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestResultTableFitsWidth(t *testing.T) {
	league := sampleLeague(t)
	r := command.Result{Kind: command.KindMatches, Matches: league.Matches()}

	table := ResultTable(r, 30)
	for _, l := range append([]string{table.Header}, table.Rows...) {
		if w := uniseg.StringWidth(l); w > 30 {
			t.Errorf("line %q is %d cells wide", l, w)
		}
	}
	if !strings.Contains(table.String(), ellipsis) {
		t.Errorf("expected truncated cells:\n%s", table)
	}

	t.Run("columns stop at their minimum", func(t *testing.T) {
		table := ResultTable(r, 1)
		if len(table.Rows) != 2 {
			t.Fatalf("got %d rows", len(table.Rows))
		}
	})
}

func TestShrink(t *testing.T) {
	widths := []int{1, 10, 4}
	shrink(widths, 13)
	if widths[0] != 1 || widths[1] != 4 || widths[2] != 4 {
		t.Errorf("shrink() = %v", widths)
	}
}
