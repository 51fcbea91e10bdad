package logic

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/record"
	"github.com/guilhermegouw/leaguebook/internal/storage"
)

// TestControllerSavedStateLoadsBack runs command sequences against each
// backend and checks that what was saved loads back as the live league.
func TestControllerSavedStateLoadsBack(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) storage.Storage
	}{
		{"json", func(t *testing.T) storage.Storage {
			return storage.NewJSONStore(filepath.Join(t.TempDir(), "league.json"))
		}},
		{"sqlite", func(t *testing.T) storage.Storage {
			s, err := storage.OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "league.db"))
			if err != nil {
				t.Fatalf("OpenSQLiteStore() error = %v", err)
			}
			t.Cleanup(func() { _ = storage.Close(s) })
			return s
		}},
	}

	base := []string{
		"addTeam FC_BARCELONA c/Spain s/5000",
		"addTeam PSG c/France s/3000",
		addMessi,
		"addMatch d/2024-05-01 home/FC_BARCELONA away/PSG t/Classic",
	}

	tests := []struct {
		name     string
		lines    []string
		feedback string
		check    func(t *testing.T, lg *record.League)
	}{
		{
			name:     "delete team with matches",
			lines:    slices.Concat(base, []string{"listTeam", "deleteTeam 1"}),
			feedback: command.MessageTeamHasMatches,
			check:    wantCounts(1, 2, 1),
		},
		{
			name:     "delete team after its matches",
			lines:    slices.Concat(base, []string{"listMatch", "deleteMatch 1", "listTeam", "deleteTeam 1"}),
			feedback: "Deleted Team: ",
			check:    wantCounts(1, 1, 0),
		},
		{
			name:  "rename cascades",
			lines: slices.Concat(base, []string{"listTeam", "editTeam 1 n/Barca"}),
			check: func(t *testing.T, lg *record.League) {
				t.Helper()
				if p := lg.Players()[0]; p.Team().String() != "Barca" {
					t.Errorf("player team = %s, want Barca", p.Team())
				}
				if m := lg.Matches()[0]; m.Home().String() != "Barca" {
					t.Errorf("match home = %s, want Barca", m.Home())
				}
			},
		},
		{
			name:  "transfer",
			lines: slices.Concat(base, []string{"transfer Lionel Messi tm/PSG jn/30"}),
			check: func(t *testing.T, lg *record.League) {
				t.Helper()
				if p := lg.Players()[0]; p.Team().String() != "PSG" || p.Jersey().Int() != 30 {
					t.Errorf("player not transferred: %s", p)
				}
			},
		},
		{
			name:  "edit clears tags",
			lines: slices.Concat(base, []string{"list", "edit 1 t/"}),
			check: func(t *testing.T, lg *record.League) {
				t.Helper()
				if tags := lg.Players()[0].Tags(); tags.Len() != 0 {
					t.Errorf("tags = %s, want none", tags)
				}
			},
		},
		{
			name:  "delete player",
			lines: slices.Concat(base, []string{"list", "delete 1"}),
			check: wantCounts(0, 2, 1),
		},
		{
			name:  "list finance",
			lines: slices.Concat(base, []string{"listFinance"}),
			check: func(t *testing.T, lg *record.League) {
				t.Helper()
				if n := len(lg.Finances()); n != 2 {
					t.Errorf("finances = %d, want 2", n)
				}
			},
		},
		{
			name:  "clear",
			lines: slices.Concat(base, []string{"listFinance", "clear"}),
			check: wantCounts(0, 0, 0),
		},
	}

	for _, b := range backends {
		for _, tt := range tests {
			t.Run(b.name+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()
				store := b.open(t)
				c := New(Config{Storage: store})

				var last command.Result
				for _, line := range tt.lines {
					last = execute(t, c, line)
				}
				if tt.feedback != "" && !strings.HasPrefix(last.Feedback, tt.feedback) {
					t.Errorf("last feedback = %q, want prefix %q", last.Feedback, tt.feedback)
				}

				live := c.League()
				tt.check(t, live)

				loaded, err := store.Load(ctx)
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				if !loaded.Equal(live) {
					t.Error("loaded league differs from the live league")
				}
			})
		}
	}
}

func wantCounts(players, teams, matches int) func(t *testing.T, lg *record.League) {
	return func(t *testing.T, lg *record.League) {
		t.Helper()
		p, tm, m := lg.Counts()
		if p != players || tm != teams || m != matches {
			t.Errorf("Counts() = %d, %d, %d, want %d, %d, %d", p, tm, m, players, teams, matches)
		}
	}
}
