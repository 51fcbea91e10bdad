// Package export writes league collections as CSV tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

// Kind names an exportable collection.
type Kind string

// Exportable kinds.
const (
	Players  Kind = "players"
	Teams    Kind = "teams"
	Matches  Kind = "matches"
	Finances Kind = "finances"
)

// Kinds lists every exportable kind.
var Kinds = []Kind{Players, Teams, Matches, Finances}

// ParseKind accepts a kind name, ignoring case.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	if !slices.Contains(Kinds, k) {
		return "", fmt.Errorf("unknown export kind %q (want one of players, teams, matches, finances)", raw)
	}
	return k, nil
}

// Write writes one header row and then one row per entity, in collection
// order. It reads from a snapshot, so league may change afterwards.
func Write(w io.Writer, kind Kind, league *record.League) error {
	snapshot := league.Clone()

	var rows [][]string
	switch kind {
	case Players:
		rows = playerRows(snapshot.Players())
	case Teams:
		rows = teamRows(snapshot.Teams())
	case Matches:
		rows = matchRows(snapshot.Matches())
	case Finances:
		if err := snapshot.RefreshFinance(); err != nil {
			return fmt.Errorf("computing finances: %w", err)
		}
		rows = financeRows(snapshot.Finances())
	default:
		return fmt.Errorf("unknown export kind %q", kind)
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", kind, err)
	}
	return nil
}

func tags(s models.TagSet) string {
	return strings.Join(s.Strings(), ";")
}

func playerRows(players []models.Player) [][]string {
	rows := [][]string{{
		"name", "position", "age", "salary", "goals_scored", "goals_assisted",
		"team", "country", "jersey_number", "appearances", "health_status", "tags",
	}}
	for _, p := range players {
		rows = append(rows, []string{
			p.Name().String(), p.Position().String(), p.Age().String(), p.Salary().String(),
			p.Goals().String(), p.Assists().String(), p.Team().String(), p.Country().String(),
			p.Jersey().String(), p.Appearances().String(), p.Health().String(), tags(p.Tags()),
		})
	}
	return rows
}

func teamRows(teams []models.Team) [][]string {
	rows := [][]string{{"name", "country", "sponsorship", "wins", "draws", "losses", "points", "tags"}}
	for _, t := range teams {
		rows = append(rows, []string{
			t.Name().String(), t.Country().String(), t.Sponsor().String(),
			t.Wins().String(), t.Draws().String(), t.Losses().String(),
			strconv.Itoa(t.Points()), tags(t.Tags()),
		})
	}
	return rows
}

func matchRows(matches []models.Match) [][]string {
	rows := [][]string{{"date", "home_team", "away_team", "tags"}}
	for _, m := range matches {
		rows = append(rows, []string{m.Date().String(), m.Home().String(), m.Away().String(), tags(m.Tags())})
	}
	return rows
}

func financeRows(finances []models.Finance) [][]string {
	rows := [][]string{{"team", "income", "payroll", "balance"}}
	for _, f := range finances {
		rows = append(rows, []string{f.Team().String(), f.Income().String(), f.Payroll().String(), f.Balance().String()})
	}
	return rows
}
