package models

import (
	"errors"
	"strings"
	"testing"
)

func mustValue[T any](t *testing.T, v T, err error) T {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return v
}

func samplePlayer(t *testing.T, name, team, jersey string) Player {
	t.Helper()
	return NewPlayer(PlayerParams{
		Name:        mustValue(t, NewName(name)),
		Position:    mustValue(t, NewPosition("RW")),
		Age:         mustValue(t, NewAge("31")),
		Salary:      mustValue(t, NewSalary("20000000")),
		Goals:       mustValue(t, NewCount("Goals", "30")),
		Assists:     mustValue(t, NewCount("Assists", "25")),
		Team:        mustValue(t, NewTeamName(team)),
		Country:     mustValue(t, NewCountry("Argentina")),
		Jersey:      mustValue(t, NewJerseyNumber(jersey)),
		Appearances: mustValue(t, NewCount("Appearances", "40")),
		Health:      mustValue(t, NewHealthStatus("HEALTHY")),
		Tags:        mustValue(t, ParseTags([]string{"GOAT"})),
	})
}

func TestPlayerIdentity(t *testing.T) {
	a := samplePlayer(t, "Lionel Messi", "FC_BARCELONA", "10")
	b := samplePlayer(t, "Lionel Messi", "PSG", "30")
	c := samplePlayer(t, "Someone Else", "FC_BARCELONA", "10")

	if !a.SameAs(b) {
		t.Error("Expected players with the same name to be the same player")
	}
	if a.Equal(b) {
		t.Error("Expected players with different teams not to be equal")
	}
	if a.SameAs(c) {
		t.Error("Expected players with different names to differ")
	}
	if !a.WearsJersey(mustValue(t, NewTeamName("fc_barcelona")), mustValue(t, NewJerseyNumber("10"))) {
		t.Error("Expected jersey check to ignore team case")
	}
}

func TestPlayerWithTeam(t *testing.T) {
	p := samplePlayer(t, "Lionel Messi", "FC_BARCELONA", "10")
	moved := p.WithTeam(mustValue(t, NewTeamName("PSG")), mustValue(t, NewJerseyNumber("30")))

	if moved.Team().String() != "PSG" || moved.Jersey().Int() != 30 {
		t.Errorf("Unexpected moved player %s", moved)
	}
	if p.Team().String() != "FC_BARCELONA" {
		t.Error("Expected original player to be unchanged")
	}
}

func TestPlayerString(t *testing.T) {
	p := samplePlayer(t, "Lionel Messi", "FC_BARCELONA", "10")
	s := p.String()
	for _, want := range []string{"Lionel Messi", "Position: RW", "Jersey Number: 10", "Tags: [GOAT]"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}
}

func TestTeamPoints(t *testing.T) {
	team := NewTeam(TeamParams{
		Name:    mustValue(t, NewTeamName("Arsenal")),
		Country: mustValue(t, NewCountry("England")),
		Sponsor: mustValue(t, NewSponsor("100")),
		Wins:    mustValue(t, NewCount("Wins", "5")),
		Draws:   mustValue(t, NewCount("Draws", "2")),
		Losses:  mustValue(t, NewCount("Losses", "1")),
	})
	if team.Points() != 17 {
		t.Errorf("Expected 17 points, got %d", team.Points())
	}

	other := NewTeam(TeamParams{Name: mustValue(t, NewTeamName("ARSENAL"))})
	if !team.SameAs(other) {
		t.Error("Expected case-insensitive team identity")
	}
	if team.Equal(other) {
		t.Error("Expected teams with different fields not to be equal")
	}
}

func TestNewMatch(t *testing.T) {
	date := mustValue(t, NewDate("2024-05-01"))
	home := mustValue(t, NewTeamName("Arsenal"))

	_, err := NewMatch(MatchParams{Date: date, Home: home, Away: mustValue(t, NewTeamName("ARSENAL"))})
	if !errors.Is(err, ErrSameTeam) {
		t.Errorf("Expected ErrSameTeam, got %v", err)
	}

	m, err := NewMatch(MatchParams{Date: date, Home: home, Away: mustValue(t, NewTeamName("Chelsea"))})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !m.Involves(mustValue(t, NewTeamName("chelsea"))) {
		t.Error("Expected match to involve chelsea")
	}
	if m.String() != "2024-05-01: Arsenal vs Chelsea" {
		t.Errorf("Unexpected rendering %q", m.String())
	}
}

func TestFinanceBalance(t *testing.T) {
	f := NewFinance(mustValue(t, NewTeamName("Arsenal")), MoneyOf(1000000), MoneyOf(2500000))
	if f.Balance().Int64() != -1500000 {
		t.Errorf("Expected -1500000, got %d", f.Balance().Int64())
	}
	if !strings.Contains(f.String(), "Balance: -1,500,000") {
		t.Errorf("Unexpected rendering %q", f.String())
	}
}
