package models

import (
	"fmt"
	"strings"
)

// TeamParams holds the validated fields of a team.
type TeamParams struct {
	Name    TeamName
	Country Country
	Sponsor Sponsor
	Wins    Count
	Draws   Count
	Losses  Count
	Tags    TagSet
}

// Team is a club taking part in the league. Team names are unique ignoring case.
type Team struct {
	p TeamParams
}

// NewTeam builds a team from validated fields.
func NewTeam(params TeamParams) Team {
	return Team{p: params}
}

func (t Team) Name() TeamName     { return t.p.Name }
func (t Team) Country() Country   { return t.p.Country }
func (t Team) Sponsor() Sponsor   { return t.p.Sponsor }
func (t Team) Wins() Count        { return t.p.Wins }
func (t Team) Draws() Count       { return t.p.Draws }
func (t Team) Losses() Count      { return t.p.Losses }
func (t Team) Tags() TagSet       { return t.p.Tags }
func (t Team) Params() TeamParams { return t.p }

// Points is three per win plus one per draw.
func (t Team) Points() int {
	return 3*t.p.Wins.Int() + t.p.Draws.Int()
}

// SameAs reports whether both teams share a name, ignoring case.
func (t Team) SameAs(other Team) bool { return t.p.Name.EqualFold(other.p.Name) }

// Equal reports whether every field of both teams matches.
func (t Team) Equal(other Team) bool {
	a, b := t.p, other.p
	return a.Name.Equal(b.Name) &&
		a.Country.Equal(b.Country) &&
		a.Sponsor.Equal(b.Sponsor) &&
		a.Wins.Equal(b.Wins) &&
		a.Draws.Equal(b.Draws) &&
		a.Losses.Equal(b.Losses) &&
		a.Tags.Equal(b.Tags)
}

func (t Team) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Country: %s; Sponsorship: %s; Wins: %s; Draws: %s; Losses: %s; Points: %d",
		t.p.Name, t.p.Country, t.p.Sponsor, t.p.Wins, t.p.Draws, t.p.Losses, t.Points())
	if t.p.Tags.Len() > 0 {
		b.WriteString("; Tags: ")
		b.WriteString(t.p.Tags.String())
	}
	return b.String()
}
