package models

import (
	"fmt"
	"strings"
)

// PlayerParams holds the validated fields of a player.
type PlayerParams struct {
	Name        Name
	Position    Position
	Age         Age
	Salary      Salary
	Goals       Count
	Assists     Count
	Team        TeamName
	Country     Country
	Jersey      JerseyNumber
	Appearances Count
	Health      HealthStatus
	Tags        TagSet
}

// Player is a footballer registered in the league.
//
// Two players are the same player when their names match exactly, even if
// every other field differs. Equal compares every field.
type Player struct {
	p PlayerParams
}

// NewPlayer builds a player from validated fields.
func NewPlayer(params PlayerParams) Player {
	return Player{p: params}
}

func (p Player) Name() Name                 { return p.p.Name }
func (p Player) Position() Position         { return p.p.Position }
func (p Player) Age() Age                   { return p.p.Age }
func (p Player) Salary() Salary             { return p.p.Salary }
func (p Player) Goals() Count               { return p.p.Goals }
func (p Player) Assists() Count             { return p.p.Assists }
func (p Player) Team() TeamName             { return p.p.Team }
func (p Player) Country() Country           { return p.p.Country }
func (p Player) Jersey() JerseyNumber       { return p.p.Jersey }
func (p Player) Appearances() Count         { return p.p.Appearances }
func (p Player) Health() HealthStatus       { return p.p.Health }
func (p Player) Tags() TagSet               { return p.p.Tags }
func (p Player) Params() PlayerParams       { return p.p }
func (p Player) SameAs(other Player) bool   { return p.p.Name.Equal(other.p.Name) }
func (p Player) WearsJersey(team TeamName, jersey JerseyNumber) bool {
	return p.p.Team.EqualFold(team) && p.p.Jersey.Equal(jersey)
}

// WithTeam returns a copy of the player moved to team with a new jersey.
func (p Player) WithTeam(team TeamName, jersey JerseyNumber) Player {
	params := p.p
	params.Team = team
	params.Jersey = jersey
	return Player{p: params}
}

// Equal reports whether every field of both players matches.
func (p Player) Equal(other Player) bool {
	a, b := p.p, other.p
	return a.Name.Equal(b.Name) &&
		a.Position.Equal(b.Position) &&
		a.Age.Equal(b.Age) &&
		a.Salary.Equal(b.Salary) &&
		a.Goals.Equal(b.Goals) &&
		a.Assists.Equal(b.Assists) &&
		a.Team.Equal(b.Team) &&
		a.Country.Equal(b.Country) &&
		a.Jersey.Equal(b.Jersey) &&
		a.Appearances.Equal(b.Appearances) &&
		a.Health.Equal(b.Health) &&
		a.Tags.Equal(b.Tags)
}

func (p Player) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Position: %s; Age: %s; Salary: %s; Goals Scored: %s; Goals Assisted: %s; Team: %s; Country: %s; Jersey Number: %s; Appearances: %s; Health Status: %s",
		p.p.Name, p.p.Position, p.p.Age, p.p.Salary, p.p.Goals, p.p.Assists,
		p.p.Team, p.p.Country, p.p.Jersey, p.p.Appearances, p.p.Health)
	if p.p.Tags.Len() > 0 {
		b.WriteString("; Tags: ")
		b.WriteString(p.p.Tags.String())
	}
	return b.String()
}
