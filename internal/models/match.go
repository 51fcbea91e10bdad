package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSameTeam is returned when a match would be played by a team against itself.
var ErrSameTeam = errors.New("home and away teams must be different")

// MatchParams holds the validated fields of a match.
type MatchParams struct {
	Date Date
	Home TeamName
	Away TeamName
	Tags TagSet
}

// Match is a fixture between two teams on a date. Matches have no identity
// beyond their fields.
type Match struct {
	p MatchParams
}

// NewMatch builds a match, rejecting a home team equal to the away team.
func NewMatch(params MatchParams) (Match, error) {
	if params.Home.EqualFold(params.Away) {
		return Match{}, ErrSameTeam
	}
	return Match{p: params}, nil
}

func (m Match) Date() Date          { return m.p.Date }
func (m Match) Home() TeamName      { return m.p.Home }
func (m Match) Away() TeamName      { return m.p.Away }
func (m Match) Tags() TagSet        { return m.p.Tags }
func (m Match) Params() MatchParams { return m.p }

// Involves reports whether team plays in the match.
func (m Match) Involves(team TeamName) bool {
	return m.p.Home.EqualFold(team) || m.p.Away.EqualFold(team)
}

// Equal reports whether every field of both matches is the same.
func (m Match) Equal(other Match) bool {
	a, b := m.p, other.p
	return a.Date.Equal(b.Date) &&
		a.Home.Equal(b.Home) &&
		a.Away.Equal(b.Away) &&
		a.Tags.Equal(b.Tags)
}

// SameAs is Equal.
func (m Match) SameAs(other Match) bool { return m.Equal(other) }

func (m Match) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s vs %s", m.p.Date, m.p.Home, m.p.Away)
	if m.p.Tags.Len() > 0 {
		b.WriteString("; Tags: ")
		b.WriteString(m.p.Tags.String())
	}
	return b.String()
}
