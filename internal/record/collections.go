package record

import (
	"iter"

	"github.com/guilhermegouw/leaguebook/internal/models"
)

// PlayerList keeps players unique by name and jersey numbers unique per team.
type PlayerList struct {
	list uniqueList[models.Player]
}

// NewPlayerList returns an empty list.
func NewPlayerList() *PlayerList {
	return &PlayerList{list: newUniqueList(models.Player.SameAs)}
}

// Contains reports whether a player with the same name is present.
func (l *PlayerList) Contains(p models.Player) bool { return l.list.contains(p) }

// Find returns the player called name.
func (l *PlayerList) Find(name models.Name) (models.Player, bool) {
	for _, p := range l.list.items {
		if p.Name().Equal(name) {
			return p, true
		}
	}
	return models.Player{}, false
}

// jerseyTaken reports whether a player other than the one at skip wears
// the jersey in team.
func (l *PlayerList) jerseyTaken(team models.TeamName, jersey models.JerseyNumber, skip int) bool {
	for i, p := range l.list.items {
		if i != skip && p.WearsJersey(team, jersey) {
			return true
		}
	}
	return false
}

// Add appends p.
func (l *PlayerList) Add(p models.Player) error {
	if l.list.contains(p) {
		return ErrDuplicatePlayer
	}
	if l.jerseyTaken(p.Team(), p.Jersey(), -1) {
		return ErrDuplicateJersey
	}
	l.list.items = append(l.list.items, p)
	return nil
}

// Remove deletes the player with the same name as p.
func (l *PlayerList) Remove(p models.Player) error {
	return l.list.removeFunc(func(x models.Player) bool { return x.SameAs(p) }, ErrPlayerNotFound)
}

// Set replaces target with edited in place. Nothing changes on error.
func (l *PlayerList) Set(target, edited models.Player) error {
	i := l.list.indexOf(target)
	if i < 0 {
		return ErrPlayerNotFound
	}
	if !target.SameAs(edited) && l.list.contains(edited) {
		return ErrDuplicatePlayer
	}
	if l.jerseyTaken(edited.Team(), edited.Jersey(), i) {
		return ErrDuplicateJersey
	}
	l.list.items[i] = edited
	return nil
}

// Clear removes every player.
func (l *PlayerList) Clear() { l.list.clear() }

// Len returns the number of players.
func (l *PlayerList) Len() int { return l.list.len() }

// Items returns an owned copy of the players.
func (l *PlayerList) Items() []models.Player { return l.list.snapshot() }

// All iterates over the players in order.
func (l *PlayerList) All() iter.Seq[models.Player] { return l.list.all() }

// TeamList keeps team names unique ignoring case.
type TeamList struct {
	list uniqueList[models.Team]
}

// NewTeamList returns an empty list.
func NewTeamList() *TeamList {
	return &TeamList{list: newUniqueList(models.Team.SameAs)}
}

// Contains reports whether a team with the same name is present.
func (l *TeamList) Contains(t models.Team) bool { return l.list.contains(t) }

// Find returns the team called name, ignoring case.
func (l *TeamList) Find(name models.TeamName) (models.Team, bool) {
	for _, t := range l.list.items {
		if t.Name().EqualFold(name) {
			return t, true
		}
	}
	return models.Team{}, false
}

// HasDuplicate reports whether t would clash with another team. A team
// whose name did not change never clashes with itself.
func (l *TeamList) HasDuplicate(t models.Team, nameChanged bool) bool {
	return nameChanged && l.list.contains(t)
}

// Add appends t.
func (l *TeamList) Add(t models.Team) error {
	return l.list.add(t, ErrDuplicateTeam)
}

// Remove deletes the team with the same name as t.
func (l *TeamList) Remove(t models.Team) error {
	return l.list.removeFunc(func(x models.Team) bool { return x.SameAs(t) }, ErrTeamNotFound)
}

// Set replaces target with edited in place. Nothing changes on error.
func (l *TeamList) Set(target, edited models.Team, nameChanged bool) error {
	i := l.list.indexOf(target)
	if i < 0 {
		return ErrTeamNotFound
	}
	if l.HasDuplicate(edited, nameChanged) {
		return ErrDuplicateTeam
	}
	l.list.items[i] = edited
	return nil
}

// Clear removes every team.
func (l *TeamList) Clear() { l.list.clear() }

// Len returns the number of teams.
func (l *TeamList) Len() int { return l.list.len() }

// Items returns an owned copy of the teams.
func (l *TeamList) Items() []models.Team { return l.list.snapshot() }

// All iterates over the teams in order.
func (l *TeamList) All() iter.Seq[models.Team] { return l.list.all() }

// MatchList rejects matches equal in every field.
type MatchList struct {
	list uniqueList[models.Match]
}

// NewMatchList returns an empty list.
func NewMatchList() *MatchList {
	return &MatchList{list: newUniqueList(models.Match.SameAs)}
}

// Contains reports whether an equal match is present.
func (l *MatchList) Contains(m models.Match) bool { return l.list.contains(m) }

// Add appends m.
func (l *MatchList) Add(m models.Match) error {
	return l.list.add(m, ErrDuplicateMatch)
}

// Remove deletes the match equal to m.
func (l *MatchList) Remove(m models.Match) error {
	return l.list.removeFunc(func(x models.Match) bool { return x.Equal(m) }, ErrMatchNotFound)
}

// Set replaces target with edited in place. Nothing changes on error.
func (l *MatchList) Set(target, edited models.Match) error {
	i := l.list.indexOf(target)
	if i < 0 {
		return ErrMatchNotFound
	}
	if !target.Equal(edited) && l.list.contains(edited) {
		return ErrDuplicateMatch
	}
	l.list.items[i] = edited
	return nil
}

// Clear removes every match.
func (l *MatchList) Clear() { l.list.clear() }

// Len returns the number of matches.
func (l *MatchList) Len() int { return l.list.len() }

// Items returns an owned copy of the matches.
func (l *MatchList) Items() []models.Match { return l.list.snapshot() }

// All iterates over the matches in order.
func (l *MatchList) All() iter.Seq[models.Match] { return l.list.all() }

// FinanceList holds at most one finance record per team.
type FinanceList struct {
	list uniqueList[models.Finance]
}

// NewFinanceList returns an empty list.
func NewFinanceList() *FinanceList {
	return &FinanceList{list: newUniqueList(models.Finance.SameAs)}
}

// Contains reports whether a record for the same team is present.
func (l *FinanceList) Contains(f models.Finance) bool { return l.list.contains(f) }

// Add appends f.
func (l *FinanceList) Add(f models.Finance) error {
	return l.list.add(f, ErrDuplicateFinance)
}

// Remove deletes the record for f's team.
func (l *FinanceList) Remove(f models.Finance) error {
	return l.list.removeFunc(func(x models.Finance) bool { return x.SameAs(f) }, ErrFinanceNotFound)
}

// Set replaces target with edited in place. Nothing changes on error.
func (l *FinanceList) Set(target, edited models.Finance) error {
	i := l.list.indexOf(target)
	if i < 0 {
		return ErrFinanceNotFound
	}
	if !target.SameAs(edited) && l.list.contains(edited) {
		return ErrDuplicateFinance
	}
	l.list.items[i] = edited
	return nil
}

// Clear removes every record.
func (l *FinanceList) Clear() { l.list.clear() }

// Len returns the number of records.
func (l *FinanceList) Len() int { return l.list.len() }

// Items returns an owned copy of the records.
func (l *FinanceList) Items() []models.Finance { return l.list.snapshot() }

// All iterates over the records in order.
func (l *FinanceList) All() iter.Seq[models.Finance] { return l.list.all() }
