package record

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/guilhermegouw/leaguebook/internal/models"
)

// League is the single owner of the player, team, match and finance
// collections. Accessors hand out copies; collections are only changed
// through League methods.
type League struct {
	players  *PlayerList
	teams    *TeamList
	matches  *MatchList
	finances *FinanceList
}

// New returns an empty league.
func New() *League {
	return &League{
		players:  NewPlayerList(),
		teams:    NewTeamList(),
		matches:  NewMatchList(),
		finances: NewFinanceList(),
	}
}

// Players returns a copy of every player in order.
func (l *League) Players() []models.Player { return l.players.Items() }

// Teams returns a copy of every team in order.
func (l *League) Teams() []models.Team { return l.teams.Items() }

// Matches returns a copy of every match in order.
func (l *League) Matches() []models.Match { return l.matches.Items() }

// Finances returns a copy of every finance record in order.
func (l *League) Finances() []models.Finance { return l.finances.Items() }

// AllPlayers iterates over the players without copying.
func (l *League) AllPlayers() iter.Seq[models.Player] { return l.players.All() }

// AllTeams iterates over the teams without copying.
func (l *League) AllTeams() iter.Seq[models.Team] { return l.teams.All() }

// AllMatches iterates over the matches without copying.
func (l *League) AllMatches() iter.Seq[models.Match] { return l.matches.All() }

// HasPlayer reports whether a player with p's name is recorded.
func (l *League) HasPlayer(p models.Player) bool { return l.players.Contains(p) }

// FindPlayer looks a player up by name.
func (l *League) FindPlayer(name models.Name) (models.Player, bool) { return l.players.Find(name) }

// AddPlayer records a new player.
func (l *League) AddPlayer(p models.Player) error { return l.players.Add(p) }

// DeletePlayer removes a player.
func (l *League) DeletePlayer(p models.Player) error { return l.players.Remove(p) }

// SetPlayer replaces target with edited.
func (l *League) SetPlayer(target, edited models.Player) error {
	return l.players.Set(target, edited)
}

// HasTeam reports whether a team with t's name is recorded.
func (l *League) HasTeam(t models.Team) bool { return l.teams.Contains(t) }

// FindTeam looks a team up by name, ignoring case.
func (l *League) FindTeam(name models.TeamName) (models.Team, bool) { return l.teams.Find(name) }

// AddTeam records a new team.
func (l *League) AddTeam(t models.Team) error { return l.teams.Add(t) }

// DeleteTeam removes a team. Its players are kept. A team that still plays in
// a recorded match cannot be deleted.
func (l *League) DeleteTeam(t models.Team) error {
	for m := range l.matches.All() {
		if m.Involves(t.Name()) {
			return ErrTeamHasMatches
		}
	}
	return l.teams.Remove(t)
}

// SetTeam replaces target with edited. When the name changes, players and
// matches referring to the old name follow the new one; the whole edit is
// rejected if that would put two players behind the same jersey.
func (l *League) SetTeam(target, edited models.Team) error {
	current, ok := l.teams.Find(target.Name())
	if !ok {
		return ErrTeamNotFound
	}
	nameChanged := !current.Name().EqualFold(edited.Name())
	if l.teams.HasDuplicate(edited, nameChanged) {
		return ErrDuplicateTeam
	}
	if current.Name().Equal(edited.Name()) {
		return l.teams.Set(current, edited, nameChanged)
	}

	players, err := l.renamedPlayers(current.Name(), edited.Name())
	if err != nil {
		return err
	}
	matches, err := l.renamedMatches(current.Name(), edited.Name())
	if err != nil {
		return err
	}
	if err := l.teams.Set(current, edited, nameChanged); err != nil {
		return err
	}
	l.players = players
	l.matches = matches
	return nil
}

func (l *League) renamedPlayers(from, to models.TeamName) (*PlayerList, error) {
	out := NewPlayerList()
	var moved []models.Player
	for p := range l.players.All() {
		if p.Team().EqualFold(from) {
			p = p.WithTeam(to, p.Jersey())
			moved = append(moved, p)
		}
		out.list.items = append(out.list.items, p)
	}
	for _, p := range moved {
		if out.jerseyTaken(to, p.Jersey(), out.list.indexOf(p)) {
			return nil, ErrDuplicateJersey
		}
	}
	return out, nil
}

func (l *League) renamedMatches(from, to models.TeamName) (*MatchList, error) {
	out := NewMatchList()
	for m := range l.matches.All() {
		if m.Involves(from) {
			params := m.Params()
			if params.Home.EqualFold(from) {
				params.Home = to
			}
			if params.Away.EqualFold(from) {
				params.Away = to
			}
			renamed, err := models.NewMatch(params)
			if err != nil {
				return nil, err
			}
			m = renamed
		}
		if err := out.Add(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// HasMatch reports whether an equal match is recorded.
func (l *League) HasMatch(m models.Match) bool { return l.matches.Contains(m) }

// AddMatch records a match between two recorded teams.
func (l *League) AddMatch(m models.Match) error {
	if err := l.requireTeams(m); err != nil {
		return err
	}
	return l.matches.Add(m)
}

// DeleteMatch removes a match.
func (l *League) DeleteMatch(m models.Match) error { return l.matches.Remove(m) }

// SetMatch replaces target with edited. Both teams of edited must be recorded.
func (l *League) SetMatch(target, edited models.Match) error {
	if !l.matches.Contains(target) {
		return ErrMatchNotFound
	}
	if err := l.requireTeams(edited); err != nil {
		return err
	}
	return l.matches.Set(target, edited)
}

func (l *League) requireTeams(m models.Match) error {
	if _, ok := l.teams.Find(m.Home()); !ok {
		return ErrTeamNotFound
	}
	if _, ok := l.teams.Find(m.Away()); !ok {
		return ErrTeamNotFound
	}
	return nil
}

// AddFinance records a finance entry. Used when loading saved data.
func (l *League) AddFinance(f models.Finance) error { return l.finances.Add(f) }

// RefreshFinance rebuilds the finance projection: one record per team, in
// team order, with the sponsorship as income and the salaries of the team's
// players as payroll.
func (l *League) RefreshFinance() error {
	payroll := make(map[string]int64)
	for p := range l.players.All() {
		payroll[p.Team().Key()] += p.Salary().Int64()
	}

	out := NewFinanceList()
	for t := range l.teams.All() {
		f := models.NewFinance(t.Name(), models.MoneyOf(t.Sponsor().Int64()), models.MoneyOf(payroll[t.Name().Key()]))
		if err := out.Add(f); err != nil {
			return err
		}
	}
	l.finances = out
	return nil
}

// SortPlayers orders players by name, ignoring case.
func (l *League) SortPlayers() {
	sortByKey(&l.players.list, func(p models.Player) string { return p.Name().Key() }, strings.Compare)
}

type standing struct {
	points int
	losses int
	name   string
}

// SortTeams orders teams by standings: points, then fewest losses, then name.
func (l *League) SortTeams() {
	key := func(t models.Team) standing {
		return standing{points: t.Points(), losses: t.Losses().Int(), name: t.Name().Key()}
	}
	sortByKey(&l.teams.list, key, func(a, b standing) int {
		return cmp.Or(
			cmp.Compare(b.points, a.points),
			cmp.Compare(a.losses, b.losses),
			strings.Compare(a.name, b.name),
		)
	})
}

// TransferPlayer moves p to team with a new jersey number and returns the
// moved player. The player is left untouched on error.
func (l *League) TransferPlayer(p models.Player, team models.TeamName, jersey models.JerseyNumber) (models.Player, error) {
	current, ok := l.players.Find(p.Name())
	if !ok {
		return models.Player{}, ErrPlayerNotFound
	}
	if current.Team().EqualFold(team) {
		return models.Player{}, ErrSameTeam
	}
	dest, ok := l.teams.Find(team)
	if !ok {
		return models.Player{}, ErrTeamNotFound
	}
	moved := current.WithTeam(dest.Name(), jersey)
	if err := l.players.Set(current, moved); err != nil {
		return models.Player{}, err
	}
	return moved, nil
}

// Clear removes every record.
func (l *League) Clear() {
	l.players.Clear()
	l.teams.Clear()
	l.matches.Clear()
	l.finances.Clear()
}

// Counts returns the number of players, teams and matches.
func (l *League) Counts() (players, teams, matches int) {
	return l.players.Len(), l.teams.Len(), l.matches.Len()
}

// Clone returns an independent copy of the league.
func (l *League) Clone() *League {
	return &League{
		players:  &PlayerList{list: l.players.list.clone()},
		teams:    &TeamList{list: l.teams.list.clone()},
		matches:  &MatchList{list: l.matches.list.clone()},
		finances: &FinanceList{list: l.finances.list.clone()},
	}
}

// Equal reports whether both leagues hold equal records in the same order.
func (l *League) Equal(other *League) bool {
	return slices.EqualFunc(l.players.list.items, other.players.list.items, models.Player.Equal) &&
		slices.EqualFunc(l.teams.list.items, other.teams.list.items, models.Team.Equal) &&
		slices.EqualFunc(l.matches.list.items, other.matches.list.items, models.Match.Equal) &&
		slices.EqualFunc(l.finances.list.items, other.finances.list.items, models.Finance.Equal)
}
