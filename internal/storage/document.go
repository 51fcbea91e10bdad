package storage

import (
	"errors"
	"fmt"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

// Document is the saved form of a league. Every value is kept as the text
// its value object accepts so loading re-runs the same validation as the
// command parser.
type Document struct {
	Players  []PlayerRecord  `json:"players"`
	Teams    []TeamRecord    `json:"teams"`
	Matches  []MatchRecord   `json:"matches"`
	Finances []FinanceRecord `json:"finances"`
}

// PlayerRecord is the saved form of a player.
type PlayerRecord struct {
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Age         string   `json:"age"`
	Salary      string   `json:"salary"`
	Goals       string   `json:"goals_scored"`
	Assists     string   `json:"goals_assisted"`
	Team        string   `json:"team"`
	Country     string   `json:"country"`
	Jersey      string   `json:"jersey_number"`
	Appearances string   `json:"appearances"`
	Health      string   `json:"health_status"`
	Tags        []string `json:"tags"`
}

// TeamRecord is the saved form of a team.
type TeamRecord struct {
	Name    string   `json:"name"`
	Country string   `json:"country"`
	Sponsor string   `json:"sponsorship"`
	Wins    string   `json:"wins"`
	Draws   string   `json:"draws"`
	Losses  string   `json:"losses"`
	Tags    []string `json:"tags"`
}

// MatchRecord is the saved form of a match.
type MatchRecord struct {
	Date string   `json:"date"`
	Home string   `json:"home_team"`
	Away string   `json:"away_team"`
	Tags []string `json:"tags"`
}

// FinanceRecord is the saved form of a finance entry. Balance is written for
// readers of the file and ignored on load.
type FinanceRecord struct {
	Team    string `json:"team"`
	Income  string `json:"income"`
	Payroll string `json:"payroll"`
	Balance string `json:"balance,omitempty"`
}

// Encode converts a league to its saved form, preserving collection order.
func Encode(league *record.League) Document {
	doc := Document{
		Players:  []PlayerRecord{},
		Teams:    []TeamRecord{},
		Matches:  []MatchRecord{},
		Finances: []FinanceRecord{},
	}
	for _, p := range league.Players() {
		doc.Players = append(doc.Players, PlayerRecord{
			Name:        p.Name().String(),
			Position:    p.Position().String(),
			Age:         p.Age().String(),
			Salary:      p.Salary().String(),
			Goals:       p.Goals().String(),
			Assists:     p.Assists().String(),
			Team:        p.Team().String(),
			Country:     p.Country().String(),
			Jersey:      p.Jersey().String(),
			Appearances: p.Appearances().String(),
			Health:      p.Health().String(),
			Tags:        p.Tags().Strings(),
		})
	}
	for _, t := range league.Teams() {
		doc.Teams = append(doc.Teams, TeamRecord{
			Name:    t.Name().String(),
			Country: t.Country().String(),
			Sponsor: t.Sponsor().String(),
			Wins:    t.Wins().String(),
			Draws:   t.Draws().String(),
			Losses:  t.Losses().String(),
			Tags:    t.Tags().Strings(),
		})
	}
	for _, m := range league.Matches() {
		doc.Matches = append(doc.Matches, MatchRecord{
			Date: m.Date().String(),
			Home: m.Home().String(),
			Away: m.Away().String(),
			Tags: m.Tags().Strings(),
		})
	}
	for _, f := range league.Finances() {
		doc.Finances = append(doc.Finances, FinanceRecord{
			Team:    f.Team().String(),
			Income:  f.Income().String(),
			Payroll: f.Payroll().String(),
			Balance: f.Balance().String(),
		})
	}
	return doc
}

// Decode rebuilds a league from its saved form. Teams are loaded before the
// players and matches that refer to them. Every failure wraps ErrInvalidData.
func Decode(doc Document) (*record.League, error) {
	league := record.New()

	for _, r := range doc.Teams {
		t, err := decodeTeam(r)
		if err != nil {
			return nil, err
		}
		if err := league.AddTeam(t); err != nil {
			return nil, duplicate("teams", err)
		}
	}
	for _, r := range doc.Players {
		p, err := decodePlayer(r)
		if err != nil {
			return nil, err
		}
		if err := league.AddPlayer(p); err != nil {
			return nil, duplicate("players", err)
		}
	}
	for _, r := range doc.Matches {
		m, err := decodeMatch(r)
		if err != nil {
			return nil, err
		}
		if err := league.AddMatch(m); err != nil {
			if errors.Is(err, record.ErrTeamNotFound) {
				return nil, fmt.Errorf("%w: match %s refers to an unknown team", ErrInvalidData, m)
			}
			return nil, duplicate("matches", err)
		}
	}
	for _, r := range doc.Finances {
		f, err := decodeFinance(r)
		if err != nil {
			return nil, err
		}
		if err := league.AddFinance(f); err != nil {
			return nil, duplicate("finances", err)
		}
	}
	return league, nil
}

func duplicate(kind string, err error) error {
	return fmt.Errorf("%w: data file contains duplicate %s (%w)", ErrInvalidData, kind, err)
}

// fieldReader validates the fields of one saved record and keeps the first
// failure.
type fieldReader struct {
	kind string
	err  error
}

func field[T any](r *fieldReader, name, raw string, parse func(string) (T, error)) T {
	var zero T
	if r.err != nil {
		return zero
	}
	if raw == "" {
		r.err = fmt.Errorf("%w: %s's %s field is missing!", ErrInvalidData, r.kind, name)
		return zero
	}
	v, err := parse(raw)
	if err != nil {
		r.err = fmt.Errorf("%w: %s: %w", ErrInvalidData, r.kind, err)
		return zero
	}
	return v
}

func (r *fieldReader) tags(raw []string) models.TagSet {
	if r.err != nil {
		return models.TagSet{}
	}
	set, err := models.ParseTags(raw)
	if err != nil {
		r.err = fmt.Errorf("%w: %s: %w", ErrInvalidData, r.kind, err)
	}
	return set
}

func decodePlayer(rec PlayerRecord) (models.Player, error) {
	r := &fieldReader{kind: "Player"}
	params := models.PlayerParams{
		Name:        field(r, "name", rec.Name, models.NewName),
		Position:    field(r, "position", rec.Position, models.NewPosition),
		Age:         field(r, "age", rec.Age, models.NewAge),
		Salary:      field(r, "salary", rec.Salary, models.NewSalary),
		Goals:       field(r, "goals_scored", rec.Goals, models.CountParser("Goals scored")),
		Assists:     field(r, "goals_assisted", rec.Assists, models.CountParser("Goals assisted")),
		Team:        field(r, "team", rec.Team, models.NewTeamName),
		Country:     field(r, "country", rec.Country, models.NewCountry),
		Jersey:      field(r, "jersey_number", rec.Jersey, models.NewJerseyNumber),
		Appearances: field(r, "appearances", rec.Appearances, models.CountParser("Appearances")),
		Health:      field(r, "health_status", rec.Health, models.NewHealthStatus),
		Tags:        r.tags(rec.Tags),
	}
	if r.err != nil {
		return models.Player{}, r.err
	}
	return models.NewPlayer(params), nil
}

func decodeTeam(rec TeamRecord) (models.Team, error) {
	r := &fieldReader{kind: "Team"}
	params := models.TeamParams{
		Name:    field(r, "name", rec.Name, models.NewTeamName),
		Country: field(r, "country", rec.Country, models.NewCountry),
		Sponsor: field(r, "sponsorship", rec.Sponsor, models.NewSponsor),
		Wins:    field(r, "wins", rec.Wins, models.CountParser("Wins")),
		Draws:   field(r, "draws", rec.Draws, models.CountParser("Draws")),
		Losses:  field(r, "losses", rec.Losses, models.CountParser("Losses")),
		Tags:    r.tags(rec.Tags),
	}
	if r.err != nil {
		return models.Team{}, r.err
	}
	return models.NewTeam(params), nil
}

func decodeMatch(rec MatchRecord) (models.Match, error) {
	r := &fieldReader{kind: "Match"}
	params := models.MatchParams{
		Date: field(r, "date", rec.Date, models.NewDate),
		Home: field(r, "home_team", rec.Home, models.NewTeamName),
		Away: field(r, "away_team", rec.Away, models.NewTeamName),
		Tags: r.tags(rec.Tags),
	}
	if r.err != nil {
		return models.Match{}, r.err
	}
	m, err := models.NewMatch(params)
	if err != nil {
		return models.Match{}, fmt.Errorf("%w: Match: %w", ErrInvalidData, err)
	}
	return m, nil
}

func decodeFinance(rec FinanceRecord) (models.Finance, error) {
	r := &fieldReader{kind: "Finance"}
	team := field(r, "team", rec.Team, models.NewTeamName)
	income := field(r, "income", rec.Income, models.ParseMoney)
	payroll := field(r, "payroll", rec.Payroll, models.ParseMoney)
	if r.err != nil {
		return models.Finance{}, r.err
	}
	return models.NewFinance(team, income, payroll), nil
}
