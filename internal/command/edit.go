package command

import "github.com/guilhermegouw/leaguebook/internal/models"

// PlayerEdit lists the player fields to change. Nil fields keep their value.
type PlayerEdit struct {
	Name        *models.Name
	Position    *models.Position
	Age         *models.Age
	Salary      *models.Salary
	Goals       *models.Count
	Assists     *models.Count
	Team        *models.TeamName
	Country     *models.Country
	Jersey      *models.JerseyNumber
	Appearances *models.Count
	Health      *models.HealthStatus
	Tags        *models.TagSet
}

// IsAnyFieldEdited reports whether at least one field is set.
func (e PlayerEdit) IsAnyFieldEdited() bool {
	return e.Name != nil || e.Position != nil || e.Age != nil || e.Salary != nil ||
		e.Goals != nil || e.Assists != nil || e.Team != nil || e.Country != nil ||
		e.Jersey != nil || e.Appearances != nil || e.Health != nil || e.Tags != nil
}

// Apply returns p with the edited fields replaced.
func (e PlayerEdit) Apply(p models.Player) models.Player {
	params := p.Params()
	set(&params.Name, e.Name)
	set(&params.Position, e.Position)
	set(&params.Age, e.Age)
	set(&params.Salary, e.Salary)
	set(&params.Goals, e.Goals)
	set(&params.Assists, e.Assists)
	set(&params.Team, e.Team)
	set(&params.Country, e.Country)
	set(&params.Jersey, e.Jersey)
	set(&params.Appearances, e.Appearances)
	set(&params.Health, e.Health)
	set(&params.Tags, e.Tags)
	return models.NewPlayer(params)
}

// TeamEdit lists the team fields to change.
type TeamEdit struct {
	Name    *models.TeamName
	Country *models.Country
	Sponsor *models.Sponsor
	Wins    *models.Count
	Draws   *models.Count
	Losses  *models.Count
	Tags    *models.TagSet
}

// IsAnyFieldEdited reports whether at least one field is set.
func (e TeamEdit) IsAnyFieldEdited() bool {
	return e.Name != nil || e.Country != nil || e.Sponsor != nil ||
		e.Wins != nil || e.Draws != nil || e.Losses != nil || e.Tags != nil
}

// Apply returns t with the edited fields replaced.
func (e TeamEdit) Apply(t models.Team) models.Team {
	params := t.Params()
	set(&params.Name, e.Name)
	set(&params.Country, e.Country)
	set(&params.Sponsor, e.Sponsor)
	set(&params.Wins, e.Wins)
	set(&params.Draws, e.Draws)
	set(&params.Losses, e.Losses)
	set(&params.Tags, e.Tags)
	return models.NewTeam(params)
}

// MatchEdit lists the match fields to change.
type MatchEdit struct {
	Date *models.Date
	Home *models.TeamName
	Away *models.TeamName
	Tags *models.TagSet
}

// IsAnyFieldEdited reports whether at least one field is set.
func (e MatchEdit) IsAnyFieldEdited() bool {
	return e.Date != nil || e.Home != nil || e.Away != nil || e.Tags != nil
}

// Apply returns m with the edited fields replaced. It fails when the edit
// would make a team play itself.
func (e MatchEdit) Apply(m models.Match) (models.Match, error) {
	params := m.Params()
	set(&params.Date, e.Date)
	set(&params.Home, e.Home)
	set(&params.Away, e.Away)
	set(&params.Tags, e.Tags)
	return models.NewMatch(params)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
