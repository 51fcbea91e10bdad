package command

import (
	"errors"
	"fmt"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

const teamNoun = "team"

// AddTeam records a new team.
type AddTeam struct {
	Team models.Team
}

func (c AddTeam) Execute(env Env) Result {
	if err := env.League.AddTeam(c.Team); err != nil {
		return Message(teamError(err))
	}
	return Message(fmt.Sprintf(MessageAddTeam, c.Team))
}

// EditTeam changes fields of a shown team.
type EditTeam struct {
	Index int
	Edit  TeamEdit
}

func (c EditTeam) Execute(env Env) Result {
	shown, msg, ok := resolveTeam(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindTeam(shown.Name())
	edited := c.Edit.Apply(current)
	if err := env.League.SetTeam(current, edited); err != nil {
		return Message(teamError(err))
	}
	return Message(fmt.Sprintf(MessageEditTeam, edited))
}

// DeleteTeam removes a shown team.
type DeleteTeam struct {
	Index int
}

func (c DeleteTeam) Execute(env Env) Result {
	shown, msg, ok := resolveTeam(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindTeam(shown.Name())
	if err := env.League.DeleteTeam(current); err != nil {
		return Message(teamError(err))
	}
	return Message(fmt.Sprintf(MessageDeleteTeam, current))
}

// ViewTeam shows every field of a shown team.
type ViewTeam struct {
	Index int
}

func (c ViewTeam) Execute(env Env) Result {
	shown, msg, ok := resolveTeam(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindTeam(shown.Name())
	return Message(fmt.Sprintf(MessageViewTeam, current))
}

// ListTeams shows every team.
type ListTeams struct{}

func (ListTeams) Execute(env Env) Result {
	return Result{Feedback: MessageListTeams, Kind: KindTeams, Teams: env.League.Teams()}
}

// FindTeams shows teams whose name contains any keyword.
type FindTeams struct {
	Keywords []string
}

func (c FindTeams) Execute(env Env) Result {
	var found []models.Team
	for t := range env.League.AllTeams() {
		if matchesAnyWord(t.Name().Words(), c.Keywords) {
			found = append(found, t)
		}
	}
	return Result{Feedback: fmt.Sprintf(MessageFindTeams, len(found)), Kind: KindTeams, Teams: found}
}

// SortTeams orders the teams by standings and shows them.
type SortTeams struct{}

func (SortTeams) Execute(env Env) Result {
	env.League.SortTeams()
	return Result{Feedback: MessageSortTeams, Kind: KindTeams, Teams: env.League.Teams()}
}

func resolveTeam(env Env, index int) (models.Team, string, bool) {
	t, res := env.Views.Teams.Resolve(index, env.League.HasTeam)
	return t, resolutionMessage(res, teamNoun), res == Resolved
}

func teamError(err error) string {
	switch {
	case errors.Is(err, record.ErrDuplicateTeam):
		return MessageDuplicateTeam
	case errors.Is(err, record.ErrTeamNotFound):
		return fmt.Sprintf(MessageNotInRecord, teamNoun)
	case errors.Is(err, record.ErrDuplicateJersey):
		return MessageRenameJersey
	case errors.Is(err, record.ErrDuplicateMatch):
		return MessageDuplicateMatch
	case errors.Is(err, record.ErrTeamHasMatches):
		return MessageTeamHasMatches
	default:
		return err.Error()
	}
}
