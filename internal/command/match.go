package command

import (
	"errors"
	"fmt"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

const matchNoun = "match"

// AddMatch records a new match.
type AddMatch struct {
	Match models.Match
}

func (c AddMatch) Execute(env Env) Result {
	if err := env.League.AddMatch(c.Match); err != nil {
		return Message(matchError(err))
	}
	return Message(fmt.Sprintf(MessageAddMatch, c.Match))
}

// EditMatch changes fields of a shown match.
type EditMatch struct {
	Index int
	Edit  MatchEdit
}

func (c EditMatch) Execute(env Env) Result {
	shown, msg, ok := resolveMatch(env, c.Index)
	if !ok {
		return Message(msg)
	}
	edited, err := c.Edit.Apply(shown)
	if err != nil {
		return Message(matchError(err))
	}
	if err := env.League.SetMatch(shown, edited); err != nil {
		return Message(matchError(err))
	}
	return Message(fmt.Sprintf(MessageEditMatch, edited))
}

// DeleteMatch removes a shown match.
type DeleteMatch struct {
	Index int
}

func (c DeleteMatch) Execute(env Env) Result {
	shown, msg, ok := resolveMatch(env, c.Index)
	if !ok {
		return Message(msg)
	}
	if err := env.League.DeleteMatch(shown); err != nil {
		return Message(matchError(err))
	}
	return Message(fmt.Sprintf(MessageDeleteMatch, shown))
}

// ListMatches shows every match.
type ListMatches struct{}

func (ListMatches) Execute(env Env) Result {
	return Result{Feedback: MessageListMatches, Kind: KindMatches, Matches: env.League.Matches()}
}

// FindMatches shows matches where either team name contains any keyword.
type FindMatches struct {
	Keywords []string
}

func (c FindMatches) Execute(env Env) Result {
	var found []models.Match
	for m := range env.League.AllMatches() {
		if matchesAnyWord(m.Home().Words(), c.Keywords) || matchesAnyWord(m.Away().Words(), c.Keywords) {
			found = append(found, m)
		}
	}
	return Result{Feedback: fmt.Sprintf(MessageFindMatches, len(found)), Kind: KindMatches, Matches: found}
}

func resolveMatch(env Env, index int) (models.Match, string, bool) {
	m, res := env.Views.Matches.Resolve(index, env.League.HasMatch)
	return m, resolutionMessage(res, matchNoun), res == Resolved
}

func matchError(err error) string {
	switch {
	case errors.Is(err, record.ErrDuplicateMatch):
		return MessageDuplicateMatch
	case errors.Is(err, record.ErrMatchNotFound):
		return fmt.Sprintf(MessageNotInRecord, matchNoun)
	case errors.Is(err, record.ErrTeamNotFound):
		return MessageMatchNeedsTeams
	case errors.Is(err, record.ErrSameTeam):
		return MessageSameTeam
	default:
		return err.Error()
	}
}
