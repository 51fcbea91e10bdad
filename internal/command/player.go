package command

import (
	"errors"
	"fmt"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

const playerNoun = "player"

// AddPlayer records a new player.
type AddPlayer struct {
	Player models.Player
}

func (c AddPlayer) Execute(env Env) Result {
	if err := env.League.AddPlayer(c.Player); err != nil {
		return Message(playerError(err, c.Player))
	}
	return Message(fmt.Sprintf(MessageAddPlayer, c.Player))
}

// EditPlayer changes fields of a shown player.
type EditPlayer struct {
	Index int
	Edit  PlayerEdit
}

func (c EditPlayer) Execute(env Env) Result {
	shown, msg, ok := resolvePlayer(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindPlayer(shown.Name())
	edited := c.Edit.Apply(current)
	if err := env.League.SetPlayer(current, edited); err != nil {
		return Message(playerError(err, edited))
	}
	return Message(fmt.Sprintf(MessageEditPlayer, edited))
}

// DeletePlayer removes a shown player.
type DeletePlayer struct {
	Index int
}

func (c DeletePlayer) Execute(env Env) Result {
	shown, msg, ok := resolvePlayer(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindPlayer(shown.Name())
	if err := env.League.DeletePlayer(current); err != nil {
		return Message(playerError(err, current))
	}
	return Message(fmt.Sprintf(MessageDeletePlayer, current))
}

// ViewPlayer shows every field of a shown player.
type ViewPlayer struct {
	Index int
}

func (c ViewPlayer) Execute(env Env) Result {
	shown, msg, ok := resolvePlayer(env, c.Index)
	if !ok {
		return Message(msg)
	}
	current, _ := env.League.FindPlayer(shown.Name())
	return Message(fmt.Sprintf(MessageViewPlayer, current))
}

// ListPlayers shows every player.
type ListPlayers struct{}

func (ListPlayers) Execute(env Env) Result {
	return Result{Feedback: MessageListPlayers, Kind: KindPlayers, Players: env.League.Players()}
}

// FindPlayers shows players whose name contains any keyword.
type FindPlayers struct {
	Keywords []string
}

func (c FindPlayers) Execute(env Env) Result {
	var found []models.Player
	for p := range env.League.AllPlayers() {
		if matchesAnyWord(p.Name().Words(), c.Keywords) {
			found = append(found, p)
		}
	}
	return Result{Feedback: fmt.Sprintf(MessageFindPlayers, len(found)), Kind: KindPlayers, Players: found}
}

// SortPlayers orders the players by name and shows them.
type SortPlayers struct{}

func (SortPlayers) Execute(env Env) Result {
	env.League.SortPlayers()
	return Result{Feedback: MessageSortPlayers, Kind: KindPlayers, Players: env.League.Players()}
}

// TransferPlayer moves a player, named in full, to another team.
type TransferPlayer struct {
	Name   models.Name
	Team   models.TeamName
	Jersey models.JerseyNumber
}

func (c TransferPlayer) Execute(env Env) Result {
	current, ok := env.League.FindPlayer(c.Name)
	if !ok {
		return Message(fmt.Sprintf(MessageNotInRecord, playerNoun))
	}
	moved, err := env.League.TransferPlayer(current, c.Team, c.Jersey)
	switch {
	case errors.Is(err, record.ErrSameTeam):
		return Message(fmt.Sprintf(MessageAlreadyInTeam, current.Name(), current.Team()))
	case errors.Is(err, record.ErrTeamNotFound):
		return Message(fmt.Sprintf(MessageNotInRecord, teamNoun))
	case err != nil:
		return Message(playerError(err, current.WithTeam(c.Team, c.Jersey)))
	}
	return Message(fmt.Sprintf(MessageTransfer, moved.Name(), current.Team(), moved.Team(), moved.Jersey()))
}

func resolvePlayer(env Env, index int) (models.Player, string, bool) {
	p, res := env.Views.Players.Resolve(index, env.League.HasPlayer)
	return p, resolutionMessage(res, playerNoun), res == Resolved
}

func playerError(err error, p models.Player) string {
	switch {
	case errors.Is(err, record.ErrDuplicatePlayer):
		return MessageDuplicatePlayer
	case errors.Is(err, record.ErrDuplicateJersey):
		return fmt.Sprintf(MessageDuplicateJersey, p.Jersey(), p.Team())
	case errors.Is(err, record.ErrPlayerNotFound):
		return fmt.Sprintf(MessageNotInRecord, playerNoun)
	default:
		return err.Error()
	}
}
