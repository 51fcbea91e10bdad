// Package command implements the executable operations of the league
// console. A Command is built by the parser with already validated
// arguments and runs against the league it receives in Env. Execution never
// fails: every domain error becomes feedback text in the Result.
package command

import (
	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

// Command is one parsed user request.
type Command interface {
	Execute(env Env) Result
}

// Env is the state a command runs against: the league and the lists last
// shown to the user, which index arguments refer to.
type Env struct {
	League *record.League
	Views  Views
}

// ListKind says which list, if any, a Result carries.
type ListKind int

// List kinds.
const (
	KindNone ListKind = iota
	KindPlayers
	KindTeams
	KindMatches
	KindFinances
)

func (k ListKind) String() string {
	switch k {
	case KindPlayers:
		return "players"
	case KindTeams:
		return "teams"
	case KindMatches:
		return "matches"
	case KindFinances:
		return "finances"
	default:
		return "none"
	}
}

// Result is what a command reports back. At most one list is populated,
// the one named by Kind.
type Result struct {
	Feedback string
	Kind     ListKind
	Players  []models.Player
	Teams    []models.Team
	Matches  []models.Match
	Finances []models.Finance

	// Markdown marks Feedback as markdown, for front ends that render it.
	Markdown bool
	// Exit asks the front end to end the session.
	Exit bool
}

// Message returns a Result carrying only feedback.
func Message(feedback string) Result {
	return Result{Feedback: feedback}
}
