package command

import (
	"fmt"
	"slices"
)

// ListFinances recomputes the finance projection and shows it.
type ListFinances struct{}

func (ListFinances) Execute(env Env) Result {
	if err := env.League.RefreshFinance(); err != nil {
		return Message(fmt.Sprintf("Could not refresh finances: %v", err))
	}
	return Result{Feedback: MessageListFinances, Kind: KindFinances, Finances: env.League.Finances()}
}

// Clear empties the league.
type Clear struct{}

func (Clear) Execute(env Env) Result {
	env.League.Clear()
	return Message(MessageClear)
}

// Help shows every command.
type Help struct{}

func (Help) Execute(Env) Result {
	return Result{Feedback: HelpMarkdown(), Markdown: true}
}

// Exit ends the session.
type Exit struct{}

func (Exit) Execute(Env) Result {
	return Result{Feedback: MessageExit, Exit: true}
}

// Invalid reports input the parser rejected.
type Invalid struct {
	Message string
}

// InvalidFormat reports input that did not fit u.
func InvalidFormat(u Usage) Invalid {
	return Invalid{Message: fmt.Sprintf(MessageInvalidFormat, u)}
}

func (c Invalid) Execute(Env) Result {
	return Message(c.Message)
}

func resolutionMessage(res Resolution, kind string) string {
	switch res {
	case OutOfBounds:
		return fmt.Sprintf(MessageInvalidIndex, kind)
	case Stale:
		return fmt.Sprintf(MessageNotInRecord, kind)
	default:
		return ""
	}
}

// matchesAnyWord reports whether any keyword equals one of words.
func matchesAnyWord(words, keywords []string) bool {
	for _, w := range words {
		if slices.Contains(keywords, w) {
			return true
		}
	}
	return false
}
