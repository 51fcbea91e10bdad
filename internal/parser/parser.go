// Package parser turns a line of user input into a command.
//
// Each verb has a fixed grammar: an optional leading argument (a name, an
// index or keywords) followed by labelled fields like "p/RW" in a fixed
// order and any number of "t/TAG" tags. Input that does not fit the grammar
// yields an invalid-format command carrying the verb's usage; input that
// fits but fails value validation yields the validator's message. Parse
// never panics and always returns a command.
package parser

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/guilhermegouw/leaguebook/internal/command"
	"github.com/guilhermegouw/leaguebook/internal/models"
)

type parseFunc func(args string) command.Command

var verbs map[string]parseFunc

func init() {
	verbs = map[string]parseFunc{
		"addPlayer": parseAddPlayer,
		"edit":      parseEditPlayer,
		"delete":    indexCommand(command.UsageDeletePlayer, func(i int) command.Command { return command.DeletePlayer{Index: i} }),
		"view":      indexCommand(command.UsageViewPlayer, func(i int) command.Command { return command.ViewPlayer{Index: i} }),
		"list":      noArgCommand(command.UsageListPlayers, command.ListPlayers{}),
		"find":      keywordCommand(command.UsageFindPlayers, func(k []string) command.Command { return command.FindPlayers{Keywords: k} }),
		"sort":      noArgCommand(command.UsageSortPlayers, command.SortPlayers{}),
		"transfer":  parseTransfer,

		"addTeam":    parseAddTeam,
		"editTeam":   parseEditTeam,
		"deleteTeam": indexCommand(command.UsageDeleteTeam, func(i int) command.Command { return command.DeleteTeam{Index: i} }),
		"viewTeam":   indexCommand(command.UsageViewTeam, func(i int) command.Command { return command.ViewTeam{Index: i} }),
		"listTeam":   noArgCommand(command.UsageListTeams, command.ListTeams{}),
		"findTeam":   keywordCommand(command.UsageFindTeams, func(k []string) command.Command { return command.FindTeams{Keywords: k} }),
		"sortTeam":   noArgCommand(command.UsageSortTeams, command.SortTeams{}),

		"addMatch":    parseAddMatch,
		"editMatch":   parseEditMatch,
		"deleteMatch": indexCommand(command.UsageDeleteMatch, func(i int) command.Command { return command.DeleteMatch{Index: i} }),
		"listMatch":   noArgCommand(command.UsageListMatches, command.ListMatches{}),
		"findMatch":   keywordCommand(command.UsageFindMatches, func(k []string) command.Command { return command.FindMatches{Keywords: k} }),

		"listFinance": noArgCommand(command.UsageListFinances, command.ListFinances{}),
		"clear":       noArgCommand(command.UsageClear, command.Clear{}),
		"help":        func(string) command.Command { return command.Help{} },
		"exit":        noArgCommand(command.UsageExit, command.Exit{}),
	}
}

// Parse returns the command for line.
func Parse(line string) command.Command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return command.InvalidFormat(command.UsageHelp)
	}
	verb, args := splitVerb(trimmed)
	parse, ok := verbs[verb]
	if !ok {
		return command.Help{}
	}
	return parse(args)
}

// Verb returns the first word of line.
func Verb(line string) string {
	verb, _ := splitVerb(strings.TrimSpace(line))
	return verb
}

func splitVerb(line string) (verb, args string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

func noArgCommand(usage command.Usage, c command.Command) parseFunc {
	return func(args string) command.Command {
		if !noArgs.MatchString(args) {
			return command.InvalidFormat(usage)
		}
		return c
	}
}

func indexCommand(usage command.Usage, build func(int) command.Command) parseFunc {
	g := indexGrammar(usage)
	return func(args string) command.Command {
		m, ok := g.match(args)
		if !ok {
			return command.InvalidFormat(usage)
		}
		index, ok := parseIndex(m)
		if !ok {
			return command.InvalidFormat(usage)
		}
		return build(index)
	}
}

func keywordCommand(usage command.Usage, build func([]string) command.Command) parseFunc {
	g := keywordGrammar(usage)
	return func(args string) command.Command {
		m, ok := g.match(args)
		if !ok {
			return command.InvalidFormat(usage)
		}
		text, _ := m.value(groupLead)
		return build(strings.Fields(text))
	}
}

func parseIndex(m match) (int, bool) {
	text, ok := m.value(groupLead)
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return index, true
}

// extractor pulls validated values out of a match, keeping the first
// validation error.
type extractor struct {
	m   match
	err error
}

func value[T any](x *extractor, group string, parse func(string) (T, error)) T {
	var zero T
	if x.err != nil {
		return zero
	}
	raw, _ := x.m.value(group)
	v, err := parse(raw)
	if err != nil {
		x.err = err
		return zero
	}
	return v
}

func optionalValue[T any](x *extractor, group string, parse func(string) (T, error)) *T {
	if x.err != nil {
		return nil
	}
	raw, ok := x.m.value(group)
	if !ok {
		return nil
	}
	v, err := parse(raw)
	if err != nil {
		x.err = err
		return nil
	}
	return &v
}

func (x *extractor) tags() models.TagSet {
	if x.err != nil {
		return models.TagSet{}
	}
	raw, _ := x.m.tags()
	set, err := models.ParseTags(raw)
	if err != nil {
		x.err = err
	}
	return set
}

func (x *extractor) optionalTags() *models.TagSet {
	if x.err != nil {
		return nil
	}
	raw, ok := x.m.tags()
	if !ok {
		return nil
	}
	set, err := models.ParseTags(raw)
	if err != nil {
		x.err = err
		return nil
	}
	return &set
}

// failure converts an extraction error into the command reporting it.
func failure(err error) command.Command {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return command.Invalid{Message: verr.Message}
	}
	if errors.Is(err, models.ErrSameTeam) {
		return command.Invalid{Message: command.MessageSameTeam}
	}
	return command.Invalid{Message: err.Error()}
}

var (
	goals       = models.CountParser("Goals scored")
	assists     = models.CountParser("Goals assisted")
	appearances = models.CountParser("Appearances")
	wins        = models.CountParser("Wins")
	draws       = models.CountParser("Draws")
	losses      = models.CountParser("Losses")
)

func parseAddPlayer(args string) command.Command {
	m, ok := addPlayerGrammar.match(args)
	if !ok {
		return command.InvalidFormat(addPlayerGrammar.usage)
	}
	x := &extractor{m: m}
	params := models.PlayerParams{
		Name:        value(x, groupLead, models.NewName),
		Position:    value(x, "p", models.NewPosition),
		Age:         value(x, "a", models.NewAge),
		Salary:      value(x, "sal", models.NewSalary),
		Goals:       value(x, "gs", goals),
		Assists:     value(x, "ga", assists),
		Team:        value(x, "tm", models.NewTeamName),
		Country:     value(x, "ctry", models.NewCountry),
		Jersey:      value(x, "jn", models.NewJerseyNumber),
		Appearances: value(x, "app", appearances),
		Health:      value(x, "hs", models.NewHealthStatus),
		Tags:        x.tags(),
	}
	if x.err != nil {
		return failure(x.err)
	}
	return command.AddPlayer{Player: models.NewPlayer(params)}
}

func parseEditPlayer(args string) command.Command {
	m, ok := editPlayerGrammar.match(args)
	if !ok {
		return command.InvalidFormat(editPlayerGrammar.usage)
	}
	index, ok := parseIndex(m)
	if !ok {
		return command.InvalidFormat(editPlayerGrammar.usage)
	}
	x := &extractor{m: m}
	edit := command.PlayerEdit{
		Name:        optionalValue(x, "n", models.NewName),
		Position:    optionalValue(x, "p", models.NewPosition),
		Age:         optionalValue(x, "a", models.NewAge),
		Salary:      optionalValue(x, "sal", models.NewSalary),
		Goals:       optionalValue(x, "gs", goals),
		Assists:     optionalValue(x, "ga", assists),
		Team:        optionalValue(x, "tm", models.NewTeamName),
		Country:     optionalValue(x, "ctry", models.NewCountry),
		Jersey:      optionalValue(x, "jn", models.NewJerseyNumber),
		Appearances: optionalValue(x, "app", appearances),
		Health:      optionalValue(x, "hs", models.NewHealthStatus),
		Tags:        x.optionalTags(),
	}
	if x.err != nil {
		return failure(x.err)
	}
	if !edit.IsAnyFieldEdited() {
		return command.Invalid{Message: command.MessageNoFieldEdited}
	}
	return command.EditPlayer{Index: index, Edit: edit}
}

func parseTransfer(args string) command.Command {
	m, ok := transferGrammar.match(args)
	if !ok {
		return command.InvalidFormat(transferGrammar.usage)
	}
	x := &extractor{m: m}
	c := command.TransferPlayer{
		Name:   value(x, groupLead, models.NewName),
		Team:   value(x, "tm", models.NewTeamName),
		Jersey: value(x, "jn", models.NewJerseyNumber),
	}
	if x.err != nil {
		return failure(x.err)
	}
	return c
}

func parseAddTeam(args string) command.Command {
	m, ok := addTeamGrammar.match(args)
	if !ok {
		return command.InvalidFormat(addTeamGrammar.usage)
	}
	x := &extractor{m: m}
	params := models.TeamParams{
		Name:    value(x, groupLead, models.NewTeamName),
		Country: value(x, "c", models.NewCountry),
		Sponsor: value(x, "s", models.NewSponsor),
	}
	params.Wins = orZero(optionalValue(x, "w", wins))
	params.Draws = orZero(optionalValue(x, "d", draws))
	params.Losses = orZero(optionalValue(x, "l", losses))
	params.Tags = x.tags()
	if x.err != nil {
		return failure(x.err)
	}
	return command.AddTeam{Team: models.NewTeam(params)}
}

func parseEditTeam(args string) command.Command {
	m, ok := editTeamGrammar.match(args)
	if !ok {
		return command.InvalidFormat(editTeamGrammar.usage)
	}
	index, ok := parseIndex(m)
	if !ok {
		return command.InvalidFormat(editTeamGrammar.usage)
	}
	x := &extractor{m: m}
	edit := command.TeamEdit{
		Name:    optionalValue(x, "n", models.NewTeamName),
		Country: optionalValue(x, "c", models.NewCountry),
		Sponsor: optionalValue(x, "s", models.NewSponsor),
		Wins:    optionalValue(x, "w", wins),
		Draws:   optionalValue(x, "d", draws),
		Losses:  optionalValue(x, "l", losses),
		Tags:    x.optionalTags(),
	}
	if x.err != nil {
		return failure(x.err)
	}
	if !edit.IsAnyFieldEdited() {
		return command.Invalid{Message: command.MessageNoFieldEdited}
	}
	return command.EditTeam{Index: index, Edit: edit}
}

func parseAddMatch(args string) command.Command {
	m, ok := addMatchGrammar.match(args)
	if !ok {
		return command.InvalidFormat(addMatchGrammar.usage)
	}
	x := &extractor{m: m}
	params := models.MatchParams{
		Date: value(x, "d", models.NewDate),
		Home: value(x, "home", models.NewTeamName),
		Away: value(x, "away", models.NewTeamName),
		Tags: x.tags(),
	}
	if x.err != nil {
		return failure(x.err)
	}
	fixture, err := models.NewMatch(params)
	if err != nil {
		return failure(err)
	}
	return command.AddMatch{Match: fixture}
}

func parseEditMatch(args string) command.Command {
	m, ok := editMatchGrammar.match(args)
	if !ok {
		return command.InvalidFormat(editMatchGrammar.usage)
	}
	index, ok := parseIndex(m)
	if !ok {
		return command.InvalidFormat(editMatchGrammar.usage)
	}
	x := &extractor{m: m}
	edit := command.MatchEdit{
		Date: optionalValue(x, "d", models.NewDate),
		Home: optionalValue(x, "home", models.NewTeamName),
		Away: optionalValue(x, "away", models.NewTeamName),
		Tags: x.optionalTags(),
	}
	if x.err != nil {
		return failure(x.err)
	}
	if !edit.IsAnyFieldEdited() {
		return command.Invalid{Message: command.MessageNoFieldEdited}
	}
	return command.EditMatch{Index: index, Edit: edit}
}

func orZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
