package parser

import (
	"regexp"
	"strings"

	"github.com/guilhermegouw/leaguebook/internal/command"
)

// lead is the free-form argument that comes before the labelled fields.
type lead int

const (
	leadNone lead = iota
	leadName
	leadIndex
	leadKeywords
)

const (
	groupLead = "lead"
	groupTags = "tags"
)

var leadPatterns = map[lead]string{
	leadName:     `[^/\s][^/]*?`,
	leadIndex:    `\d+`,
	leadKeywords: `\S+(?:\s+\S+)*?`,
}

// field is a labelled argument such as "p/RW".
type field struct {
	prefix   string
	optional bool
}

func (f field) group() string {
	return strings.TrimSuffix(f.prefix, "/")
}

func required(prefix string) field { return field{prefix: prefix} }
func optional(prefix string) field { return field{prefix: prefix, optional: true} }

// grammar is the compiled argument pattern of one verb. Fields must appear
// in order, values cannot contain "/", and any number of t/ tags may follow.
type grammar struct {
	usage command.Usage
	re    *regexp.Regexp
}

var tagRegex = regexp.MustCompile(`t/([^/\s]*)`)

func newGrammar(usage command.Usage, l lead, fields []field, tags bool) grammar {
	var b strings.Builder
	b.WriteString(`^`)
	if l != leadNone {
		b.WriteString(`\s*(?P<` + groupLead + `>` + leadPatterns[l] + `)`)
	}
	for _, f := range fields {
		p := regexp.QuoteMeta(f.prefix)
		if f.optional {
			b.WriteString(`(?:\s+` + p + `(?P<` + f.group() + `>[^/]*?))?`)
		} else {
			b.WriteString(`\s+` + p + `(?P<` + f.group() + `>[^/]+?)`)
		}
	}
	if tags {
		b.WriteString(`(?P<` + groupTags + `>(?:\s+t/[^/\s]*)*)`)
	}
	b.WriteString(`\s*$`)
	return grammar{usage: usage, re: regexp.MustCompile(b.String())}
}

// match applies the grammar to the argument string of a command line.
func (g grammar) match(args string) (match, bool) {
	s := " " + args
	loc := g.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return match{}, false
	}
	return match{re: g.re, s: s, loc: loc}, true
}

type match struct {
	re  *regexp.Regexp
	s   string
	loc []int
}

// value returns the text of group and whether the group took part in the match.
func (m match) value(group string) (string, bool) {
	i := m.re.SubexpIndex(group)
	if i < 0 || m.loc[2*i] < 0 {
		return "", false
	}
	return strings.TrimSpace(m.s[m.loc[2*i]:m.loc[2*i+1]]), true
}

// tags returns the non-empty tag names and whether any t/ was given.
func (m match) tags() ([]string, bool) {
	text, ok := m.value(groupTags)
	if !ok || text == "" {
		return nil, false
	}
	var names []string
	for _, sub := range tagRegex.FindAllStringSubmatch(text, -1) {
		if sub[1] != "" {
			names = append(names, sub[1])
		}
	}
	return names, true
}

var (
	noArgs = regexp.MustCompile(`^\s*$`)

	addPlayerGrammar = newGrammar(command.UsageAddPlayer, leadName, []field{
		required("p/"), required("a/"), required("sal/"), required("gs/"), required("ga/"),
		required("tm/"), required("ctry/"), required("jn/"), required("app/"), required("hs/"),
	}, true)
	editPlayerGrammar = newGrammar(command.UsageEditPlayer, leadIndex, []field{
		optional("n/"), optional("p/"), optional("a/"), optional("sal/"), optional("gs/"), optional("ga/"),
		optional("tm/"), optional("ctry/"), optional("jn/"), optional("app/"), optional("hs/"),
	}, true)
	transferGrammar = newGrammar(command.UsageTransferPlayer, leadName, []field{
		required("tm/"), required("jn/"),
	}, false)

	addTeamGrammar = newGrammar(command.UsageAddTeam, leadName, []field{
		required("c/"), required("s/"), optional("w/"), optional("d/"), optional("l/"),
	}, true)
	editTeamGrammar = newGrammar(command.UsageEditTeam, leadIndex, []field{
		optional("n/"), optional("c/"), optional("s/"), optional("w/"), optional("d/"), optional("l/"),
	}, true)

	addMatchGrammar = newGrammar(command.UsageAddMatch, leadNone, []field{
		required("d/"), required("home/"), required("away/"),
	}, true)
	editMatchGrammar = newGrammar(command.UsageEditMatch, leadIndex, []field{
		optional("d/"), optional("home/"), optional("away/"),
	}, true)
)

// indexGrammar builds the grammar of a verb taking only an index.
func indexGrammar(usage command.Usage) grammar {
	return newGrammar(usage, leadIndex, nil, false)
}

// keywordGrammar builds the grammar of a verb taking only keywords.
func keywordGrammar(usage command.Usage) grammar {
	return newGrammar(usage, leadKeywords, nil, false)
}
