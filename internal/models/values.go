// Package models provides the value objects and entities of the league record.
//
// Every value object is built through a NewX constructor that validates the
// raw input, so an invalid value cannot exist outside this package. Entities
// (Player, Team, Match, Finance) are composed of value objects and a TagSet
// and are replaced as a whole rather than mutated.
package models

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Constraint messages shown to the user when validation fails.
const (
	MessageName         = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	MessageTeamName     = "Team names should only contain alphanumeric characters, underscores and spaces, and it should not be blank"
	MessageCountry      = "Countries should only contain letters and spaces, and it should not be blank"
	MessageAge          = "Age should be an integer between 15 and 50"
	MessageSalary       = "Salary should be a non-negative integer"
	MessageSponsor      = "Sponsorship should be a non-negative integer"
	MessageJerseyNumber = "Jersey number should be an integer between 1 and 34"
	MessageDate         = "Dates should be valid calendar dates in the format YYYY-MM-DD"
	MessageMoney        = "Amounts should be integers"
)

// Numeric bounds for validated integers.
const (
	MinAge    = 15
	MaxAge    = 50
	MinJersey = 1
	MaxJersey = 34
)

// DateLayout is the canonical textual form of a Date.
const DateLayout = "2006-01-02"

var (
	nameRegex     = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	teamNameRegex = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}_ ]*$`)
	countryRegex  = regexp.MustCompile(`^\p{L}[\p{L} ]*$`)
	digitsRegex   = regexp.MustCompile(`^[0-9]+$`)
	signedRegex   = regexp.MustCompile(`^-?[0-9]+$`)
)

// fold returns the case-folded form used for case-insensitive comparisons.
// A Caser keeps state between calls, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseNonNegative parses a digits-only string into an int64.
func parseNonNegative(raw string) (int64, bool) {
	if !digitsRegex.MatchString(raw) {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Name is a player's full name.
type Name struct {
	value string
}

// NewName validates a player name.
func NewName(raw string) (Name, error) {
	value := collapseSpaces(raw)
	if !nameRegex.MatchString(value) {
		return Name{}, invalid("name", MessageName)
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// Equal reports whether both names are identical, case included.
func (n Name) Equal(other Name) bool { return n.value == other.value }

// Compare orders names case-insensitively.
func (n Name) Compare(other Name) int {
	return strings.Compare(fold(n.value), fold(other.value))
}

// Key is the case-folded name. Comparing keys orders names like Compare.
func (n Name) Key() string { return fold(n.value) }

// Words splits the name into its whitespace separated words.
func (n Name) Words() []string { return strings.Fields(n.value) }

// TeamName is the name of a team. Team identity ignores case.
type TeamName struct {
	value string
}

// NewTeamName validates a team name.
func NewTeamName(raw string) (TeamName, error) {
	value := collapseSpaces(raw)
	if !teamNameRegex.MatchString(value) {
		return TeamName{}, invalid("team", MessageTeamName)
	}
	return TeamName{value: value}, nil
}

func (t TeamName) String() string { return t.value }

// Equal reports whether both names are identical, case included.
func (t TeamName) Equal(other TeamName) bool { return t.value == other.value }

// EqualFold reports whether both names refer to the same team.
func (t TeamName) EqualFold(other TeamName) bool { return fold(t.value) == fold(other.value) }

// Compare orders team names case-insensitively.
func (t TeamName) Compare(other TeamName) int {
	return strings.Compare(fold(t.value), fold(other.value))
}

// Key is the case-folded name, suitable as a map key.
func (t TeamName) Key() string { return fold(t.value) }

// Words splits the team name into words on spaces and underscores.
func (t TeamName) Words() []string {
	return strings.FieldsFunc(t.value, func(r rune) bool { return r == ' ' || r == '_' })
}

// Country is a nationality or the country a team is based in.
type Country struct {
	value string
}

// NewCountry validates a country.
func NewCountry(raw string) (Country, error) {
	value := collapseSpaces(raw)
	if !countryRegex.MatchString(value) {
		return Country{}, invalid("country", MessageCountry)
	}
	return Country{value: value}, nil
}

func (c Country) String() string { return c.value }

// Equal reports whether both countries are identical.
func (c Country) Equal(other Country) bool { return c.value == other.value }

// Compare orders countries case-insensitively.
func (c Country) Compare(other Country) int {
	return strings.Compare(fold(c.value), fold(other.value))
}

// Position is a player's field position.
type Position struct {
	value string
}

// Positions lists every accepted position.
var Positions = []string{"GK", "CB", "LB", "RB", "LWB", "RWB", "CDM", "CM", "CAM", "LM", "RM", "LW", "RW", "CF", "ST"}

// MessagePosition is shown when a position is not recognised.
var MessagePosition = "Position should be one of: " + strings.Join(Positions, ", ")

// NewPosition validates a position. Input is case-insensitive.
func NewPosition(raw string) (Position, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if !slices.Contains(Positions, value) {
		return Position{}, invalid("position", MessagePosition)
	}
	return Position{value: value}, nil
}

func (p Position) String() string { return p.value }

// Equal reports whether both positions are the same.
func (p Position) Equal(other Position) bool { return p.value == other.value }

// HealthStatus describes a player's fitness.
type HealthStatus struct {
	value string
}

// HealthStatuses lists every accepted health status.
var HealthStatuses = []string{"HEALTHY", "INJURED", "RECOVERING"}

// MessageHealthStatus is shown when a health status is not recognised.
var MessageHealthStatus = "Health status should be one of: " + strings.Join(HealthStatuses, ", ")

// NewHealthStatus validates a health status. Input is case-insensitive.
func NewHealthStatus(raw string) (HealthStatus, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if !slices.Contains(HealthStatuses, value) {
		return HealthStatus{}, invalid("health", MessageHealthStatus)
	}
	return HealthStatus{value: value}, nil
}

func (h HealthStatus) String() string { return h.value }

// Equal reports whether both statuses are the same.
func (h HealthStatus) Equal(other HealthStatus) bool { return h.value == other.value }

// Age is a player's age in years.
type Age struct {
	value int
}

// NewAge validates an age.
func NewAge(raw string) (Age, error) {
	n, ok := parseNonNegative(strings.TrimSpace(raw))
	if !ok || n < MinAge || n > MaxAge {
		return Age{}, invalid("age", MessageAge)
	}
	return Age{value: int(n)}, nil
}

func (a Age) String() string { return strconv.Itoa(a.value) }

// Int returns the age in years.
func (a Age) Int() int { return a.value }

// Equal reports whether both ages are the same.
func (a Age) Equal(other Age) bool { return a.value == other.value }

// Salary is a player's yearly salary.
type Salary struct {
	value int64
}

// NewSalary validates a salary.
func NewSalary(raw string) (Salary, error) {
	n, ok := parseNonNegative(strings.TrimSpace(raw))
	if !ok {
		return Salary{}, invalid("salary", MessageSalary)
	}
	return Salary{value: n}, nil
}

func (s Salary) String() string { return strconv.FormatInt(s.value, 10) }

// Int64 returns the salary amount.
func (s Salary) Int64() int64 { return s.value }

// Equal reports whether both salaries are the same.
func (s Salary) Equal(other Salary) bool { return s.value == other.value }

// Sponsor is the sponsorship income of a team.
type Sponsor struct {
	value int64
}

// NewSponsor validates a sponsorship amount.
func NewSponsor(raw string) (Sponsor, error) {
	n, ok := parseNonNegative(strings.TrimSpace(raw))
	if !ok {
		return Sponsor{}, invalid("sponsor", MessageSponsor)
	}
	return Sponsor{value: n}, nil
}

func (s Sponsor) String() string { return strconv.FormatInt(s.value, 10) }

// Int64 returns the sponsorship amount.
func (s Sponsor) Int64() int64 { return s.value }

// Equal reports whether both amounts are the same.
func (s Sponsor) Equal(other Sponsor) bool { return s.value == other.value }

// Count is a non-negative tally such as goals, appearances or wins.
// The zero value is a valid count of zero.
type Count struct {
	value int
}

// NewCount validates a tally. Label names the tally in the error message.
func NewCount(label, raw string) (Count, error) {
	n, ok := parseNonNegative(strings.TrimSpace(raw))
	if !ok || n > math.MaxInt32 {
		return Count{}, invalid(strings.ToLower(label), label+" should be a non-negative integer")
	}
	return Count{value: int(n)}, nil
}

// CountParser returns a constructor bound to label.
func CountParser(label string) func(string) (Count, error) {
	return func(raw string) (Count, error) { return NewCount(label, raw) }
}

func (c Count) String() string { return strconv.Itoa(c.value) }

// Int returns the tally.
func (c Count) Int() int { return c.value }

// Equal reports whether both tallies are the same.
func (c Count) Equal(other Count) bool { return c.value == other.value }

// JerseyNumber is a shirt number, unique within a team.
type JerseyNumber struct {
	value int
}

// NewJerseyNumber validates a jersey number.
func NewJerseyNumber(raw string) (JerseyNumber, error) {
	n, ok := parseNonNegative(strings.TrimSpace(raw))
	if !ok || n < MinJersey || n > MaxJersey {
		return JerseyNumber{}, invalid("jersey", MessageJerseyNumber)
	}
	return JerseyNumber{value: int(n)}, nil
}

func (j JerseyNumber) String() string { return strconv.Itoa(j.value) }

// Int returns the number.
func (j JerseyNumber) Int() int { return j.value }

// Equal reports whether both numbers are the same.
func (j JerseyNumber) Equal(other JerseyNumber) bool { return j.value == other.value }

// Date is a calendar day.
type Date struct {
	value time.Time
}

// NewDate validates a YYYY-MM-DD date.
func NewDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, invalid("date", MessageDate)
	}
	return Date{value: t}, nil
}

func (d Date) String() string { return d.value.Format(DateLayout) }

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time { return d.value }

// Equal reports whether both dates are the same day.
func (d Date) Equal(other Date) bool { return d.value.Equal(other.value) }

// Compare orders dates chronologically.
func (d Date) Compare(other Date) int { return d.value.Compare(other.value) }

// Money is a signed amount used by the finance projection.
type Money struct {
	value int64
}

// MoneyOf wraps an amount.
func MoneyOf(amount int64) Money { return Money{value: amount} }

// ParseMoney validates a signed integer amount.
func ParseMoney(raw string) (Money, error) {
	raw = strings.TrimSpace(raw)
	if !signedRegex.MatchString(raw) {
		return Money{}, invalid("amount", MessageMoney)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Money{}, invalid("amount", MessageMoney)
	}
	return Money{value: n}, nil
}

func (m Money) String() string { return strconv.FormatInt(m.value, 10) }

// Int64 returns the amount.
func (m Money) Int64() int64 { return m.value }

// Equal reports whether both amounts are the same.
func (m Money) Equal(other Money) bool { return m.value == other.value }

// Display formats the amount with thousands separators.
func (m Money) Display() string {
	return message.NewPrinter(language.English).Sprintf("%d", m.value)
}
