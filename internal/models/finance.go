package models

import "fmt"

// Finance is the derived money position of one team: sponsorship income
// against the salaries of the team's players.
type Finance struct {
	team    TeamName
	income  Money
	payroll Money
}

// NewFinance builds a finance record.
func NewFinance(team TeamName, income, payroll Money) Finance {
	return Finance{team: team, income: income, payroll: payroll}
}

func (f Finance) Team() TeamName { return f.team }
func (f Finance) Income() Money  { return f.income }
func (f Finance) Payroll() Money { return f.payroll }

// Balance is income minus payroll.
func (f Finance) Balance() Money {
	return MoneyOf(f.income.Int64() - f.payroll.Int64())
}

// SameAs reports whether both records belong to the same team.
func (f Finance) SameAs(other Finance) bool { return f.team.EqualFold(other.team) }

// Equal reports whether every field matches.
func (f Finance) Equal(other Finance) bool {
	return f.team.Equal(other.team) && f.income.Equal(other.income) && f.payroll.Equal(other.payroll)
}

func (f Finance) String() string {
	return fmt.Sprintf("%s; Income: %s; Payroll: %s; Balance: %s",
		f.team, f.income.Display(), f.payroll.Display(), f.Balance().Display())
}
