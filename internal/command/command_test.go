package command

import (
	"fmt"
	"strings"
	"testing"

	"github.com/guilhermegouw/leaguebook/internal/models"
	"github.com/guilhermegouw/leaguebook/internal/record"
)

func must[T any](t *testing.T, v T, err error) T {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return v
}

func newPlayer(t *testing.T, name, team, jersey string) models.Player {
	t.Helper()
	return models.NewPlayer(models.PlayerParams{
		Name:        must(t, models.NewName(name)),
		Position:    must(t, models.NewPosition("CM")),
		Age:         must(t, models.NewAge("24")),
		Salary:      must(t, models.NewSalary("1000")),
		Team:        must(t, models.NewTeamName(team)),
		Country:     must(t, models.NewCountry("Spain")),
		Jersey:      must(t, models.NewJerseyNumber(jersey)),
		Health:      must(t, models.NewHealthStatus("HEALTHY")),
		Goals:       must(t, models.NewCount("Goals", "0")),
		Assists:     must(t, models.NewCount("Assists", "0")),
		Appearances: must(t, models.NewCount("Appearances", "0")),
	})
}

func newTeam(t *testing.T, name string) models.Team {
	t.Helper()
	return models.NewTeam(models.TeamParams{
		Name:    must(t, models.NewTeamName(name)),
		Country: must(t, models.NewCountry("Spain")),
		Sponsor: must(t, models.NewSponsor("5000")),
	})
}

// run executes c and applies its result to views, the way the controller does.
func run(t *testing.T, lg *record.League, views *Views, c Command) Result {
	t.Helper()
	r := c.Execute(Env{League: lg, Views: *views})
	views.Apply(r)
	return r
}

func TestAddPlayerDuplicate(t *testing.T) {
	lg := record.New()
	views := &Views{}
	messi := newPlayer(t, "Lionel Messi", "FC_BARCELONA", "10")

	r := run(t, lg, views, AddPlayer{Player: messi})
	if !strings.HasPrefix(r.Feedback, "New player added: Lionel Messi") {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}

	r = run(t, lg, views, AddPlayer{Player: newPlayer(t, "Lionel Messi", "PSG", "30")})
	if r.Feedback != MessageDuplicatePlayer {
		t.Errorf("Expected %q, got %q", MessageDuplicatePlayer, r.Feedback)
	}

	r = run(t, lg, views, AddPlayer{Player: newPlayer(t, "Pedri", "FC_BARCELONA", "10")})
	if r.Feedback != "Jersey number 10 is already taken in team FC_BARCELONA" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
	if len(lg.Players()) != 1 {
		t.Errorf("Expected 1 player, got %d", len(lg.Players()))
	}
}

func TestDeleteOnEmptyLeague(t *testing.T) {
	lg := record.New()
	r := run(t, lg, &Views{}, DeletePlayer{Index: 1})
	if r.Feedback != "The player index provided is invalid" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestIndexStability(t *testing.T) {
	for i := 1; i <= 3; i++ {
		t.Run(fmt.Sprintf("delete %d", i), func(t *testing.T) {
			lg := record.New()
			views := &Views{}
			for j, name := range []string{"Alpha", "Bravo", "Charlie"} {
				_ = lg.AddPlayer(newPlayer(t, name, "T", fmt.Sprint(j+1)))
			}
			_ = run(t, lg, views, SortPlayers{})
			listed := run(t, lg, views, ListPlayers{}).Players
			target := listed[i-1]

			r := run(t, lg, views, DeletePlayer{Index: i})
			if !strings.HasPrefix(r.Feedback, "Deleted Player: "+target.Name().String()) {
				t.Errorf("Unexpected feedback %q", r.Feedback)
			}
			if lg.HasPlayer(target) || len(lg.Players()) != 2 {
				t.Errorf("Expected %s to be removed", target.Name())
			}
		})
	}

	t.Run("out of bounds leaves league unchanged", func(t *testing.T) {
		lg := record.New()
		views := &Views{}
		_ = lg.AddPlayer(newPlayer(t, "Alpha", "T", "1"))
		_ = run(t, lg, views, ListPlayers{})

		for _, idx := range []int{0, 2, 99} {
			r := run(t, lg, views, DeletePlayer{Index: idx})
			if r.Feedback != "The player index provided is invalid" {
				t.Errorf("Index %d: unexpected feedback %q", idx, r.Feedback)
			}
		}
		if len(lg.Players()) != 1 {
			t.Error("Expected league unchanged")
		}
	})
}

func TestStaleIndex(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddPlayer(newPlayer(t, "Alpha", "T", "1"))
	_ = run(t, lg, views, ListPlayers{})

	_ = run(t, lg, views, DeletePlayer{Index: 1})
	r := run(t, lg, views, ViewPlayer{Index: 1})
	if r.Feedback != "This player is not in the record" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestEditPlayer(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddPlayer(newPlayer(t, "Alpha", "T", "1"))
	_ = lg.AddPlayer(newPlayer(t, "Bravo", "T", "2"))
	_ = run(t, lg, views, ListPlayers{})

	t.Run("changes fields", func(t *testing.T) {
		age := must(t, models.NewAge("30"))
		r := run(t, lg, views, EditPlayer{Index: 1, Edit: PlayerEdit{Age: &age}})
		if !strings.HasPrefix(r.Feedback, "Edited Player: Alpha") {
			t.Errorf("Unexpected feedback %q", r.Feedback)
		}
		got, _ := lg.FindPlayer(must(t, models.NewName("Alpha")))
		if got.Age().Int() != 30 {
			t.Errorf("Expected age 30, got %d", got.Age().Int())
		}
	})

	t.Run("later edits reach the current version", func(t *testing.T) {
		goals := must(t, models.NewCount("Goals", "7"))
		_ = run(t, lg, views, EditPlayer{Index: 1, Edit: PlayerEdit{Goals: &goals}})
		got, _ := lg.FindPlayer(must(t, models.NewName("Alpha")))
		if got.Age().Int() != 30 || got.Goals().Int() != 7 {
			t.Errorf("Expected both edits applied, got %s", got)
		}
	})

	t.Run("jersey clash", func(t *testing.T) {
		jersey := must(t, models.NewJerseyNumber("2"))
		r := run(t, lg, views, EditPlayer{Index: 1, Edit: PlayerEdit{Jersey: &jersey}})
		if r.Feedback != "Jersey number 2 is already taken in team T" {
			t.Errorf("Unexpected feedback %q", r.Feedback)
		}
	})

	t.Run("clear tags", func(t *testing.T) {
		empty := models.NewTagSet()
		_ = run(t, lg, views, EditPlayer{Index: 2, Edit: PlayerEdit{Tags: &empty}})
		got, _ := lg.FindPlayer(must(t, models.NewName("Bravo")))
		if got.Tags().Len() != 0 {
			t.Error("Expected tags cleared")
		}
	})
}

func TestFindPlayers(t *testing.T) {
	lg := record.New()
	views := &Views{}
	for j, name := range []string{"Lionel Messi", "Cristiano Ronaldo", "Messiah Jones", "Leo Messi"} {
		_ = lg.AddPlayer(newPlayer(t, name, "T", fmt.Sprint(j+1)))
	}

	r := run(t, lg, views, FindPlayers{Keywords: []string{"Messi", "Ronaldo"}})
	if r.Feedback != "3 players listed!" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
	want := []string{"Lionel Messi", "Cristiano Ronaldo", "Leo Messi"}
	for i, p := range r.Players {
		if p.Name().String() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], p.Name())
		}
	}
	if views.Players.Len() != 3 {
		t.Errorf("Expected viewport of 3, got %d", views.Players.Len())
	}

	r = run(t, lg, views, FindPlayers{Keywords: []string{"messi"}})
	if len(r.Players) != 0 {
		t.Error("Expected case-sensitive match")
	}
}

func TestTransferPlayer(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddTeam(newTeam(t, "FC_BARCELONA"))
	_ = lg.AddTeam(newTeam(t, "PSG"))
	messi := newPlayer(t, "Messi", "FC_BARCELONA", "10")
	_ = lg.AddPlayer(messi)
	_ = lg.AddPlayer(newPlayer(t, "Mbappe", "PSG", "30"))

	r := run(t, lg, views, TransferPlayer{
		Name:   messi.Name(),
		Team:   must(t, models.NewTeamName("PSG")),
		Jersey: must(t, models.NewJerseyNumber("30")),
	})
	if r.Feedback != "Jersey number 30 is already taken in team PSG" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
	got, _ := lg.FindPlayer(messi.Name())
	if !got.Equal(messi) {
		t.Error("Expected player unchanged")
	}

	r = run(t, lg, views, TransferPlayer{
		Name:   messi.Name(),
		Team:   must(t, models.NewTeamName("PSG")),
		Jersey: must(t, models.NewJerseyNumber("19")),
	})
	if r.Feedback != "Transferred Messi from FC_BARCELONA to PSG with jersey number 19" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestTeamCommands(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = run(t, lg, views, AddTeam{Team: newTeam(t, "Arsenal")})

	r := run(t, lg, views, AddTeam{Team: newTeam(t, "arsenal")})
	if r.Feedback != MessageDuplicateTeam {
		t.Errorf("Expected duplicate team message, got %q", r.Feedback)
	}

	_ = run(t, lg, views, ListTeams{})
	wins := must(t, models.NewCount("Wins", "3"))
	r = run(t, lg, views, EditTeam{Index: 1, Edit: TeamEdit{Wins: &wins}})
	if !strings.Contains(r.Feedback, "Points: 9") {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}

	r = run(t, lg, views, DeleteTeam{Index: 2})
	if r.Feedback != "The team index provided is invalid" {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestMatchCommands(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddTeam(newTeam(t, "Arsenal"))
	_ = lg.AddTeam(newTeam(t, "Chelsea"))
	m := must(t, models.NewMatch(models.MatchParams{
		Date: must(t, models.NewDate("2024-05-01")),
		Home: must(t, models.NewTeamName("Arsenal")),
		Away: must(t, models.NewTeamName("Chelsea")),
	}))

	_ = run(t, lg, views, AddMatch{Match: m})
	if r := run(t, lg, views, AddMatch{Match: m}); r.Feedback != MessageDuplicateMatch {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}

	r := run(t, lg, views, FindMatches{Keywords: []string{"Chelsea"}})
	if len(r.Matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(r.Matches))
	}

	away := must(t, models.NewTeamName("ARSENAL"))
	if r := run(t, lg, views, EditMatch{Index: 1, Edit: MatchEdit{Away: &away}}); r.Feedback != MessageSameTeam {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}

	if r := run(t, lg, views, DeleteMatch{Index: 1}); !strings.HasPrefix(r.Feedback, "Deleted Match") {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestDeleteTeamWithMatches(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddTeam(newTeam(t, "Arsenal"))
	_ = lg.AddTeam(newTeam(t, "Chelsea"))
	_ = run(t, lg, views, AddMatch{Match: must(t, models.NewMatch(models.MatchParams{
		Date: must(t, models.NewDate("2024-01-01")),
		Home: must(t, models.NewTeamName("Arsenal")),
		Away: must(t, models.NewTeamName("Chelsea")),
	}))})

	_ = run(t, lg, views, ListTeams{})
	if r := run(t, lg, views, DeleteTeam{Index: 1}); r.Feedback != MessageTeamHasMatches {
		t.Fatalf("Unexpected feedback %q", r.Feedback)
	}

	_ = run(t, lg, views, ListMatches{})
	_ = run(t, lg, views, DeleteMatch{Index: 1})
	_ = run(t, lg, views, ListTeams{})
	if r := run(t, lg, views, DeleteTeam{Index: 1}); r.Feedback != "Deleted Team: "+newTeam(t, "Arsenal").String() {
		t.Errorf("Unexpected feedback %q", r.Feedback)
	}
}

func TestNonListResultsKeepViews(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddPlayer(newPlayer(t, "Alpha", "T", "1"))
	_ = run(t, lg, views, ListPlayers{})

	_ = run(t, lg, views, AddPlayer{Player: newPlayer(t, "Bravo", "T", "2")})
	_ = run(t, lg, views, Help{})
	if views.Players.Len() != 1 {
		t.Errorf("Expected viewport untouched, got %d entries", views.Players.Len())
	}
}

func TestListFinancesAndClear(t *testing.T) {
	lg := record.New()
	views := &Views{}
	_ = lg.AddTeam(newTeam(t, "Arsenal"))
	_ = lg.AddPlayer(newPlayer(t, "Alpha", "Arsenal", "1"))

	r := run(t, lg, views, ListFinances{})
	if r.Kind != KindFinances || len(r.Finances) != 1 {
		t.Fatalf("Unexpected result %+v", r)
	}
	if r.Finances[0].Balance().Int64() != 4000 {
		t.Errorf("Expected balance 4000, got %d", r.Finances[0].Balance().Int64())
	}

	r = run(t, lg, views, Clear{})
	if r.Feedback != MessageClear || len(lg.Teams()) != 0 {
		t.Error("Expected league cleared")
	}
}

func TestHelpAndExit(t *testing.T) {
	r := Help{}.Execute(Env{})
	if !r.Markdown || !strings.Contains(r.Feedback, "addPlayer") {
		t.Error("Expected markdown help listing addPlayer")
	}
	if !(Exit{}).Execute(Env{}).Exit {
		t.Error("Expected exit flag")
	}
}
