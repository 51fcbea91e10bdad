package command

import (
	"fmt"
	"strings"
)

// Usage documents one command verb.
type Usage struct {
	Verb    string
	Summary string
	Params  string
	Example string
}

func (u Usage) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", u.Verb, u.Summary)
	if u.Params != "" {
		fmt.Fprintf(&b, "\nParameters: %s", u.Params)
	}
	fmt.Fprintf(&b, "\nExample: %s", u.Example)
	return b.String()
}

// Usages of every verb, in help order.
var (
	UsageAddPlayer = Usage{
		Verb:    "addPlayer",
		Summary: "Adds a player to the league.",
		Params:  "NAME p/POSITION a/AGE sal/SALARY gs/GOALS_SCORED ga/GOALS_ASSISTED tm/TEAM ctry/COUNTRY jn/JERSEY_NUMBER app/APPEARANCES hs/HEALTH_STATUS [t/TAG]...",
		Example: "addPlayer Lionel Messi p/RW a/31 sal/20000000 gs/30 ga/25 tm/FC_BARCELONA ctry/Argentina jn/10 app/40 hs/HEALTHY t/GOAT",
	}
	UsageEditPlayer = Usage{
		Verb:    "edit",
		Summary: "Edits the player at INDEX in the last shown player list. At least one field must be given; t/ alone clears the tags.",
		Params:  "INDEX [n/NAME] [p/POSITION] [a/AGE] [sal/SALARY] [gs/GOALS_SCORED] [ga/GOALS_ASSISTED] [tm/TEAM] [ctry/COUNTRY] [jn/JERSEY_NUMBER] [app/APPEARANCES] [hs/HEALTH_STATUS] [t/TAG]...",
		Example: "edit 1 a/32 gs/31",
	}
	UsageDeletePlayer = Usage{
		Verb:    "delete",
		Summary: "Deletes the player at INDEX in the last shown player list.",
		Params:  "INDEX (must be a positive integer)",
		Example: "delete 1",
	}
	UsageViewPlayer = Usage{
		Verb:    "view",
		Summary: "Shows the details of the player at INDEX in the last shown player list.",
		Params:  "INDEX (must be a positive integer)",
		Example: "view 1",
	}
	UsageListPlayers = Usage{Verb: "list", Summary: "Lists all players.", Example: "list"}
	UsageFindPlayers = Usage{
		Verb:    "find",
		Summary: "Finds players whose names contain any of the given words (case-sensitive).",
		Params:  "KEYWORD [MORE_KEYWORDS]...",
		Example: "find Messi Ronaldo",
	}
	UsageSortPlayers    = Usage{Verb: "sort", Summary: "Sorts players by name.", Example: "sort"}
	UsageTransferPlayer = Usage{
		Verb:    "transfer",
		Summary: "Moves a player to another recorded team with a new jersey number.",
		Params:  "NAME tm/TEAM jn/JERSEY_NUMBER",
		Example: "transfer Lionel Messi tm/PSG jn/30",
	}

	UsageAddTeam = Usage{
		Verb:    "addTeam",
		Summary: "Adds a team to the league.",
		Params:  "TEAM_NAME c/COUNTRY s/SPONSORSHIP [w/WINS] [d/DRAWS] [l/LOSSES] [t/TAG]...",
		Example: "addTeam Arsenal c/England s/1000000 w/5 d/2 l/1",
	}
	UsageEditTeam = Usage{
		Verb:    "editTeam",
		Summary: "Edits the team at INDEX in the last shown team list. Renaming a team updates its players and matches.",
		Params:  "INDEX [n/TEAM_NAME] [c/COUNTRY] [s/SPONSORSHIP] [w/WINS] [d/DRAWS] [l/LOSSES] [t/TAG]...",
		Example: "editTeam 1 w/6",
	}
	UsageDeleteTeam = Usage{
		Verb:    "deleteTeam",
		Summary: "Deletes the team at INDEX in the last shown team list. A team that still plays in a recorded match cannot be deleted.",
		Params:  "INDEX (must be a positive integer)",
		Example: "deleteTeam 1",
	}
	UsageViewTeam = Usage{
		Verb:    "viewTeam",
		Summary: "Shows the details of the team at INDEX in the last shown team list.",
		Params:  "INDEX (must be a positive integer)",
		Example: "viewTeam 1",
	}
	UsageListTeams = Usage{Verb: "listTeam", Summary: "Lists all teams.", Example: "listTeam"}
	UsageFindTeams = Usage{
		Verb:    "findTeam",
		Summary: "Finds teams whose names contain any of the given words (case-sensitive).",
		Params:  "KEYWORD [MORE_KEYWORDS]...",
		Example: "findTeam Arsenal",
	}
	UsageSortTeams = Usage{Verb: "sortTeam", Summary: "Sorts teams by points, then fewest losses, then name.", Example: "sortTeam"}

	UsageAddMatch = Usage{
		Verb:    "addMatch",
		Summary: "Adds a match between two recorded teams.",
		Params:  "d/DATE(YYYY-MM-DD) home/HOME_TEAM away/AWAY_TEAM [t/TAG]...",
		Example: "addMatch d/2024-05-01 home/Arsenal away/Chelsea t/Derby",
	}
	UsageEditMatch = Usage{
		Verb:    "editMatch",
		Summary: "Edits the match at INDEX in the last shown match list.",
		Params:  "INDEX [d/DATE] [home/HOME_TEAM] [away/AWAY_TEAM] [t/TAG]...",
		Example: "editMatch 1 d/2024-05-02",
	}
	UsageDeleteMatch = Usage{
		Verb:    "deleteMatch",
		Summary: "Deletes the match at INDEX in the last shown match list.",
		Params:  "INDEX (must be a positive integer)",
		Example: "deleteMatch 1",
	}
	UsageListMatches = Usage{Verb: "listMatch", Summary: "Lists all matches.", Example: "listMatch"}
	UsageFindMatches = Usage{
		Verb:    "findMatch",
		Summary: "Finds matches whose home or away team names contain any of the given words (case-sensitive).",
		Params:  "KEYWORD [MORE_KEYWORDS]...",
		Example: "findMatch Arsenal",
	}

	UsageListFinances = Usage{Verb: "listFinance", Summary: "Recomputes and lists the finances of every team.", Example: "listFinance"}
	UsageClear        = Usage{Verb: "clear", Summary: "Removes every record from the league.", Example: "clear"}
	UsageHelp         = Usage{Verb: "help", Summary: "Shows the list of commands.", Example: "help"}
	UsageExit         = Usage{Verb: "exit", Summary: "Exits the program.", Example: "exit"}
)

// Usages lists every verb in help order.
var Usages = []Usage{
	UsageAddPlayer, UsageEditPlayer, UsageDeletePlayer, UsageViewPlayer,
	UsageListPlayers, UsageFindPlayers, UsageSortPlayers, UsageTransferPlayer,
	UsageAddTeam, UsageEditTeam, UsageDeleteTeam, UsageViewTeam,
	UsageListTeams, UsageFindTeams, UsageSortTeams,
	UsageAddMatch, UsageEditMatch, UsageDeleteMatch, UsageListMatches, UsageFindMatches,
	UsageListFinances, UsageClear, UsageHelp, UsageExit,
}

// HelpMarkdown renders every usage as a markdown document.
func HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# League commands\n\n")
	sections := []struct {
		title string
		verbs []Usage
	}{
		{"Players", Usages[0:8]},
		{"Teams", Usages[8:15]},
		{"Matches", Usages[15:20]},
		{"General", Usages[20:]},
	}
	for _, s := range sections {
		fmt.Fprintf(&b, "## %s\n\n", s.title)
		for _, u := range s.verbs {
			fmt.Fprintf(&b, "- **%s**: %s\n", u.Verb, u.Summary)
			if u.Params != "" {
				fmt.Fprintf(&b, "  `%s %s`\n", u.Verb, u.Params)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
