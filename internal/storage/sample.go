package storage

import "github.com/guilhermegouw/leaguebook/internal/record"

// SampleLeague returns the starter league used when no data has been saved.
func SampleLeague() (*record.League, error) {
	return Decode(sampleDocument())
}

func sampleDocument() Document {
	return Document{
		Teams: []TeamRecord{
			{Name: "FC_BARCELONA", Country: "Spain", Sponsor: "150000000", Wins: "25", Draws: "7", Losses: "6", Tags: []string{"LaLiga"}},
			{Name: "PSG", Country: "France", Sponsor: "120000000", Wins: "27", Draws: "6", Losses: "5", Tags: []string{"Ligue1"}},
			{Name: "Arsenal", Country: "England", Sponsor: "90000000", Wins: "26", Draws: "6", Losses: "6", Tags: []string{"PremierLeague"}},
		},
		Players: []PlayerRecord{
			{
				Name: "Lionel Messi", Position: "RW", Age: "36", Salary: "20000000", Goals: "30", Assists: "25",
				Team: "PSG", Country: "Argentina", Jersey: "30", Appearances: "40", Health: "HEALTHY", Tags: []string{"GOAT"},
			},
			{
				Name: "Kylian Mbappe", Position: "ST", Age: "25", Salary: "30000000", Goals: "41", Assists: "10",
				Team: "PSG", Country: "France", Jersey: "7", Appearances: "43", Health: "HEALTHY", Tags: []string{},
			},
			{
				Name: "Robert Lewandowski", Position: "ST", Age: "35", Salary: "15000000", Goals: "23", Assists: "8",
				Team: "FC_BARCELONA", Country: "Poland", Jersey: "9", Appearances: "35", Health: "RECOVERING", Tags: []string{"Captain"},
			},
			{
				Name: "Bukayo Saka", Position: "RW", Age: "22", Salary: "10000000", Goals: "16", Assists: "11",
				Team: "Arsenal", Country: "England", Jersey: "7", Appearances: "35", Health: "INJURED", Tags: []string{},
			},
		},
		Matches: []MatchRecord{
			{Date: "2024-03-06", Home: "FC_BARCELONA", Away: "PSG", Tags: []string{"ChampionsLeague"}},
			{Date: "2024-04-17", Home: "PSG", Away: "Arsenal", Tags: []string{}},
		},
	}
}
