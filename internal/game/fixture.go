package game

import "league-le/internal/domain"

// FixtureRoster is the built-in roster used when the upstream feed is
// unavailable or returns nothing after filtering. Small but spanning every
// major league so each scope still has a daily target.
func FixtureRoster() []domain.Player {
	return []domain.Player{
		{ID: "Faker", Name: "Faker", Team: "T1", League: "LCK", Role: "mid"},
		{ID: "Keria", Name: "Keria", Team: "T1", League: "LCK", Role: "support"},
		{ID: "Chovy", Name: "Chovy", Team: "Gen.G", League: "LCK", Role: "mid"},
		{ID: "Peyz", Name: "Peyz", Team: "Gen.G", League: "LCK", Role: "bottom"},
		{ID: "Knight", Name: "Knight", Team: "Bilibili Gaming", League: "LPL", Role: "mid"},
		{ID: "Elk", Name: "Elk", Team: "Bilibili Gaming", League: "LPL", Role: "bottom"},
		{ID: "Gala", Name: "Gala", Team: "Royal Never Give Up", League: "LPL", Role: "bottom"},
		{ID: "Caps", Name: "Caps", Team: "G2 Esports", League: "LEC", Role: "mid"},
		{ID: "Hans Sama", Name: "Hans Sama", Team: "G2 Esports", League: "LEC", Role: "bottom"},
		{ID: "Humanoid", Name: "Humanoid", Team: "Fnatic", League: "LEC", Role: "mid"},
		{ID: "Razork", Name: "Razork", Team: "Fnatic", League: "LEC", Role: "jungle"},
		{ID: "Impact", Name: "Impact", Team: "FlyQuest", League: "LTA North", Role: "top"},
		{ID: "Inspired", Name: "Inspired", Team: "FlyQuest", League: "LTA North", Role: "jungle"},
		{ID: "Bwipo", Name: "Bwipo", Team: "FlyQuest", League: "LTA North", Role: "top"},
		{ID: "APA", Name: "APA", Team: "Team Liquid", League: "LTA North", Role: "mid"},
		{ID: "Yeon", Name: "Yeon", Team: "Team Liquid", League: "LTA North", Role: "bottom"},
		{ID: "Tinowns", Name: "Tinowns", Team: "paiN Gaming", League: "LTA South", Role: "mid"},
		{ID: "Route", Name: "Route", Team: "paiN Gaming", League: "LTA South", Role: "bottom"},
		{ID: "Berserker", Name: "Berserker", Team: "Cloud9", League: "LCS", Role: "bottom"},
		{ID: "Blaber", Name: "Blaber", Team: "Cloud9", League: "LCS", Role: "jungle"},
	}
}
