package game

import "strings"

// MajorLeagues are the raw league names eligible for daily play. Roster
// filtering and the "all" scope are both defined against this list.
var MajorLeagues = []string{"LEC", "LCK", "LCS", "LPL", "LTA North", "LTA South"}

// LeagueScopes lists the logical league ids the service accepts.
var LeagueScopes = []string{"all", "lec", "lck", "lcs", "lpl", "lta", "lta-north", "lta-south"}

// ResolveLeagueFilter maps a logical league id to the raw league names it
// covers. Umbrella ids expand to several leagues; anything unrecognized is
// uppercased and matched verbatim.
func ResolveLeagueFilter(leagueID string) []string {
	switch strings.ToLower(leagueID) {
	case "", "all":
		filter := make([]string, len(MajorLeagues))
		copy(filter, MajorLeagues)
		return filter
	case "lta":
		return []string{"LTA North", "LTA South"}
	case "lta-north":
		return []string{"LTA North"}
	case "lta-south":
		return []string{"LTA South"}
	default:
		return []string{strings.ToUpper(leagueID)}
	}
}

// ValidLeagueScope reports whether the id is one of the supported scopes.
func ValidLeagueScope(leagueID string) bool {
	id := strings.ToLower(leagueID)
	for _, scope := range LeagueScopes {
		if id == scope {
			return true
		}
	}
	return false
}

func inFilter(league string, filter []string) bool {
	for _, name := range filter {
		if league == name {
			return true
		}
	}
	return false
}
