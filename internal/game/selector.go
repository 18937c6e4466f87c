package game

import (
	"math/rand/v2"
	"time"

	"league-le/internal/domain"
)

// SelectionStrategy picks the target player for a given date from a roster.
// Implementations must not reorder the roster: selection indexes into the
// filtered list as-is, so source order is part of the contract.
type SelectionStrategy interface {
	SelectTarget(roster []domain.Player, date time.Time) *domain.Player
}

// NewStrategy returns the strategy for a league scope. Production play uses
// the deterministic daily hash; dev mode picks uniformly at random. The LEC
// scope is pinned to exactly the LEC so EMEA feeder rosters never leak in.
func NewStrategy(devMode bool, leagueID string, leagueFilter []string) SelectionStrategy {
	if leagueID == "lec" {
		leagueFilter = []string{"LEC"}
	}
	if devMode {
		return NewRandomStrategy(leagueFilter)
	}
	return NewDailyStrategy(leagueID, leagueFilter)
}

// DailyStrategy selects by hashing the calendar date and league id, so the
// same (roster, date, league) always lands on the same player.
type DailyStrategy struct {
	leagueID     string
	leagueFilter []string
}

func NewDailyStrategy(leagueID string, leagueFilter []string) *DailyStrategy {
	return &DailyStrategy{leagueID: leagueID, leagueFilter: leagueFilter}
}

func (s *DailyStrategy) SelectTarget(roster []domain.Player, date time.Time) *domain.Player {
	filtered := FilterByLeague(roster, s.leagueFilter)
	if len(filtered) == 0 {
		return nil
	}

	seed := DailySeed(date, s.leagueID)
	return &filtered[seed%len(filtered)]
}

// DailySeed folds YYYYMMDD plus the league id into a non-negative integer
// using signed 32-bit string hashing. Different league ids on the same date
// produce different seeds.
func DailySeed(date time.Time, leagueID string) int {
	combined := date.Format("20060102") + leagueID

	var hash int32
	for _, c := range combined {
		hash = (hash << 5) - hash + int32(c)
	}

	seed := int64(hash)
	if seed < 0 {
		seed = -seed
	}
	return int(seed)
}

// RandomStrategy selects uniformly at random. Dev/testing only.
type RandomStrategy struct {
	leagueFilter []string
	intn         func(n int) int
}

func NewRandomStrategy(leagueFilter []string) *RandomStrategy {
	return &RandomStrategy{leagueFilter: leagueFilter, intn: rand.IntN}
}

func (s *RandomStrategy) SelectTarget(roster []domain.Player, _ time.Time) *domain.Player {
	filtered := FilterByLeague(roster, s.leagueFilter)
	if len(filtered) == 0 {
		return nil
	}
	return &filtered[s.intn(len(filtered))]
}

// FilterByLeague keeps the players whose league is in the filter,
// preserving roster order.
func FilterByLeague(roster []domain.Player, filter []string) []domain.Player {
	if len(filter) == 0 {
		return roster
	}
	filtered := make([]domain.Player, 0, len(roster))
	for _, p := range roster {
		if inFilter(p.League, filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
