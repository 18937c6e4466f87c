package game

import (
	"strconv"
	"strings"

	"league-le/internal/domain"
)

// Column ids scored by the evaluator. The name column is the label of a
// guess row and is never scored.
const (
	ColumnTeam    = "team"
	ColumnLeague  = "league"
	ColumnRole    = "role"
	ColumnCountry = "country"
	ColumnAge     = "age"
)

// Ages this close to the target count as a hint.
const ageCloseRange = 3

// Evaluate scores a guess against the target, one verdict per column. Each
// column is independent. The overall result is id equality alone; matching
// every attribute of a different player is still not a win.
func Evaluate(guess, target *domain.Player, roster []domain.Player) domain.Evaluation {
	columns := map[string]domain.Verdict{
		ColumnLeague:  exactOrNone(guess.League == target.League),
		ColumnRole:    exactOrNone(guess.Role == target.Role),
		ColumnCountry: compareCountry(guess.Country(), target.Country()),
		ColumnAge:     compareAge(guess.Age(), target.Age()),
		ColumnTeam:    compareTeam(guess, target, roster),
	}

	return domain.Evaluation{
		Columns: columns,
		Correct: guess.ID == target.ID,
	}
}

func exactOrNone(equal bool) domain.Verdict {
	if equal {
		return domain.VerdictExact
	}
	return domain.VerdictNone
}

// compareCountry is exact string equality after normalization. An unknown
// target country can never be matched.
func compareCountry(guess, target string) domain.Verdict {
	if target == domain.Unknown || target == "" {
		return domain.VerdictNone
	}
	return exactOrNone(normalize(guess) == normalize(target))
}

func compareAge(guess, target string) domain.Verdict {
	if target == domain.Unknown || target == "" {
		return domain.VerdictNone
	}

	guessAge, ok := parseAge(guess)
	if !ok {
		return domain.VerdictNone
	}
	targetAge, ok := parseAge(target)
	if !ok {
		return domain.VerdictNone
	}

	diff := guessAge - targetAge
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff == 0:
		return domain.VerdictExact
	case diff <= ageCloseRange:
		return domain.VerdictClose
	default:
		return domain.VerdictNone
	}
}

// compareTeam falls back to league proximity: a wrong team still hints when
// some rostered player on the guessed team plays in the same league as the
// target's team.
func compareTeam(guess, target *domain.Player, roster []domain.Player) domain.Verdict {
	if guess.Team == target.Team {
		return domain.VerdictExact
	}

	guessMate := findByTeam(roster, guess.Team)
	targetMate := findByTeam(roster, target.Team)
	if guessMate != nil && targetMate != nil && guessMate.League == targetMate.League {
		return domain.VerdictClose
	}
	return domain.VerdictNone
}

func findByTeam(roster []domain.Player, team string) *domain.Player {
	for i := range roster {
		if roster[i].Team == team {
			return &roster[i]
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseAge strips everything but digits before parsing, so values like
// "27 years" still compare.
func parseAge(s string) (int, bool) {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	age, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return age, true
}
