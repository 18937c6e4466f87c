package game

import (
	"testing"

	"league-le/internal/domain"
)

func evalRoster() []domain.Player {
	return []domain.Player{
		{ID: "faker", Name: "Faker", Team: "T1", League: "LCK", Role: "mid",
			Enrichment: &domain.Enrichment{Country: "South Korea", Age: "27"}},
		{ID: "chovy", Name: "Chovy", Team: "Gen.G", League: "LCK", Role: "mid",
			Enrichment: &domain.Enrichment{Country: "South Korea", Age: "24"}},
		{ID: "caps", Name: "Caps", Team: "G2 Esports", League: "LEC", Role: "mid",
			Enrichment: &domain.Enrichment{Country: "Denmark", Age: "25"}},
		{ID: "blaber", Name: "Blaber", Team: "Cloud9", League: "LCS", Role: "jungle",
			Enrichment: &domain.Enrichment{Country: "United States", Age: "25"}},
	}
}

func playerByID(t *testing.T, roster []domain.Player, id string) *domain.Player {
	t.Helper()
	for i := range roster {
		if roster[i].ID == id {
			return &roster[i]
		}
	}
	t.Fatalf("player %s not in roster", id)
	return nil
}

func TestEvaluateCorrectGuess(t *testing.T) {
	roster := evalRoster()
	faker := playerByID(t, roster, "faker")

	eval := Evaluate(faker, faker, roster)
	if !eval.Correct {
		t.Fatal("guessing the target should be correct")
	}
	for col, verdict := range eval.Columns {
		if verdict != domain.VerdictExact {
			t.Errorf("column %s = %s, want exact", col, verdict)
		}
	}
	if eval.Overall() != domain.VerdictExact {
		t.Errorf("Overall() = %s, want exact", eval.Overall())
	}
}

func TestEvaluateSameLeagueRival(t *testing.T) {
	roster := evalRoster()
	guess := playerByID(t, roster, "faker")
	target := playerByID(t, roster, "chovy")

	eval := Evaluate(guess, target, roster)
	if eval.Correct {
		t.Fatal("different player must not be correct")
	}

	want := map[string]domain.Verdict{
		ColumnLeague:  domain.VerdictExact, // LCK = LCK
		ColumnRole:    domain.VerdictExact, // mid = mid
		ColumnCountry: domain.VerdictExact, // same country
		ColumnAge:     domain.VerdictClose, // |27-24| within the close range
		ColumnTeam:    domain.VerdictClose, // T1 and Gen.G share a league
	}
	for col, verdict := range want {
		if eval.Columns[col] != verdict {
			t.Errorf("column %s = %s, want %s", col, eval.Columns[col], verdict)
		}
	}
	if eval.Overall() != domain.VerdictClose {
		t.Errorf("Overall() = %s, want close", eval.Overall())
	}
}

func TestEvaluateCrossLeague(t *testing.T) {
	roster := evalRoster()
	guess := playerByID(t, roster, "caps")
	target := playerByID(t, roster, "blaber")

	eval := Evaluate(guess, target, roster)

	if eval.Columns[ColumnLeague] != domain.VerdictNone {
		t.Errorf("league = %s, want none", eval.Columns[ColumnLeague])
	}
	if eval.Columns[ColumnRole] != domain.VerdictNone {
		t.Errorf("role = %s, want none", eval.Columns[ColumnRole])
	}
	if eval.Columns[ColumnTeam] != domain.VerdictNone {
		t.Errorf("team = %s, want none", eval.Columns[ColumnTeam])
	}
	if eval.Columns[ColumnAge] != domain.VerdictExact {
		t.Errorf("age = %s, want exact for equal ages", eval.Columns[ColumnAge])
	}
}

func TestCompareAge(t *testing.T) {
	tests := []struct {
		guess, target string
		want          domain.Verdict
	}{
		{"24", "24", domain.VerdictExact},
		{"24", "27", domain.VerdictClose},
		{"27", "24", domain.VerdictClose},
		{"24", "28", domain.VerdictNone},
		{"24 years", "24", domain.VerdictExact}, // digits extracted
		{domain.Unknown, "24", domain.VerdictNone},
		{"24", domain.Unknown, domain.VerdictNone},
		{"abc", "24", domain.VerdictNone},
	}

	for _, tt := range tests {
		if got := compareAge(tt.guess, tt.target); got != tt.want {
			t.Errorf("compareAge(%q, %q) = %s, want %s", tt.guess, tt.target, got, tt.want)
		}
	}
}

func TestCompareCountry(t *testing.T) {
	tests := []struct {
		guess, target string
		want          domain.Verdict
	}{
		{"South Korea", "South Korea", domain.VerdictExact},
		{"south korea", "South Korea ", domain.VerdictExact},
		{"Denmark", "South Korea", domain.VerdictNone},
		{domain.Unknown, "South Korea", domain.VerdictNone},
		{"South Korea", domain.Unknown, domain.VerdictNone},
		{domain.Unknown, domain.Unknown, domain.VerdictNone},
	}

	for _, tt := range tests {
		if got := compareCountry(tt.guess, tt.target); got != tt.want {
			t.Errorf("compareCountry(%q, %q) = %s, want %s", tt.guess, tt.target, got, tt.want)
		}
	}
}

func TestCompareTeamUnknownTeams(t *testing.T) {
	roster := evalRoster()
	guess := &domain.Player{ID: "x", Name: "X", Team: "Nobody", League: "LCK", Role: "mid"}
	target := playerByID(t, roster, "faker")

	// A team absent from the roster yields no league to compare against.
	if got := compareTeam(guess, target, roster); got != domain.VerdictNone {
		t.Errorf("compareTeam with unknown team = %s, want none", got)
	}
}

func TestEvaluateMissingEnrichment(t *testing.T) {
	roster := evalRoster()
	guess := &domain.Player{ID: "bare", Name: "Bare", Team: "T1", League: "LCK", Role: "mid"}
	target := playerByID(t, roster, "chovy")

	eval := Evaluate(guess, target, roster)
	if eval.Columns[ColumnCountry] != domain.VerdictNone {
		t.Errorf("country without enrichment = %s, want none", eval.Columns[ColumnCountry])
	}
	if eval.Columns[ColumnAge] != domain.VerdictNone {
		t.Errorf("age without enrichment = %s, want none", eval.Columns[ColumnAge])
	}
}
