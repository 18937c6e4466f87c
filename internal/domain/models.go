package domain

// Unknown is the placeholder for enrichment fields the upstream could not
// provide. Comparisons against it never produce a hint.
const Unknown = "N/A"

// Player is one roster entry. The core fields come from the esports roster
// feed and are always present; Enrichment is filled in lazily from the wiki
// and may be nil for a player nobody has guessed yet.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	League string `json:"league"`
	Role   string `json:"role"`
	Image  string `json:"image,omitempty"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// Enrichment carries the biographical fields looked up per player.
type Enrichment struct {
	Country            string      `json:"country"`
	CountryCode        string      `json:"countryCode,omitempty"`
	Age                string      `json:"age"`
	Image              string      `json:"image,omitempty"`
	SocialMedia        SocialMedia `json:"socialMedia"`
	SignatureChampions []string    `json:"signatureChampions,omitempty"`
}

type SocialMedia struct {
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitch    string `json:"twitch,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Discord   string `json:"discord,omitempty"`
}

// Country returns the enriched country or the unknown placeholder.
func (p *Player) Country() string {
	if p.Enrichment == nil || p.Enrichment.Country == "" {
		return Unknown
	}
	return p.Enrichment.Country
}

// Age returns the enriched age or the unknown placeholder.
func (p *Player) Age() string {
	if p.Enrichment == nil || p.Enrichment.Age == "" {
		return Unknown
	}
	return p.Enrichment.Age
}

// Enriched reports whether the player already carries usable biographical
// data, so a second lookup can be skipped.
func (p *Player) Enriched() bool {
	return p.Enrichment != nil &&
		p.Enrichment.Country != "" && p.Enrichment.Country != Unknown &&
		p.Enrichment.Age != "" && p.Enrichment.Age != Unknown
}

// Verdict classifies one compared attribute, or a whole guess.
type Verdict string

const (
	VerdictExact Verdict = "exact"
	VerdictClose Verdict = "close"
	VerdictNone  Verdict = "none"
)

// Evaluation is the scored outcome of comparing a guess to the target.
type Evaluation struct {
	Columns map[string]Verdict `json:"columns"`
	Correct bool               `json:"correct"`
}

// Overall collapses an evaluation into the single verdict recorded in game
// history: exact on a correct guess, close when any scored column produced
// a hint, none otherwise.
func (e Evaluation) Overall() Verdict {
	if e.Correct {
		return VerdictExact
	}
	for _, v := range e.Columns {
		if v == VerdictExact || v == VerdictClose {
			return VerdictClose
		}
	}
	return VerdictNone
}

// GuessEntry is one accepted guess. Entries are stored in submission order,
// first guess at index zero.
type GuessEntry struct {
	Player     Player     `json:"player"`
	Evaluation Evaluation `json:"evaluation"`
}

// GameResult is the terminal snapshot of a finished session, written once
// into the stats ledger.
type GameResult struct {
	Won          bool      `json:"won"`
	AttemptsUsed int       `json:"attemptsUsed"`
	Verdicts     []Verdict `json:"verdicts"`
	LeagueID     string    `json:"leagueId"`
	Date         string    `json:"date"` // YYYY-MM-DD
	TargetName   string    `json:"targetName,omitempty"`
}

// ResultID identifies one (date, league) play and makes ledger writes
// idempotent.
func (r GameResult) ResultID() string {
	return "game_" + r.Date + "_" + r.LeagueID
}

// GameStats is the persisted aggregate for one game id. The per-league and
// global views are derived from History, never double-maintained.
type GameStats struct {
	GamesPlayed       int          `json:"gamesPlayed"`
	GamesWon          int          `json:"gamesWon"`
	CurrentStreak     int          `json:"currentStreak"`
	MaxStreak         int          `json:"maxStreak"`
	GuessDistribution []int        `json:"guessDistribution"`
	LastPlayed        string       `json:"lastPlayed"`
	History           []GameResult `json:"history"`
}

// WinRate is the rounded win percentage, zero before the first game.
func (s *GameStats) WinRate() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	return int(float64(s.GamesWon)/float64(s.GamesPlayed)*100 + 0.5)
}

// MaxDistributionValue is the largest bucket in the guess distribution,
// floored at 1 so proportional bars never divide by zero.
func (s *GameStats) MaxDistributionValue() int {
	max := 1
	for _, n := range s.GuessDistribution {
		if n > max {
			max = n
		}
	}
	return max
}
