package game

import (
	"errors"
	"time"

	"league-le/internal/constants"
	"league-le/internal/domain"
)

// State is the lifecycle phase of one (date, league) play.
type State string

const (
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateGuessing State = "guessing"
	StateOver     State = "over"
)

var (
	ErrSessionOver    = errors.New("game: session is over")
	ErrDuplicateGuess = errors.New("game: player already guessed")
)

// Session is the mutable play state for one (game, league, day) instance.
// Its methods are pure transitions over the struct; all I/O (roster fetch,
// enrichment, persistence) happens in the service layer around it and feeds
// players in.
type Session struct {
	Date         string             `json:"date"` // YYYY-MM-DD
	LeagueID     string             `json:"leagueId"`
	Target       domain.Player      `json:"target"`
	Guesses      []domain.GuessEntry `json:"guesses"`
	AttemptsUsed int                `json:"attemptsUsed"`
	State        State              `json:"state"`
	Won          bool               `json:"won"`
	MaxAttempts  int                `json:"maxAttempts"`
}

func NewSession(date, leagueID string, target domain.Player) *Session {
	return &Session{
		Date:        date,
		LeagueID:    leagueID,
		Target:      target,
		State:       StateReady,
		MaxAttempts: constants.MaxAttempts,
	}
}

func (s *Session) Over() bool {
	return s.State == StateOver
}

// Submit scores an already-resolved guess and advances the state machine.
// Duplicate guesses and guesses after the terminal state are rejected
// without mutating anything. Exactly one terminal transition happens per
// session: on the winning guess or on exhausting the attempt budget.
func (s *Session) Submit(guess domain.Player, roster []domain.Player) (domain.GuessEntry, error) {
	if s.Over() {
		return domain.GuessEntry{}, ErrSessionOver
	}

	for _, prev := range s.Guesses {
		if prev.Player.ID == guess.ID {
			return domain.GuessEntry{}, ErrDuplicateGuess
		}
	}

	entry := domain.GuessEntry{
		Player:     guess,
		Evaluation: Evaluate(&guess, &s.Target, roster),
	}

	s.Guesses = append(s.Guesses, entry)
	s.AttemptsUsed++
	s.State = StateGuessing

	if entry.Evaluation.Correct {
		s.Won = true
		s.State = StateOver
	} else if s.AttemptsUsed >= s.MaxAttempts {
		s.State = StateOver
	}

	return entry, nil
}

// Result builds the terminal snapshot for the stats ledger. Only meaningful
// once the session is over.
func (s *Session) Result() domain.GameResult {
	verdicts := make([]domain.Verdict, len(s.Guesses))
	for i, entry := range s.Guesses {
		verdicts[i] = entry.Evaluation.Overall()
	}

	return domain.GameResult{
		Won:          s.Won,
		AttemptsUsed: s.AttemptsUsed,
		Verdicts:     verdicts,
		LeagueID:     s.LeagueID,
		Date:         s.Date,
		TargetName:   s.Target.Name,
	}
}

// Expired reports whether the session belongs to an earlier calendar day.
// Expired sessions are discarded and rebuilt, never patched in place.
func (s *Session) Expired(now time.Time) bool {
	return s.Date != DateKey(now)
}

// DateKey is the calendar-day key in the server's local timezone.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// TimeUntilNextGame is the duration until the next local midnight, when a
// fresh target becomes available.
func TimeUntilNextGame(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
