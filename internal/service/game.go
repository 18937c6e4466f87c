package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"league-le/internal/config"
	"league-le/internal/constants"
	"league-le/internal/domain"
	"league-le/internal/game"
	"league-le/internal/repository"
	"league-le/internal/stats"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidLeague  = errors.New("service: unknown league scope")
	ErrUnknownPlayer  = errors.New("service: no roster player matches that guess")
	ErrLeagueMismatch = errors.New("service: player is outside the selected league")
	ErrNoPlayers      = errors.New("service: no players available for this league today")
)

// GameService orchestrates sessions: loading the day's target, accepting
// guesses, persisting after every mutation and recording terminal results
// in the ledger. Submissions are serialized so attempts and history never
// interleave; persisted state is single-writer per caller token.
type GameService struct {
	roster   *RosterService
	enrich   *EnrichmentService
	sessions *repository.SessionRepository
	ledger   *stats.Ledger
	cfg      *config.Config
	clock    clock.Clock
	logger   zerolog.Logger

	mu sync.Mutex
}

func NewGameService(
	roster *RosterService,
	enrich *EnrichmentService,
	sessions *repository.SessionRepository,
	ledger *stats.Ledger,
	cfg *config.Config,
	c clock.Clock,
	logger zerolog.Logger,
) *GameService {
	return &GameService{
		roster:   roster,
		enrich:   enrich,
		sessions: sessions,
		ledger:   ledger,
		cfg:      cfg,
		clock:    c,
		logger:   logger,
	}
}

// Session returns the caller's session for today's date and the given
// league, creating and persisting a fresh one when none exists or when the
// stored one belongs to an earlier day.
func (s *GameService) Session(ctx context.Context, token, leagueID string) (*game.Session, error) {
	leagueID = strings.ToLower(leagueID)
	if !game.ValidLeagueScope(leagueID) {
		return nil, ErrInvalidLeague
	}

	now := s.clock.Now()
	date := game.DateKey(now)

	sess, err := s.sessions.Get(ctx, token, leagueID, date)
	if err != nil {
		s.logger.Warn().Err(err).Str("league", leagueID).Msg("session read failed, rebuilding in memory")
	}
	if sess != nil && !sess.Expired(now) {
		return sess, nil
	}

	roster := s.roster.Roster(ctx)
	strategy := game.NewStrategy(s.cfg.DevMode, leagueID, game.ResolveLeagueFilter(leagueID))
	target := strategy.SelectTarget(roster, now)
	if target == nil {
		return nil, ErrNoPlayers
	}

	enriched := s.enrich.Enrich(ctx, *target)
	sess = game.NewSession(date, leagueID, enriched)

	if err := s.sessions.Save(ctx, token, sess); err != nil {
		s.logger.Warn().Err(err).Str("league", leagueID).Msg("session write failed, continuing without durability")
	}

	s.logger.Info().
		Str("league", leagueID).
		Str("date", date).
		Str("target", target.Name).
		Msg("session created")

	return sess, nil
}

// SubmitGuess resolves the free-text term against the league's roster,
// scores it and advances the session. Validation failures (unknown player,
// out-of-scope player, duplicate) leave the session untouched.
func (s *GameService) SubmitGuess(ctx context.Context, token, leagueID, term string) (*game.Session, *domain.GuessEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.Session(ctx, token, leagueID)
	if err != nil {
		return nil, nil, err
	}
	if sess.Over() {
		return sess, nil, game.ErrSessionOver
	}

	scoped := s.roster.Index(ctx, leagueID)
	guess := scoped.FindExact(term)
	if guess == nil {
		if s.roster.Index(ctx, "all").FindExact(term) != nil {
			return sess, nil, ErrLeagueMismatch
		}
		return sess, nil, ErrUnknownPlayer
	}

	enrichedGuess, enrichedTarget := s.enrich.EnrichPair(ctx, *guess, sess.Target)
	sess.Target = enrichedTarget

	entry, err := sess.Submit(enrichedGuess, s.roster.Roster(ctx))
	if err != nil {
		return sess, nil, err
	}

	if err := s.sessions.Save(ctx, token, sess); err != nil {
		s.logger.Warn().Err(err).Str("league", leagueID).Msg("session write failed, continuing without durability")
	}

	if sess.Over() {
		if err := s.ledger.Record(ctx, token, sess.Result()); err != nil {
			s.logger.Warn().Err(err).Str("league", leagueID).Msg("failed to record game result")
		}
		s.logger.Info().
			Str("league", leagueID).
			Bool("won", sess.Won).
			Int("attempts", sess.AttemptsUsed).
			Msg("game over")
	}

	return sess, &entry, nil
}

// Suggest returns ranked name suggestions within the league scope,
// excluding already-guessed ids.
func (s *GameService) Suggest(ctx context.Context, leagueID, term string, excludeIDs []string) ([]string, error) {
	if !game.ValidLeagueScope(leagueID) {
		return nil, ErrInvalidLeague
	}
	return s.roster.Index(ctx, leagueID).Suggest(term, constants.SearchSuggestionLimit, excludeIDs), nil
}

// Stats returns the caller's ledger aggregate for a league, or the derived
// cross-league view for "all".
func (s *GameService) Stats(ctx context.Context, token, leagueID string) (domain.GameStats, error) {
	leagueID = strings.ToLower(leagueID)
	if !game.ValidLeagueScope(leagueID) {
		return domain.GameStats{}, ErrInvalidLeague
	}
	return s.ledger.Stats(ctx, token, leagueID)
}

// Daily returns today's target for the league, enriched. This reveals the
// answer; clients use it for post-game screens and tooling.
func (s *GameService) Daily(ctx context.Context, leagueID string) (*domain.Player, error) {
	leagueID = strings.ToLower(leagueID)
	if !game.ValidLeagueScope(leagueID) {
		return nil, ErrInvalidLeague
	}

	roster := s.roster.Roster(ctx)
	strategy := game.NewStrategy(s.cfg.DevMode, leagueID, game.ResolveLeagueFilter(leagueID))
	target := strategy.SelectTarget(roster, s.clock.Now())
	if target == nil {
		return nil, ErrNoPlayers
	}

	enriched := s.enrich.Enrich(ctx, *target)
	return &enriched, nil
}

// Roster returns the deduplicated roster for a league scope.
func (s *GameService) Roster(ctx context.Context, leagueID string) ([]domain.Player, error) {
	if !game.ValidLeagueScope(leagueID) {
		return nil, ErrInvalidLeague
	}
	return s.roster.Index(ctx, leagueID).Players(), nil
}

// TimeUntilNextGame is the countdown to the next local day boundary.
func (s *GameService) TimeUntilNextGame() time.Duration {
	return game.TimeUntilNextGame(s.clock.Now())
}
