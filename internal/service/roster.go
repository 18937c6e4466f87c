package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"league-le/internal/api"
	"league-le/internal/constants"
	"league-le/internal/domain"
	"league-le/internal/game"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

// RosterService owns the current roster snapshot: fetched from the esports
// feed, filtered to the major leagues, deduplicated by handle, cached with
// a TTL. A feed failure degrades to the built-in fixture roster instead of
// blocking play.
type RosterService struct {
	esports *api.EsportsClient
	clock   clock.Clock
	logger  zerolog.Logger

	mu        sync.Mutex
	roster    []domain.Player
	fetchedAt time.Time
	fixture   bool
	indexes   map[string]*game.Index
}

func NewRosterService(esports *api.EsportsClient, c clock.Clock, logger zerolog.Logger) *RosterService {
	return &RosterService{
		esports: esports,
		clock:   c,
		logger:  logger,
		indexes: make(map[string]*game.Index),
	}
}

// Roster returns the cached roster, refreshing it from the feed when the
// TTL has lapsed. It never fails: when the feed is down or empty the
// fixture roster is served and the condition is logged.
func (s *RosterService) Roster(ctx context.Context) []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.roster != nil && now.Sub(s.fetchedAt) < constants.RosterCacheTTL {
		return s.roster
	}

	roster, err := s.fetch(ctx)
	if err != nil || len(roster) == 0 {
		s.logger.Warn().Err(err).Msg("roster feed unavailable, falling back to fixture roster")
		roster = game.FixtureRoster()
		s.fixture = true
	} else {
		s.fixture = false
	}

	s.roster = roster
	s.fetchedAt = now
	s.indexes = make(map[string]*game.Index)

	s.logger.Info().
		Int("players", len(roster)).
		Bool("fixture", s.fixture).
		Msg("roster loaded")

	return s.roster
}

// Index returns the search index for one league scope, built lazily per
// roster snapshot.
func (s *RosterService) Index(ctx context.Context, leagueID string) *game.Index {
	roster := s.Roster(ctx)

	scope := strings.ToLower(leagueID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.indexes[scope]; ok {
		return idx
	}

	scoped := game.FilterByLeague(roster, game.ResolveLeagueFilter(scope))
	idx := game.NewIndex(scoped)
	s.indexes[scope] = idx
	return idx
}

func (s *RosterService) fetch(ctx context.Context) ([]domain.Player, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.esports.GetTeams(apiCtx)
	if err != nil {
		return nil, err
	}

	var roster []domain.Player
	seen := make(map[string]bool)
	for _, team := range resp.Data.Teams {
		if !inMajorLeagues(team.HomeLeague.Name) {
			continue
		}
		for _, player := range team.Players {
			if player.SummonerName == "" || seen[player.SummonerName] {
				continue
			}
			seen[player.SummonerName] = true
			roster = append(roster, domain.Player{
				ID:     player.SummonerName,
				Name:   player.SummonerName,
				Team:   team.Name,
				League: team.HomeLeague.Name,
				Role:   player.Role,
				Image:  player.Image,
			})
		}
	}

	return roster, nil
}

func inMajorLeagues(league string) bool {
	for _, name := range game.MajorLeagues {
		if league == name {
			return true
		}
	}
	return false
}
