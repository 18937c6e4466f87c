package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"league-le/internal/constants"
	"league-le/internal/domain"
	"league-le/internal/game"
	"league-le/internal/store"

	"github.com/rs/zerolog"
)

// Ledger is the durable per-league statistics store. One entry per
// (date, league) ever makes it into history; everything aggregate is
// recomputed from history for the cross-league view so the numbers can't
// drift apart.
type Ledger struct {
	store  store.Store
	logger zerolog.Logger
}

func NewLedger(st store.Store, logger zerolog.Logger) *Ledger {
	return &Ledger{store: st, logger: logger}
}

func statsKey(token, leagueID string) string {
	return fmt.Sprintf("game_stats_%s_%s_%s", constants.GameID, leagueID, token)
}

// Record appends a finished game to the caller's stats for its league.
// Idempotent per calendar day: a result for an already-recorded
// (date, league) is a no-op, so duplicate terminal-state firings don't
// double-count.
func (l *Ledger) Record(ctx context.Context, token string, result domain.GameResult) error {
	key := statsKey(token, result.LeagueID)
	stats, err := l.load(ctx, key)
	if err != nil {
		return err
	}

	for _, entry := range stats.History {
		if entry.ResultID() == result.ResultID() {
			l.logger.Debug().
				Str("league", result.LeagueID).
				Str("date", result.Date).
				Msg("result already recorded, skipping")
			return nil
		}
	}

	stats.GamesPlayed++
	stats.LastPlayed = result.Date

	if result.Won {
		stats.GamesWon++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.MaxStreak {
			stats.MaxStreak = stats.CurrentStreak
		}
		if idx := result.AttemptsUsed - 1; idx >= 0 && idx < len(stats.GuessDistribution) {
			stats.GuessDistribution[idx]++
		}
	} else {
		stats.CurrentStreak = 0
	}

	stats.History = append([]domain.GameResult{result}, stats.History...)
	if len(stats.History) > constants.MaxHistorySize {
		stats.History = stats.History[:constants.MaxHistorySize]
	}

	return l.save(ctx, key, stats)
}

// Stats returns the aggregate for one league scope. The "all" scope is a
// derived read merging every per-league history, never a separately
// maintained counter set.
func (l *Ledger) Stats(ctx context.Context, token, leagueID string) (domain.GameStats, error) {
	if leagueID != "all" {
		return l.load(ctx, statsKey(token, leagueID))
	}

	var merged []domain.GameResult
	for _, scope := range game.LeagueScopes {
		stats, err := l.load(ctx, statsKey(token, scope))
		if err != nil {
			return domain.GameStats{}, err
		}
		merged = append(merged, stats.History...)
	}

	return aggregate(merged), nil
}

func (l *Ledger) load(ctx context.Context, key string) (domain.GameStats, error) {
	value, err := l.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return freshStats(), nil
	}
	if err != nil {
		return domain.GameStats{}, err
	}

	var stats domain.GameStats
	if err := json.Unmarshal([]byte(value), &stats); err != nil {
		l.logger.Warn().Err(err).Str("key", key).Msg("corrupt stats entry, starting fresh")
		return freshStats(), nil
	}
	if len(stats.GuessDistribution) != constants.MaxAttempts {
		dist := make([]int, constants.MaxAttempts)
		copy(dist, stats.GuessDistribution)
		stats.GuessDistribution = dist
	}
	return stats, nil
}

func (l *Ledger) save(ctx context.Context, key string, stats domain.GameStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	return l.store.Set(ctx, key, string(payload))
}

func freshStats() domain.GameStats {
	return domain.GameStats{
		GuessDistribution: make([]int, constants.MaxAttempts),
		History:           []domain.GameResult{},
	}
}

// aggregate rebuilds counters from a merged history, replaying results in
// chronological order so streaks come out the same as the write path.
func aggregate(history []domain.GameResult) domain.GameStats {
	sort.SliceStable(history, func(a, b int) bool {
		return history[a].Date < history[b].Date
	})

	stats := freshStats()
	for _, result := range history {
		stats.GamesPlayed++
		stats.LastPlayed = result.Date
		if result.Won {
			stats.GamesWon++
			stats.CurrentStreak++
			if stats.CurrentStreak > stats.MaxStreak {
				stats.MaxStreak = stats.CurrentStreak
			}
			if idx := result.AttemptsUsed - 1; idx >= 0 && idx < len(stats.GuessDistribution) {
				stats.GuessDistribution[idx]++
			}
		} else {
			stats.CurrentStreak = 0
		}
	}

	// History reads most-recent-first.
	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}
	stats.History = history
	if len(stats.History) > constants.MaxHistorySize {
		stats.History = stats.History[:constants.MaxHistorySize]
	}
	if stats.History == nil {
		stats.History = []domain.GameResult{}
	}
	return stats
}
