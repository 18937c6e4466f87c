package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"league-le/internal/constants"
	"league-le/internal/game"
	"league-le/internal/store"

	"github.com/rs/zerolog"
)

// SessionRepository persists play sessions as serialized snapshots keyed by
// (game, league, date, caller). A missing key means no session yet, not an
// error.
type SessionRepository struct {
	store  store.Store
	logger zerolog.Logger
}

func NewSessionRepository(st store.Store, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{store: st, logger: logger}
}

func sessionKey(token, leagueID, date string) string {
	return fmt.Sprintf("session_%s_%s_%s_%s", constants.GameID, leagueID, date, token)
}

func (r *SessionRepository) Get(ctx context.Context, token, leagueID, date string) (*game.Session, error) {
	value, err := r.store.Get(ctx, sessionKey(token, leagueID, date))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess game.Session
	if err := json.Unmarshal([]byte(value), &sess); err != nil {
		r.logger.Warn().Err(err).
			Str("league", leagueID).
			Str("date", date).
			Msg("corrupt session entry, discarding")
		return nil, nil
	}
	return &sess, nil
}

func (r *SessionRepository) Save(ctx context.Context, token string, sess *game.Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.store.Set(ctx, sessionKey(token, sess.LeagueID, sess.Date), string(payload))
}

func (r *SessionRepository) Delete(ctx context.Context, token, leagueID, date string) error {
	return r.store.Delete(ctx, sessionKey(token, leagueID, date))
}
