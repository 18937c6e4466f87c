package repository

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"league-le/internal/game"
	"league-le/internal/store"
)

func TestSessionRoundTrip(t *testing.T) {
	repo := NewSessionRepository(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	roster := game.FixtureRoster()
	sess := game.NewSession("2025-03-03", "lck", roster[0])
	_, err := sess.Submit(roster[2], roster)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, "tok", sess))

	loaded, err := repo.Get(ctx, "tok", "lck", "2025-03-03")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, sess.Target.ID, loaded.Target.ID)
	assert.Equal(t, sess.State, loaded.State)
	assert.Equal(t, 1, loaded.AttemptsUsed)
	require.Len(t, loaded.Guesses, 1)
	assert.Equal(t, roster[2].ID, loaded.Guesses[0].Player.ID)
}

func TestSessionGetMissing(t *testing.T) {
	repo := NewSessionRepository(store.NewMemoryStore(), zerolog.Nop())

	sess, err := repo.Get(context.Background(), "tok", "lck", "2025-03-03")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionGetCorrupt(t *testing.T) {
	st := store.NewMemoryStore()
	repo := NewSessionRepository(st, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, sessionKey("tok", "lck", "2025-03-03"), "{broken"))

	sess, err := repo.Get(ctx, "tok", "lck", "2025-03-03")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestSessionScopedKeys(t *testing.T) {
	repo := NewSessionRepository(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	roster := game.FixtureRoster()
	require.NoError(t, repo.Save(ctx, "alice", game.NewSession("2025-03-03", "lck", roster[0])))

	// Different token, league or date each miss.
	for _, q := range []struct{ token, league, date string }{
		{"bob", "lck", "2025-03-03"},
		{"alice", "lec", "2025-03-03"},
		{"alice", "lck", "2025-03-04"},
	} {
		sess, err := repo.Get(ctx, q.token, q.league, q.date)
		require.NoError(t, err)
		assert.Nil(t, sess, "token=%s league=%s date=%s", q.token, q.league, q.date)
	}
}

func TestSessionDelete(t *testing.T) {
	repo := NewSessionRepository(store.NewMemoryStore(), zerolog.Nop())
	ctx := context.Background()

	sess := game.NewSession("2025-03-03", "lck", game.FixtureRoster()[0])
	require.NoError(t, repo.Save(ctx, "tok", sess))
	require.NoError(t, repo.Delete(ctx, "tok", "lck", "2025-03-03"))

	loaded, err := repo.Get(ctx, "tok", "lck", "2025-03-03")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
