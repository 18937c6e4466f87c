package fx

import (
	"database/sql"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"league-le/internal/api"
	"league-le/internal/config"
	"league-le/internal/database"
	"league-le/internal/logger"
	"league-le/internal/repository"
	"league-le/internal/server"
	"league-le/internal/service"
	"league-le/internal/stats"
	"league-le/internal/store"
)

func ProvideClock() clock.Clock {
	return clock.New()
}

// ProvideStore opens the sqlite-backed store, falling back to an
// in-memory store when the database cannot be opened. The *sql.DB is
// nil in the fallback case; main guards the close.
func ProvideStore(cfg *config.Config, c clock.Clock, log zerolog.Logger) (store.Store, *sql.DB) {
	db, err := database.New(cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, using in-memory store")
		return store.NewMemoryStore(), nil
	}
	return store.NewSQLiteStore(db, c, log), db
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(ProvideClock),
	fx.Provide(ProvideStore),
	// persistence
	fx.Provide(repository.NewSessionRepository),
	fx.Provide(stats.NewLedger),
	// api clients
	fx.Provide(api.NewEsportsClient),
	fx.Provide(api.NewCargoClient),
	// svc
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewEnrichmentService),
	fx.Provide(service.NewGameService),
	// server
	fx.Provide(server.New),
)
