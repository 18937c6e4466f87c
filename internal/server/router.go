package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"league-le/internal/middleware"
)

// NewRouter wires the HTTP surface. Game routes live under /api/v1 and
// require a player token, minted by the middleware when absent.
func NewRouter(srv *Server, logger zerolog.Logger) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", srv.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.PlayerToken(logger))

	api.HandleFunc("/leagues", srv.Leagues).Methods(http.MethodGet)
	api.HandleFunc("/roster/{league}", srv.Roster).Methods(http.MethodGet)
	api.HandleFunc("/daily/{league}", srv.Daily).Methods(http.MethodGet)
	api.HandleFunc("/suggest/{league}", srv.Suggest).Methods(http.MethodGet)
	api.HandleFunc("/session/{league}", srv.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/{league}/guess", srv.SubmitGuess).Methods(http.MethodPost)
	api.HandleFunc("/stats/{league}", srv.GetStats).Methods(http.MethodGet)
	api.HandleFunc("/details", srv.Details).Methods(http.MethodGet)

	return router
}
