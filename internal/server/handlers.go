package server

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"league-le/internal/domain"
	"league-le/internal/errors"
	"league-le/internal/game"
	"league-le/internal/middleware"
	"league-le/internal/service"
)

type Server struct {
	games  *service.GameService
	enrich *service.EnrichmentService
	logger zerolog.Logger
}

func New(games *service.GameService, enrich *service.EnrichmentService, logger zerolog.Logger) *Server {
	return &Server{
		games:  games,
		enrich: enrich,
		logger: logger.With().Str("component", "server").Logger(),
	}
}

// sessionView is the client-facing shape of a session. The target stays
// hidden until the session is over so the payload never spoils the answer
// mid-game.
type sessionView struct {
	Date              string              `json:"date"`
	LeagueID          string              `json:"leagueId"`
	State             game.State          `json:"state"`
	AttemptsUsed      int                 `json:"attemptsUsed"`
	MaxAttempts       int                 `json:"maxAttempts"`
	Won               bool                `json:"won"`
	Guesses           []domain.GuessEntry `json:"guesses"`
	Target            *domain.Player      `json:"target,omitempty"`
	TimeUntilNextGame int64               `json:"timeUntilNextGame"`
}

func (s *Server) sessionToView(sess *game.Session) sessionView {
	view := sessionView{
		Date:              sess.Date,
		LeagueID:          sess.LeagueID,
		State:             sess.State,
		AttemptsUsed:      sess.AttemptsUsed,
		MaxAttempts:       sess.MaxAttempts,
		Won:               sess.Won,
		Guesses:           sess.Guesses,
		TimeUntilNextGame: int64(s.games.TimeUntilNextGame().Seconds()),
	}
	if view.Guesses == nil {
		view.Guesses = []domain.GuessEntry{}
	}
	if sess.Over() {
		view.Target = &sess.Target
	}
	return view
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) Leagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"leagues": game.LeagueScopes,
		"major":   game.MajorLeagues,
	})
}

func (s *Server) Roster(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]

	players, err := s.games.Roster(r.Context(), leagueID)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"players": players})
}

func (s *Server) Daily(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]

	player, err := s.games.Daily(r.Context(), leagueID)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	// Name only by default; the full record spoils every column at once.
	if r.URL.Query().Get("reveal") != "1" {
		writeJSON(w, http.StatusOK, map[string]any{
			"player": map[string]string{"name": player.Name},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"player": player})
}

func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]
	term := r.URL.Query().Get("q")

	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		exclude = strings.Split(raw, ",")
	}

	names, err := s.games.Suggest(r.Context(), leagueID, term, exclude)
	if err != nil {
		s.writeServiceError(w, r, err, term)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": names})
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]
	token := middleware.GetPlayerToken(r.Context())

	sess, err := s.games.Session(r.Context(), token, leagueID)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, s.sessionToView(sess))
}

type guessRequest struct {
	Guess string `json:"guess"`
}

type guessResponse struct {
	Entry   domain.GuessEntry `json:"entry"`
	Session sessionView       `json:"session"`
}

func (s *Server) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]
	token := middleware.GetPlayerToken(r.Context())

	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.InvalidRequestBody("Request body must be JSON with a guess field"))
		return
	}
	req.Guess = strings.TrimSpace(req.Guess)
	if req.Guess == "" {
		errors.WriteError(w, errors.InvalidRequestBody("Guess must not be empty"))
		return
	}

	sess, entry, err := s.games.SubmitGuess(r.Context(), token, leagueID, req.Guess)
	if err != nil {
		s.writeServiceError(w, r, err, req.Guess)
		return
	}

	writeJSON(w, http.StatusOK, guessResponse{
		Entry:   *entry,
		Session: s.sessionToView(sess),
	})
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	leagueID := mux.Vars(r)["league"]
	token := middleware.GetPlayerToken(r.Context())

	stats, err := s.games.Stats(r.Context(), token, leagueID)
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Details enriches an arbitrary player with biographical data. It backs
// reveal screens that need country, age and socials for a named player.
func (s *Server) Details(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("playerName"))
	if name == "" {
		errors.WriteError(w, errors.InvalidRequestBody("playerName query parameter is required"))
		return
	}

	player := domain.Player{
		Name:   name,
		Team:   query.Get("team"),
		League: query.Get("league"),
		Role:   query.Get("role"),
	}
	player = s.enrich.Enrich(r.Context(), player)

	writeJSON(w, http.StatusOK, map[string]any{"player": player})
}

func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, term string) {
	var apiErr *errors.APIError
	leagueID := mux.Vars(r)["league"]

	switch {
	case goerrors.Is(err, service.ErrInvalidLeague):
		apiErr = errors.InvalidLeague(leagueID)
	case goerrors.Is(err, service.ErrUnknownPlayer):
		apiErr = errors.PlayerNotFound(term)
	case goerrors.Is(err, service.ErrLeagueMismatch):
		apiErr = errors.LeagueMismatch(term)
	case goerrors.Is(err, service.ErrNoPlayers):
		apiErr = errors.NoRoster(leagueID)
	case goerrors.Is(err, game.ErrDuplicateGuess):
		apiErr = errors.DuplicateGuess(term)
	case goerrors.Is(err, game.ErrSessionOver):
		apiErr = errors.SessionOver()
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		apiErr = errors.InternalError("Something went wrong")
	}

	errors.WriteError(w, apiErr)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
