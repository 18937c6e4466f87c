package middleware

import (
	"context"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

const PlayerTokenKey contextKey = "player_token"

// PlayerTokenHeader carries the anonymous identity that scopes
// sessions and stats. Clients send it back on every request.
const PlayerTokenHeader = "X-Player-Token"

// PlayerToken ensures every request carries a player token, minting a
// fresh one when the client has none. The token is echoed on the
// response so first-time clients can persist it.
func PlayerToken(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(PlayerTokenHeader)
			if token == "" {
				generated, err := gonanoid.New()
				if err != nil {
					logger.Error().Err(err).Msg("failed to generate player token")
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				token = generated
				logger.Debug().Str("player_token", token).Msg("minted player token")
			}

			w.Header().Set(PlayerTokenHeader, token)

			ctx := context.WithValue(r.Context(), PlayerTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetPlayerToken(ctx context.Context) string {
	if token, ok := ctx.Value(PlayerTokenKey).(string); ok {
		return token
	}
	return ""
}
