package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorCode is a stable machine-readable code clients can switch on.
type ErrorCode string

const (
	ErrCodeInvalidRequestBody ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeInvalidLeague      ErrorCode = "INVALID_LEAGUE"
	ErrCodePlayerNotFound     ErrorCode = "PLAYER_NOT_FOUND"
	ErrCodeLeagueMismatch     ErrorCode = "LEAGUE_MISMATCH"
	ErrCodeDuplicateGuess     ErrorCode = "DUPLICATE_GUESS"
	ErrCodeSessionOver        ErrorCode = "SESSION_OVER"
	ErrCodeNoRoster           ErrorCode = "NO_ROSTER"
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured error response.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Status  int       `json:"-"`
}

func (apiError *APIError) Error() string {
	return apiError.Message
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewAPIError(code ErrorCode, message string, status int) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func InvalidRequestBody(message string) *APIError {
	return NewAPIError(ErrCodeInvalidRequestBody, message, http.StatusBadRequest)
}

func InvalidLeague(leagueID string) *APIError {
	return NewAPIError(ErrCodeInvalidLeague, "Unknown league: "+leagueID, http.StatusBadRequest)
}

func PlayerNotFound(term string) *APIError {
	return NewAPIError(ErrCodePlayerNotFound, "No player matches: "+term, http.StatusNotFound)
}

func LeagueMismatch(term string) *APIError {
	return NewAPIError(ErrCodeLeagueMismatch, "Player is not in the selected league: "+term, http.StatusBadRequest)
}

func DuplicateGuess(term string) *APIError {
	return NewAPIError(ErrCodeDuplicateGuess, "Player already guessed: "+term, http.StatusConflict)
}

func SessionOver() *APIError {
	return NewAPIError(ErrCodeSessionOver, "Today's game is already over", http.StatusConflict)
}

func NoRoster(leagueID string) *APIError {
	return NewAPIError(ErrCodeNoRoster, "No players available today for league: "+leagueID, http.StatusNotFound)
}

func InternalError(message string) *APIError {
	return NewAPIError(ErrCodeInternalError, message, http.StatusInternalServerError)
}

// WriteError writes a JSON error response to the http.ResponseWriter.
func WriteError(writer http.ResponseWriter, apiError *APIError) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(apiError.Status)

	errorResponse := ErrorResponse{
		Error: ErrorDetail{
			Code:    apiError.Code,
			Message: apiError.Message,
		},
	}

	json.NewEncoder(writer).Encode(errorResponse)
}
