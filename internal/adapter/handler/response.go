package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/srgjo27/movie_booking/internal/core/domain"
)

type errorResponse struct {
	Error   string  `json:"error"`
	SeatIDs []int64 `json:"seat_ids,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("failed to write response")
	}
}

// writeError maps domain error kinds onto status codes. Anything it does not
// recognise is reported as a 500 without leaking the cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &conflict):
		writeJSON(w, r, http.StatusConflict, errorResponse{Error: err.Error(), SeatIDs: conflict.SeatIDs})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidData):
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		writeJSON(w, r, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrBusy):
		w.Header().Set("Retry-After", "1")
		writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: "show is busy, retry later"})
	default:
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
