package handler

import (
	"net/http"
	"strconv"

	"github.com/srgjo27/movie_booking/internal/core/services"
)

type SeatHandler struct {
	svc *services.SeatService
}

func NewSeatHandler(svc *services.SeatService) *SeatHandler {
	return &SeatHandler{svc: svc}
}

func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || showID <= 0 {
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid show id"})
		return
	}

	seats, err := h.svc.ListSeats(r.Context(), showID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, services.NewSeatsResponse(seats))
}
