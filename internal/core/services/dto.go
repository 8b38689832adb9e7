package services

import (
	"fmt"
	"time"

	"github.com/srgjo27/movie_booking/internal/core/domain"
)

type CreateBookingRequest struct {
	UserID  int64   `json:"user_id"`
	ShowID  int64   `json:"show_id"`
	SeatIDs []int64 `json:"seat_ids"`
}

type BookingResponse struct {
	BookingID   string  `json:"booking_id"`
	UserID      int64   `json:"user_id"`
	ShowID      int64   `json:"show_id"`
	SeatIDs     []int64 `json:"seat_ids"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CancelledAt string  `json:"cancelled_at,omitempty"`
}

type CancelBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type SeatsResponse struct {
	ShowID    int64         `json:"show_id"`
	Available int           `json:"available"`
	Seats     []domain.Seat `json:"seats"`
}

func NewBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		BookingID: b.ID.String(),
		UserID:    b.UserID,
		ShowID:    b.ShowID,
		SeatIDs:   b.SeatIDs,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}

	return resp
}

func NewCancelBookingResponse(b *domain.Booking) CancelBookingResponse {
	return CancelBookingResponse{
		Message: fmt.Sprintf("booking with booking id %s is canceled", b.ID),
		Booking: NewBookingResponse(b),
	}
}

func NewSeatsResponse(s *ShowSeats) SeatsResponse {
	seats := s.Seats
	if seats == nil {
		seats = []domain.Seat{}
	}

	return SeatsResponse{ShowID: s.ShowID, Available: s.Available, Seats: seats}
}
