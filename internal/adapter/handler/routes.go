package handler

import "net/http"

func RegisterRoutes(mux *http.ServeMux, bookings *BookingHandler, seats *SeatHandler) {
	mux.HandleFunc("POST /bookings", bookings.CreateBooking)
	mux.HandleFunc("GET /bookings/{id}", bookings.GetBooking)
	mux.HandleFunc("DELETE /bookings/{id}", bookings.CancelBooking)
	mux.HandleFunc("GET /shows/{id}/seats", seats.GetSeats)
}
