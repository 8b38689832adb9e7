package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent is emitted after a booking transaction commits.
type BookingEvent struct {
	Type       EventType `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     int64     `json:"user_id"`
	ShowID     int64     `json:"show_id"`
	SeatIDs    []int64   `json:"seat_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(t EventType, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		UserID:     b.UserID,
		ShowID:     b.ShowID,
		SeatIDs:    b.SeatIDs,
		OccurredAt: at,
	}
}
