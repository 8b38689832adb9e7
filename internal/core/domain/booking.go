package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingActive    BookingStatus = "ACTIVE"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID          uuid.UUID
	UserID      int64
	ShowID      int64
	SeatIDs     []int64
	Status      BookingStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}

func NewBooking(id uuid.UUID, userID, showID int64, seatIDs []int64, now time.Time) *Booking {
	ids := make([]int64, len(seatIDs))
	copy(ids, seatIDs)

	return &Booking{
		ID:        id,
		UserID:    userID,
		ShowID:    showID,
		SeatIDs:   ids,
		Status:    BookingActive,
		CreatedAt: now,
	}
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingActive
}

// EnsureActive fails with ErrInvalidState unless the booking can still be
// cancelled.
func (b *Booking) EnsureActive() error {
	if !b.IsActive() {
		return fmt.Errorf("%w: booking %s is already %s", ErrInvalidState, b.ID, b.Status)
	}
	return nil
}

// Cancel moves an active booking to CANCELLED. A booking is never
// reactivated.
func (b *Booking) Cancel(now time.Time) error {
	if err := b.EnsureActive(); err != nil {
		return err
	}

	b.Status = BookingCancelled
	b.CancelledAt = &now

	return nil
}

// ValidateSeatSelection rejects empty selections, non-positive ids and
// duplicates.
func ValidateSeatSelection(seatIDs []int64) error {
	if len(seatIDs) == 0 {
		return fmt.Errorf("%w: no seats selected", ErrInvalidData)
	}

	seen := make(map[int64]struct{}, len(seatIDs))
	for _, id := range seatIDs {
		if id <= 0 {
			return fmt.Errorf("%w: invalid seat id %d", ErrInvalidData, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate seat id %d", ErrInvalidData, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
