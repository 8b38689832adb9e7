package domain

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidData  = errors.New("invalid data")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
	// ErrBusy is returned when exclusive access to a show could not be
	// obtained within the configured wait.
	ErrBusy = errors.New("busy")
)

const (
	ResourceUser    = "user"
	ResourceShow    = "show"
	ResourceSeat    = "seat"
	ResourceBooking = "booking"
)

type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFound(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: strconv.FormatInt(id, 10)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ConflictError lists the requested seats that were already occupied at
// claim time, in request order.
type ConflictError struct {
	SeatIDs []int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("seats already booked: %v", e.SeatIDs)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
