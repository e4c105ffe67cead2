package domain

import (
	"context"
	"time"
)

// Booking represents a reservation against an event. The pair is immutable
// once created; reassigning EventID re-runs the existence check.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id" validate:"required"`
	Email     string    `json:"email" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRepository defines booking storage.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService guards referential integrity: a booking is only committed
// after the referenced event has been confirmed to exist.
type BookingService interface {
	CreateBooking(ctx context.Context, eventID, email string) (*Booking, error)
	ListBookingsByEvent(ctx context.Context, eventID string) ([]*Booking, error)
}
