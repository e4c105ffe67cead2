package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventline/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService wires the booking service to the event repository it
// uses for the referential-integrity check. The dependency is resolved here,
// at construction time, not per call.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	mailer domain.Mailer,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateBooking verifies the referenced event exists, validates the booking,
// and commits. The existence check and the insert are two separate store
// operations; an event removed in between would leave a dangling reference,
// which is accepted under the single-writer assumption.
func (s *bookingService) CreateBooking(ctx context.Context, eventID, email string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("check event: %w", err)
	}

	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	booking := &domain.Booking{
		EventID:   eventID,
		Email:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := domain.Validate(booking); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// Confirmation mail is best effort: the booking is already committed
	// and a mail failure must not undo it.
	if s.mailer != nil {
		if err := s.sendConfirmation(booking, event); err != nil {
			s.logger.Warn("booking confirmation email failed",
				"booking_id", booking.ID, "email", booking.Email, "err", err)
		}
	}
	return booking, nil
}

func (s *bookingService) ListBookingsByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) sendConfirmation(b *domain.Booking, e *domain.Event) error {
	subject := fmt.Sprintf("Your spot at %s is confirmed", e.Title)
	text := fmt.Sprintf(
		"You're booked for %s on %s at %s (%s).\n\nSee you there!",
		e.Title, e.Date, e.Time, e.Venue,
	)
	html := fmt.Sprintf(
		"<p>You're booked for <strong>%s</strong> on %s at %s (%s).</p><p>See you there!</p>",
		e.Title, e.Date, e.Time, e.Venue,
	)
	return s.mailer.Send(b.Email, subject, html, text)
}
