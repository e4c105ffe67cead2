package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"eventline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	cp := *b
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.EventID == eventID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeMailer records sent mail and can be told to fail.
type fakeMailer struct {
	sent []string // recipients
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func newTestBookingService(bookings *fakeBookingRepo, events *fakeEventRepo, mailer *fakeMailer) domain.BookingService {
	var m domain.Mailer
	if mailer != nil {
		m = mailer
	}
	return NewBookingService(bookings, events, m, discardLogger, 2*time.Second)
}

func seedEvent(t *testing.T, events *fakeEventRepo) *domain.Event {
	t.Helper()
	e := validEvent()
	require.NoError(t, newTestEventService(events).CreateEvent(context.Background(), e))
	return e
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("email is lowercased and trimmed", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		mailer := &fakeMailer{}
		svc := newTestBookingService(bookings, events, mailer)
		e := seedEvent(t, events)

		b, err := svc.CreateBooking(ctx, e.ID, "  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", b.Email)
		assert.Equal(t, e.ID, b.EventID)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, []string{"alice@example.com"}, mailer.sent)
	})

	t.Run("nonexistent event fails the integrity check, nothing persisted", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		svc := newTestBookingService(bookings, events, nil)

		_, err := svc.CreateBooking(ctx, "64f000000000000000000000", "alice@example.com")
		require.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Empty(t, bookings.bookings)
	})

	t.Run("invalid email fails validation, nothing persisted", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		svc := newTestBookingService(bookings, events, nil)
		e := seedEvent(t, events)

		for _, email := range []string{"", "not-an-email", "a@b", "spaces in@addr.ess"} {
			_, err := svc.CreateBooking(ctx, e.ID, email)
			require.ErrorIs(t, err, domain.ErrValidation, "email %q", email)
		}
		assert.Empty(t, bookings.bookings)
	})

	t.Run("mail failure does not fail the booking", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		mailer := &fakeMailer{err: errors.New("smtp down")}
		svc := newTestBookingService(bookings, events, mailer)
		e := seedEvent(t, events)

		b, err := svc.CreateBooking(ctx, e.ID, "bob@example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Len(t, bookings.bookings, 1)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		bookings.createErr = errors.New("insert failed")
		svc := newTestBookingService(bookings, events, nil)
		e := seedEvent(t, events)

		_, err := svc.CreateBooking(ctx, e.ID, "bob@example.com")
		require.Error(t, err)
	})
}

func TestBookingService_ListBookingsByEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns bookings for the event", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		svc := newTestBookingService(bookings, events, nil)
		e := seedEvent(t, events)

		_, err := svc.CreateBooking(ctx, e.ID, "a@example.com")
		require.NoError(t, err)
		_, err = svc.CreateBooking(ctx, e.ID, "b@example.com")
		require.NoError(t, err)

		got, err := svc.ListBookingsByEvent(ctx, e.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown event", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		svc := newTestBookingService(bookings, events, nil)

		_, err := svc.ListBookingsByEvent(ctx, "missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no bookings yields empty slice, not nil", func(t *testing.T) {
		events := newFakeEventRepo()
		bookings := newFakeBookingRepo()
		svc := newTestBookingService(bookings, events, nil)
		e := seedEvent(t, events)

		got, err := svc.ListBookingsByEvent(ctx, e.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}
