package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eventline/internal/domain"
)

const bookingsCollection = "bookings"

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventID   primitive.ObjectID `bson:"eventId"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *bookingDocument) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:        d.ID.Hex(),
		EventID:   d.EventID.Hex(),
		Email:     d.Email,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type bookingRepository struct {
	conn ClientProvider
	db   string
}

func NewBookingRepository(conn ClientProvider, db string) domain.BookingRepository {
	return &bookingRepository{conn: conn, db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	eventOID, err := primitive.ObjectIDFromHex(b.EventID)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid event id", domain.ErrEventNotFound, b.EventID)
	}
	client, err := r.conn.Acquire(ctx)
	if err != nil {
		return err
	}
	coll := client.Database(r.db).Collection(bookingsCollection)
	doc := &bookingDocument{
		EventID:   eventOID,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	eventOID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	client, err := r.conn.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	coll := client.Database(r.db).Collection(bookingsCollection)
	cursor, err := coll.Find(ctx, bson.M{"eventId": eventOID})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	bookings := make([]*domain.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, docs[i].toDomain())
	}
	return bookings, nil
}
