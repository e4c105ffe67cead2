package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the slug uniqueness index on events and the eventId
// lookup index on bookings. The unique index is the storage-level backstop
// for slug collisions that slip past the application-level check.
func EnsureIndexes(ctx context.Context, conn ClientProvider, db string) error {
	client, err := conn.Acquire(ctx)
	if err != nil {
		return err
	}

	events := client.Database(db).Collection(eventsCollection)
	_, err = events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create slug index: %w", err)
	}

	bookings := client.Database(db).Collection(bookingsCollection)
	_, err = bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "eventId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create eventId index: %w", err)
	}
	return nil
}
