package mongodb

import (
	"context"
	"testing"
	"time"

	"eventline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBookingRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns the generated id", func(mt *mtest.T) {
		repo := NewBookingRepository(staticProvider{mt.Client}, mt.DB.Name())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		b := &domain.Booking{
			EventID: primitive.NewObjectID().Hex(),
			Email:   "alice@example.com",
		}
		require.NoError(t, repo.Create(context.Background(), b))
		assert.NotEmpty(t, b.ID)
	})

	mt.Run("malformed event id never reaches the store", func(mt *mtest.T) {
		repo := NewBookingRepository(staticProvider{mt.Client}, mt.DB.Name())

		b := &domain.Booking{EventID: "nope", Email: "alice@example.com"}
		err := repo.Create(context.Background(), b)
		require.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Nil(t, mt.GetStartedEvent(), "no command should have been sent")
	})
}

func TestBookingRepository_ListByEventID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters on the event id", func(mt *mtest.T) {
		repo := NewBookingRepository(staticProvider{mt.Client}, mt.DB.Name())
		eventID := primitive.NewObjectID()
		now := time.Now().Truncate(time.Millisecond)
		ns := mt.DB.Name() + "." + bookingsCollection
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "eventId", Value: eventID},
			{Key: "email", Value: "alice@example.com"},
			{Key: "createdAt", Value: now},
			{Key: "updatedAt", Value: now},
		})
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "eventId", Value: eventID},
			{Key: "email", Value: "bob@example.com"},
			{Key: "createdAt", Value: now},
			{Key: "updatedAt", Value: now},
		})
		mt.AddMockResponses(first, second)

		got, err := repo.ListByEventID(context.Background(), eventID.Hex())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "alice@example.com", got[0].Email)
		assert.Equal(t, eventID.Hex(), got[0].EventID)

		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "find", started.CommandName)
		sent := started.Command.Lookup("filter", "eventId")
		assert.Equal(t, eventID, sent.ObjectID())
	})

	mt.Run("malformed event id", func(mt *mtest.T) {
		repo := NewBookingRepository(staticProvider{mt.Client}, mt.DB.Name())

		_, err := repo.ListByEventID(context.Background(), "nope")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
