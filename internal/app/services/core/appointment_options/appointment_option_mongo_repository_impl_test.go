package appointmentOptions

import (
	"context"
	"testing"

	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestAppointmentOptionMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("FindAll decodes options", func(mt *mtest.T) {
		repo := &AppointmentOptionMongoRepository{Collection: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "doctorsPortal.appointmentOptions", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Teeth Orthodontics"},
				{Key: "slots", Value: bson.A{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM"}},
			}),
			mtest.CreateCursorResponse(0, "doctorsPortal.appointmentOptions", mtest.NextBatch),
		)

		got, err := repo.FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, id.Hex(), got[0].ID)
		assert.Equal(mt, "Teeth Orthodontics", got[0].Name)
		assert.Equal(mt, []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM"}, got[0].Slots)
	})

	mt.Run("FindAll maps command errors", func(mt *mtest.T) {
		repo := &AppointmentOptionMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := repo.FindAll(context.Background())
		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, 500, customErr.StatusCode)
	})

	mt.Run("FindByName returns nil when absent", func(mt *mtest.T) {
		repo := &AppointmentOptionMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctorsPortal.appointmentOptions", mtest.FirstBatch))

		got, err := repo.FindByName(context.Background(), "Unknown")
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("AggregateAvailability normalizes missing slots", func(mt *mtest.T) {
		repo := &AppointmentOptionMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "doctorsPortal.appointmentOptions", mtest.FirstBatch,
				bson.D{{Key: "name", Value: "Cavity Protection"}, {Key: "slots", Value: nil}},
				bson.D{{Key: "name", Value: "Teeth Cleaning"}, {Key: "slots", Value: bson.A{"9am"}}},
			),
			mtest.CreateCursorResponse(0, "doctorsPortal.appointmentOptions", mtest.NextBatch),
		)

		got, err := repo.AggregateAvailability(context.Background(), "Oct 15, 2026")
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.NotNil(mt, got[0].Slots)
		assert.Empty(mt, got[0].Slots)
		assert.Equal(mt, []string{"9am"}, got[1].Slots)
	})

	mt.Run("FindSpecialities returns names", func(mt *mtest.T) {
		repo := &AppointmentOptionMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "doctorsPortal.appointmentOptions", mtest.FirstBatch,
				bson.D{{Key: "name", Value: "Teeth Orthodontics"}},
			),
			mtest.CreateCursorResponse(0, "doctorsPortal.appointmentOptions", mtest.NextBatch),
		)

		got, err := repo.FindSpecialities(context.Background())
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "Teeth Orthodontics", got[0].Name)
	})
}
