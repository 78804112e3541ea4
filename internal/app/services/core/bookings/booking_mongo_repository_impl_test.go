package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestBookingMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("CreateBooking returns the inserted id", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		createdAt := time.Now().UTC()
		id, err := repo.CreateBooking(context.Background(), &models.Booking{
			AppointmentDate: "Oct 15, 2026",
			Treatment:       "Teeth Orthodontics",
			Slot:            "08.00 AM - 08.30 AM",
			Email:           "patient@example.com",
			CreatedAt:       &createdAt,
			Extra:           map[string]interface{}{"price": 99},
		})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("CreateBooking maps duplicate key to conflict", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    constvars.MongoErrCodeDuplicateKey,
			Message: "E11000 duplicate key error collection: doctorsPortal.bookings index: uniq_email_treatment_date",
		}))

		_, err := repo.CreateBooking(context.Background(), &models.Booking{Email: "patient@example.com"})
		assert.True(mt, errors.Is(err, exceptions.ErrBookingConflict))
	})

	mt.Run("CreateBooking maps other write errors to 500", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 121, Message: "document failed validation"}))

		_, err := repo.CreateBooking(context.Background(), &models.Booking{Email: "patient@example.com"})
		assert.False(mt, errors.Is(err, exceptions.ErrBookingConflict))
		var customErr *exceptions.CustomError
		require.ErrorAs(mt, err, &customErr)
		assert.Equal(mt, 500, customErr.StatusCode)
	})

	mt.Run("FindByEmail keeps unknown fields", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "doctorsPortal.bookings", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "appointmentDate", Value: "Oct 15, 2026"},
				{Key: "treatment", Value: "Teeth Orthodontics"},
				{Key: "slot", Value: "08.00 AM - 08.30 AM"},
				{Key: "email", Value: "patient@example.com"},
				{Key: "price", Value: int32(99)},
			}),
			mtest.CreateCursorResponse(0, "doctorsPortal.bookings", mtest.NextBatch),
		)

		got, err := repo.FindByEmail(context.Background(), "patient@example.com")
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, int32(99), got[0].Extra["price"])

		body, err := json.Marshal(got[0])
		require.NoError(mt, err)
		assert.Contains(mt, string(body), `"price":99`)
		assert.Contains(mt, string(body), `"treatment":"Teeth Orthodontics"`)
	})

	mt.Run("IsSlotTaken reports false when nothing matches", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctorsPortal.bookings", mtest.FirstBatch))

		taken, err := repo.IsSlotTaken(context.Background(), "Oct 15, 2026", "Teeth Orthodontics", "08.00 AM - 08.30 AM")
		require.NoError(mt, err)
		assert.False(mt, taken)
	})

	mt.Run("ExistsForRequester reports true on a match", func(mt *mtest.T) {
		repo := &BookingMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "doctorsPortal.bookings", mtest.FirstBatch, bson.D{
			{Key: "email", Value: "patient@example.com"},
		}))

		exists, err := repo.ExistsForRequester(context.Background(), "Oct 15, 2026", "patient@example.com", "Teeth Orthodontics")
		require.NoError(mt, err)
		assert.True(mt, exists)
	})
}
